package model

import "time"

// Contact is a single entry in the contact book as stored on the database.
// Email and phone are unique across all contacts; uniqueness is enforced by
// the database schema.
type Contact struct {
	Id        int64     `json:"id"                   db:"id"`
	FirstName string    `json:"first_name"           db:"first_name"`
	LastName  string    `json:"last_name"            db:"last_name"`
	Email     string    `json:"email"                db:"email"`
	Phone     string    `json:"phone"                db:"phone"`
	Birthday  time.Time `json:"birthday"             db:"birthday"`
	ExtraInfo *string   `json:"extra_info,omitempty" db:"extra_info"`
}

// ContactInput is the request body for creating a contact. The binding tags
// reject the request before it reaches the service when a required field is
// missing or outside its length bounds.
type ContactInput struct {
	FirstName string    `json:"first_name" db:"first_name" binding:"required,min=3,max=100"`
	LastName  string    `json:"last_name"  db:"last_name"  binding:"required,min=3,max=100"`
	Email     string    `json:"email"      db:"email"      binding:"required,email"`
	Phone     string    `json:"phone"      db:"phone"      binding:"required,min=5,max=50"`
	Birthday  time.Time `json:"birthday"   db:"birthday"   binding:"required"`
	ExtraInfo *string   `json:"extra_info" db:"extra_info" binding:"omitempty,max=255"`
}

// ContactPatch is the request body for a partial update. Every field is
// optional; only fields that were submitted end up non-nil, and only those
// are written to the database.
type ContactPatch struct {
	FirstName *string    `json:"first_name" binding:"omitempty,min=3,max=100"`
	LastName  *string    `json:"last_name"  binding:"omitempty,min=3,max=100"`
	Email     *string    `json:"email"      binding:"omitempty,email"`
	Phone     *string    `json:"phone"      binding:"omitempty,min=5,max=50"`
	Birthday  *time.Time `json:"birthday"`
	ExtraInfo *string    `json:"extra_info" binding:"omitempty,max=255"`
}
