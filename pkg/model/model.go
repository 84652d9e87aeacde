package model

import "time"

// Contact mirrors the JSON representation served by the contacts API. All
// fields with the exception of the Id field are optional so that external
// tools can unmarshal partial responses.
type Contact struct {
	Id        int64      `json:"id"`
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	ExtraInfo *string    `json:"extra_info,omitempty"`
}
