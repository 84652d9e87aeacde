package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gitlab.com/contactbook/contacts-api/internal/config"
	"gitlab.com/contactbook/contacts-api/internal/model"
)

// ErrNotFound signals that no contact with the requested id exists.
var ErrNotFound = errors.New("contact not found")

// nowFunc supplies the current time for the birthday window; tests replace it.
var nowFunc = time.Now

// OpenDatabase opens a connection pool to the database named in the
// configuration. The pool is lazy; the first statement verifies connectivity.
func OpenDatabase(cfg *config.Config) (*sql.DB, error) {
	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return sqlDB, nil
}

// Repository translates contact operations into SQL statements. The database
// argument of the constructor can be a real database for production use or a
// mock database within unit tests.
type Repository struct {
	db            *sqlx.DB
	insert        *sqlx.NamedStmt
	selectWhereId *sqlx.Stmt
	deleteWhereId *sqlx.Stmt
}

// New wraps the given database handle and prepares the statements that are
// executed on every hot path.
func New(sqlDB *sql.DB) (*Repository, error) {
	db := sqlx.NewDb(sqlDB, "mysql")

	// Prepared statements offer a significant speed increase if executed many times.
	insert, err := db.PrepareNamed(`
		INSERT INTO contacts (first_name, last_name, email, phone, birthday, extra_info)
		VALUES (:first_name, :last_name, :email, :phone, :birthday, :extra_info)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	selectWhereId, err := db.Preparex(`
		SELECT * FROM contacts WHERE id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing select by id: %w", err)
	}
	deleteWhereId, err := db.Preparex(`
		DELETE FROM contacts WHERE id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing delete by id: %w", err)
	}
	return &Repository{
		db:            db,
		insert:        insert,
		selectWhereId: selectWhereId,
		deleteWhereId: deleteWhereId,
	}, nil
}

// List returns one page of contacts in storage order. The caller has already
// validated that limit lies within [10, 100] and offset is not negative.
func (r *Repository) List(limit int, offset int) ([]model.Contact, error) {
	contacts := []model.Contact{}
	err := r.db.Select(&contacts, `SELECT * FROM contacts LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

// GetByID returns the contact with the given id, or ErrNotFound.
func (r *Repository) GetByID(id int64) (model.Contact, error) {
	var contacts []model.Contact
	if err := r.selectWhereId.Select(&contacts, id); err != nil {
		return model.Contact{}, fmt.Errorf("selecting contact %d: %w", id, err)
	}
	if len(contacts) == 0 {
		return model.Contact{}, ErrNotFound
	}
	return contacts[0], nil
}

// Create inserts a new contact and returns it including the newly assigned
// id. A duplicate email or phone violates a unique key and surfaces as the
// driver's error.
func (r *Repository) Create(input model.ContactInput) (model.Contact, error) {
	result, err := r.insert.Exec(&input)
	if err != nil {
		return model.Contact{}, fmt.Errorf("inserting contact: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Contact{}, fmt.Errorf("reading generated id: %w", err)
	}
	return model.Contact{
		Id:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Birthday:  input.Birthday,
		ExtraInfo: input.ExtraInfo,
	}, nil
}

// Update applies the non-nil fields of the patch to the contact with the
// given id and returns the new version. A patch without any fields leaves
// the contact untouched. Returns ErrNotFound if the id does not exist.
func (r *Repository) Update(id int64, patch model.ContactPatch) (model.Contact, error) {
	current, err := r.GetByID(id)
	if err != nil {
		return model.Contact{}, err
	}

	var assignments []string
	var args []interface{}
	if patch.FirstName != nil {
		assignments = append(assignments, "first_name=?")
		args = append(args, *patch.FirstName)
	}
	if patch.LastName != nil {
		assignments = append(assignments, "last_name=?")
		args = append(args, *patch.LastName)
	}
	if patch.Email != nil {
		assignments = append(assignments, "email=?")
		args = append(args, *patch.Email)
	}
	if patch.Phone != nil {
		assignments = append(assignments, "phone=?")
		args = append(args, *patch.Phone)
	}
	if patch.Birthday != nil {
		assignments = append(assignments, "birthday=?")
		args = append(args, *patch.Birthday)
	}
	if patch.ExtraInfo != nil {
		assignments = append(assignments, "extra_info=?")
		args = append(args, *patch.ExtraInfo)
	}
	if len(assignments) == 0 {
		return current, nil
	}

	query := "UPDATE contacts SET " + strings.Join(assignments, ", ") + " WHERE id=?"
	args = append(args, id)
	if _, err := r.db.Exec(query, args...); err != nil {
		return model.Contact{}, fmt.Errorf("updating contact %d: %w", id, err)
	}

	// Return the full contact after the update.
	return r.GetByID(id)
}

// Delete removes the contact with the given id and returns the removed
// record. Returns ErrNotFound if the id does not exist.
func (r *Repository) Delete(id int64) (model.Contact, error) {
	contact, err := r.GetByID(id)
	if err != nil {
		return model.Contact{}, err
	}
	if _, err := r.deleteWhereId.Exec(id); err != nil {
		return model.Contact{}, fmt.Errorf("deleting contact %d: %w", id, err)
	}
	return contact, nil
}

// Search returns all contacts matching the supplied filters. Each non-empty
// filter matches as a case-insensitive substring; filters are combined with
// AND. Without any filters all contacts are returned.
func (r *Repository) Search(firstName, lastName, email string) ([]model.Contact, error) {
	query := `SELECT * FROM contacts`
	var conditions []string
	var args []interface{}
	if firstName != "" {
		conditions = append(conditions, "LOWER(first_name) LIKE ?")
		args = append(args, substringPattern(firstName))
	}
	if lastName != "" {
		conditions = append(conditions, "LOWER(last_name) LIKE ?")
		args = append(args, substringPattern(lastName))
	}
	if email != "" {
		conditions = append(conditions, "LOWER(email) LIKE ?")
		args = append(args, substringPattern(email))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	contacts := []model.Contact{}
	if err := r.db.Select(&contacts, query, args...); err != nil {
		return nil, fmt.Errorf("searching contacts: %w", err)
	}
	return contacts, nil
}

// substringPattern builds a case-insensitive LIKE pattern for a filter value.
func substringPattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// UpcomingBirthdays returns contacts whose birthday's day of month falls
// between today's day of month and the day of month 'days' from now, ordered
// by day of month ascending. When the window crosses a month boundary it
// wraps around to the beginning of the month.
//
// Only the day component is compared, never the month. This matches the
// behavior of earlier releases; clients depend on the exact window.
func (r *Repository) UpcomingBirthdays(days int) ([]model.Contact, error) {
	today := nowFunc()
	end := today.AddDate(0, 0, days)

	contacts := []model.Contact{}
	var err error
	if end.Day() < today.Day() {
		err = r.db.Select(&contacts, `
			SELECT * FROM contacts
			WHERE DAY(birthday) >= ? OR DAY(birthday) <= ?
			ORDER BY DAY(birthday) ASC`,
			today.Day(), end.Day())
	} else {
		err = r.db.Select(&contacts, `
			SELECT * FROM contacts
			WHERE DAY(birthday) BETWEEN ? AND ?
			ORDER BY DAY(birthday) ASC`,
			today.Day(), end.Day())
	}
	if err != nil {
		return nil, fmt.Errorf("querying upcoming birthdays: %w", err)
	}
	return contacts, nil
}
