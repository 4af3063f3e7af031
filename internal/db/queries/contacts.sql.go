package queries

import (
	"context"
	"time"
)

const contactColumns = `id, client_id, name, email, phone, position, notes, created_at`

func scanContact(row scanner) (Contact, error) {
	var i Contact
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Position,
		&i.Notes,
		&i.CreatedAt,
	)
	return i, err
}

const createContact = `INSERT INTO contacts (client_id, name, email, phone, position, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`

type CreateContactParams struct {
	ClientID  int64
	Name      string
	Email     string
	Phone     string
	Position  string
	Notes     string
	CreatedAt time.Time
}

func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createContact,
		arg.ClientID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Position,
		arg.Notes,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getContact = `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`

func (q *Queries) GetContact(ctx context.Context, id int64) (Contact, error) {
	return scanContact(q.queryRow(ctx, getContact, id))
}

const listContacts = `SELECT ` + contactColumns + ` FROM contacts
WHERE (? = 0 OR client_id = ?)
ORDER BY created_at DESC, id DESC`

// ListContacts lists contacts, restricted to clientID when it is non-zero.
func (q *Queries) ListContacts(ctx context.Context, clientID int64) ([]Contact, error) {
	rows, err := q.query(ctx, listContacts, clientID, clientID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanContact)
}

const updateContact = `UPDATE contacts
SET client_id = ?, name = ?, email = ?, phone = ?, position = ?, notes = ?
WHERE id = ?`

type UpdateContactParams struct {
	ID       int64
	ClientID int64
	Name     string
	Email    string
	Phone    string
	Position string
	Notes    string
}

func (q *Queries) UpdateContact(ctx context.Context, arg UpdateContactParams) error {
	return q.execOne(ctx, updateContact,
		arg.ClientID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Position,
		arg.Notes,
		arg.ID,
	)
}

const deleteContact = `DELETE FROM contacts WHERE id = ?`

func (q *Queries) DeleteContact(ctx context.Context, id int64) error {
	return q.execOne(ctx, deleteContact, id)
}

const countContacts = `SELECT COUNT(*) FROM contacts`

func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	return q.count(ctx, countContacts)
}
