package queries

import (
	"context"
	"time"
)

const clientColumns = `id, name, email, phone, company, address, status, created_at`

func scanClient(row scanner) (Client, error) {
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Company,
		&i.Address,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const createClient = `INSERT INTO clients (name, email, phone, company, address, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`

type CreateClientParams struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Address   string
	Status    string
	CreatedAt time.Time
}

func (q *Queries) CreateClient(ctx context.Context, arg CreateClientParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createClient,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Company,
		arg.Address,
		arg.Status,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getClient = `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`

func (q *Queries) GetClient(ctx context.Context, id int64) (Client, error) {
	return scanClient(q.queryRow(ctx, getClient, id))
}

const listClients = `SELECT ` + clientColumns + ` FROM clients
WHERE (? = '' OR LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(email) LIKE LOWER(?) ESCAPE '\' OR LOWER(company) LIKE LOWER(?) ESCAPE '\')
  AND (? = '' OR status = ?)
ORDER BY created_at DESC, id DESC`

type ListClientsParams struct {
	// Pattern is a LIKE pattern folded in SQL, empty for no search.
	Pattern string
	Status  string
}

func (q *Queries) ListClients(ctx context.Context, arg ListClientsParams) ([]Client, error) {
	rows, err := q.query(ctx, listClients,
		arg.Pattern, arg.Pattern, arg.Pattern, arg.Pattern,
		arg.Status, arg.Status,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanClient)
}

const updateClient = `UPDATE clients
SET name = ?, email = ?, phone = ?, company = ?, address = ?, status = ?
WHERE id = ?`

type UpdateClientParams struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Company string
	Address string
	Status  string
}

func (q *Queries) UpdateClient(ctx context.Context, arg UpdateClientParams) error {
	return q.execOne(ctx, updateClient,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Company,
		arg.Address,
		arg.Status,
		arg.ID,
	)
}

const deleteClient = `DELETE FROM clients WHERE id = ?`

func (q *Queries) DeleteClient(ctx context.Context, id int64) error {
	return q.execOne(ctx, deleteClient, id)
}

const deleteContactsByClient = `DELETE FROM contacts WHERE client_id = ?`

func (q *Queries) DeleteContactsByClient(ctx context.Context, clientID int64) error {
	_, err := q.exec(ctx, deleteContactsByClient, clientID)
	return err
}

const deleteActivitiesByClient = `DELETE FROM activities WHERE client_id = ?`

func (q *Queries) DeleteActivitiesByClient(ctx context.Context, clientID int64) error {
	_, err := q.exec(ctx, deleteActivitiesByClient, clientID)
	return err
}

const countClients = `SELECT COUNT(*) FROM clients`

func (q *Queries) CountClients(ctx context.Context) (int64, error) {
	return q.count(ctx, countClients)
}

const countClientsByStatus = `SELECT COUNT(*) FROM clients WHERE status = ?`

func (q *Queries) CountClientsByStatus(ctx context.Context, status string) (int64, error) {
	return q.count(ctx, countClientsByStatus, status)
}
