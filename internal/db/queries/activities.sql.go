package queries

import (
	"context"
	"time"
)

const activityColumns = `id, client_id, type, subject, description, date, created_at`

func scanActivity(row scanner) (Activity, error) {
	var i Activity
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.Type,
		&i.Subject,
		&i.Description,
		&i.Date,
		&i.CreatedAt,
	)
	return i, err
}

const createActivity = `INSERT INTO activities (client_id, type, subject, description, date, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`

type CreateActivityParams struct {
	ClientID    int64
	Type        string
	Subject     string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

func (q *Queries) CreateActivity(ctx context.Context, arg CreateActivityParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createActivity,
		arg.ClientID,
		arg.Type,
		arg.Subject,
		arg.Description,
		arg.Date,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getActivity = `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`

func (q *Queries) GetActivity(ctx context.Context, id int64) (Activity, error) {
	return scanActivity(q.queryRow(ctx, getActivity, id))
}

const listActivities = `SELECT ` + activityColumns + ` FROM activities
WHERE (? = 0 OR client_id = ?)
ORDER BY date DESC, id DESC`

// ListActivities lists activities newest first, restricted to clientID when it is non-zero.
func (q *Queries) ListActivities(ctx context.Context, clientID int64) ([]Activity, error) {
	rows, err := q.query(ctx, listActivities, clientID, clientID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanActivity)
}

const listRecentActivities = `SELECT ` + activityColumns + ` FROM activities
ORDER BY date DESC, id DESC
LIMIT ?`

func (q *Queries) ListRecentActivities(ctx context.Context, limit int64) ([]Activity, error) {
	rows, err := q.query(ctx, listRecentActivities, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanActivity)
}

const updateActivity = `UPDATE activities
SET client_id = ?, type = ?, subject = ?, description = ?, date = ?
WHERE id = ?`

type UpdateActivityParams struct {
	ID          int64
	ClientID    int64
	Type        string
	Subject     string
	Description string
	Date        time.Time
}

func (q *Queries) UpdateActivity(ctx context.Context, arg UpdateActivityParams) error {
	return q.execOne(ctx, updateActivity,
		arg.ClientID,
		arg.Type,
		arg.Subject,
		arg.Description,
		arg.Date,
		arg.ID,
	)
}

const deleteActivity = `DELETE FROM activities WHERE id = ?`

func (q *Queries) DeleteActivity(ctx context.Context, id int64) error {
	return q.execOne(ctx, deleteActivity, id)
}

const countActivities = `SELECT COUNT(*) FROM activities`

func (q *Queries) CountActivities(ctx context.Context) (int64, error) {
	return q.count(ctx, countActivities)
}
