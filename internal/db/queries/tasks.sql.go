package queries

import (
	"context"
	"database/sql"
	"time"
)

const taskColumns = `id, title, description, due_date, status, priority, created_at`

func scanTask(row scanner) (Task, error) {
	var i Task
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.DueDate,
		&i.Status,
		&i.Priority,
		&i.CreatedAt,
	)
	return i, err
}

const createTask = `INSERT INTO tasks (title, description, due_date, status, priority, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`

type CreateTaskParams struct {
	Title       string
	Description string
	DueDate     sql.NullTime
	Status      string
	Priority    string
	CreatedAt   time.Time
}

func (q *Queries) CreateTask(ctx context.Context, arg CreateTaskParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createTask,
		arg.Title,
		arg.Description,
		arg.DueDate,
		arg.Status,
		arg.Priority,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getTask = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

func (q *Queries) GetTask(ctx context.Context, id int64) (Task, error) {
	return scanTask(q.queryRow(ctx, getTask, id))
}

// Undated tasks sort after dated ones; ties fall back to newest first.
const listTasks = `SELECT ` + taskColumns + ` FROM tasks
WHERE (? = '' OR status = ?)
ORDER BY due_date ASC NULLS LAST, created_at DESC, id DESC`

// ListTasks lists tasks, restricted to status when it is non-empty.
func (q *Queries) ListTasks(ctx context.Context, status string) ([]Task, error) {
	rows, err := q.query(ctx, listTasks, status, status)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTask)
}

const listUpcomingTasks = listTasks + `
LIMIT ?`

func (q *Queries) ListUpcomingTasks(ctx context.Context, status string, limit int64) ([]Task, error) {
	rows, err := q.query(ctx, listUpcomingTasks, status, status, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTask)
}

const updateTask = `UPDATE tasks
SET title = ?, description = ?, due_date = ?, status = ?, priority = ?
WHERE id = ?`

type UpdateTaskParams struct {
	ID          int64
	Title       string
	Description string
	DueDate     sql.NullTime
	Status      string
	Priority    string
}

func (q *Queries) UpdateTask(ctx context.Context, arg UpdateTaskParams) error {
	return q.execOne(ctx, updateTask,
		arg.Title,
		arg.Description,
		arg.DueDate,
		arg.Status,
		arg.Priority,
		arg.ID,
	)
}

const deleteTask = `DELETE FROM tasks WHERE id = ?`

func (q *Queries) DeleteTask(ctx context.Context, id int64) error {
	return q.execOne(ctx, deleteTask, id)
}

const countTasksByStatus = `SELECT COUNT(*) FROM tasks WHERE status = ?`

func (q *Queries) CountTasksByStatus(ctx context.Context, status string) (int64, error) {
	return q.count(ctx, countTasksByStatus, status)
}
