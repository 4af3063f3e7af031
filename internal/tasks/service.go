// Package tasks manages to-do items and their due dates.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/memohai/crm/internal/crm"
	"github.com/memohai/crm/internal/db"
	"github.com/memohai/crm/internal/db/queries"
)

type Service struct {
	queries *queries.Queries
	logger  *slog.Logger
}

func NewService(log *slog.Logger, queries *queries.Queries) *Service {
	return &Service{
		queries: queries,
		logger:  log.With(slog.String("service", "tasks")),
	}
}

// List returns tasks by due date with undated ones last. An empty status lists every task.
func (s *Service) List(ctx context.Context, status string) ([]Task, error) {
	if s.queries == nil {
		return nil, fmt.Errorf("tasks queries not configured")
	}
	rows, err := s.queries.ListTasks(ctx, status)
	if err != nil {
		return nil, err
	}
	return toTasks(rows), nil
}

// Upcoming returns at most limit pending tasks, soonest due first.
func (s *Service) Upcoming(ctx context.Context, limit int) ([]Task, error) {
	if s.queries == nil {
		return nil, fmt.Errorf("tasks queries not configured")
	}
	rows, err := s.queries.ListUpcomingTasks(ctx, DefaultStatus, int64(limit))
	if err != nil {
		return nil, err
	}
	return toTasks(rows), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Task, error) {
	if s.queries == nil {
		return Task{}, fmt.Errorf("tasks queries not configured")
	}
	row, err := s.queries.GetTask(ctx, id)
	if err != nil {
		return Task{}, mapError(err)
	}
	return toTask(row), nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Task, error) {
	if s.queries == nil {
		return Task{}, fmt.Errorf("tasks queries not configured")
	}
	title, err := crm.Required("title", req.Title)
	if err != nil {
		return Task{}, err
	}
	var due sql.NullTime
	if req.DueDate.Present() && !req.DueDate.Value.Blank() {
		if t, ok := crm.ParseTimestamp(string(req.DueDate.Value)); ok {
			due = sql.NullTime{Time: t, Valid: true}
		} else {
			s.logger.DebugContext(ctx, "unreadable due date ignored", slog.String("due_date", string(req.DueDate.Value)))
		}
	}
	id, err := s.queries.CreateTask(ctx, queries.CreateTaskParams{
		Title:       title,
		Description: crm.Text(req.Description, ""),
		DueDate:     due,
		Status:      crm.Text(req.Status, DefaultStatus),
		Priority:    crm.Text(req.Priority, DefaultPriority),
		CreatedAt:   crm.Now(),
	})
	if err != nil {
		return Task{}, err
	}
	s.logger.InfoContext(ctx, "task created", slog.Int64("task_id", id))
	return s.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Task, error) {
	if s.queries == nil {
		return Task{}, fmt.Errorf("tasks queries not configured")
	}
	current, err := s.queries.GetTask(ctx, id)
	if err != nil {
		return Task{}, mapError(err)
	}
	title, err := crm.MergeRequired("title", req.Title, current.Title)
	if err != nil {
		return Task{}, err
	}
	err = s.queries.UpdateTask(ctx, queries.UpdateTaskParams{
		ID:          id,
		Title:       title,
		Description: crm.Merge(req.Description, current.Description, ""),
		DueDate:     mergeDueDate(req.DueDate, current.DueDate),
		Status:      crm.Merge(req.Status, current.Status, DefaultStatus),
		Priority:    crm.Merge(req.Priority, current.Priority, DefaultPriority),
	})
	if err != nil {
		return Task{}, mapError(err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.queries == nil {
		return fmt.Errorf("tasks queries not configured")
	}
	if err := s.queries.DeleteTask(ctx, id); err != nil {
		return mapError(err)
	}
	s.logger.InfoContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}

// mergeDueDate: absent keeps, null or blank clears, unreadable keeps.
func mergeDueDate(o crm.Optional[crm.DateText], current sql.NullTime) sql.NullTime {
	switch {
	case !o.Set:
		return current
	case o.Null || o.Value.Blank():
		return sql.NullTime{}
	}
	t, ok := crm.ParseTimestamp(string(o.Value))
	if !ok {
		return current
	}
	return sql.NullTime{Time: t, Valid: true}
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return crm.NotFoundf("task not found")
	}
	return err
}

func toTasks(rows []queries.Task) []Task {
	items := make([]Task, 0, len(rows))
	for _, row := range rows {
		items = append(items, toTask(row))
	}
	return items
}

func toTask(row queries.Task) Task {
	return Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     crm.NewDate(db.TimePtr(row.DueDate)),
		Status:      row.Status,
		Priority:    row.Priority,
		CreatedAt:   crm.NewDateTime(row.CreatedAt),
	}
}
