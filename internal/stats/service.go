// Package stats computes the dashboard summary.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/memohai/crm/internal/activities"
	"github.com/memohai/crm/internal/clients"
	"github.com/memohai/crm/internal/db/queries"
	"github.com/memohai/crm/internal/tasks"
)

// ListSize caps the recent activity and upcoming task lists.
const ListSize = 5

// Stats is the dashboard summary. Every field is computed on request.
type Stats struct {
	TotalClients     int64                 `json:"total_clients"`
	ActiveClients    int64                 `json:"active_clients"`
	TotalContacts    int64                 `json:"total_contacts"`
	TotalActivities  int64                 `json:"total_activities"`
	PendingTasks     int64                 `json:"pending_tasks"`
	CompletedTasks   int64                 `json:"completed_tasks"`
	RecentActivities []activities.Activity `json:"recent_activities"`
	UpcomingTasks    []tasks.Task          `json:"upcoming_tasks"`
}

type Service struct {
	queries    *queries.Queries
	activities *activities.Service
	tasks      *tasks.Service
	logger     *slog.Logger
}

func NewService(log *slog.Logger, queries *queries.Queries, activityService *activities.Service, taskService *tasks.Service) *Service {
	return &Service{
		queries:    queries,
		activities: activityService,
		tasks:      taskService,
		logger:     log.With(slog.String("service", "stats")),
	}
}

func (s *Service) Get(ctx context.Context) (Stats, error) {
	if s.queries == nil || s.activities == nil || s.tasks == nil {
		return Stats{}, fmt.Errorf("stats dependencies not configured")
	}
	var (
		out Stats
		err error
	)
	counts := []struct {
		name string
		dst  *int64
		fn   func(context.Context) (int64, error)
	}{
		{"clients", &out.TotalClients, s.queries.CountClients},
		{"active clients", &out.ActiveClients, func(ctx context.Context) (int64, error) {
			return s.queries.CountClientsByStatus(ctx, clients.DefaultStatus)
		}},
		{"contacts", &out.TotalContacts, s.queries.CountContacts},
		{"activities", &out.TotalActivities, s.queries.CountActivities},
		{"pending tasks", &out.PendingTasks, func(ctx context.Context) (int64, error) {
			return s.queries.CountTasksByStatus(ctx, tasks.DefaultStatus)
		}},
		{"completed tasks", &out.CompletedTasks, func(ctx context.Context) (int64, error) {
			return s.queries.CountTasksByStatus(ctx, tasks.StatusCompleted)
		}},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(ctx); err != nil {
			return Stats{}, fmt.Errorf("count %s: %w", c.name, err)
		}
	}
	if out.RecentActivities, err = s.activities.Recent(ctx, ListSize); err != nil {
		return Stats{}, fmt.Errorf("recent activities: %w", err)
	}
	if out.UpcomingTasks, err = s.tasks.Upcoming(ctx, ListSize); err != nil {
		return Stats{}, fmt.Errorf("upcoming tasks: %w", err)
	}
	return out, nil
}
