// Package activities records interactions with clients.
package activities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

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
		logger:  log.With(slog.String("service", "activities")),
	}
}

// List returns activities by date, newest first. A zero clientID lists every activity.
func (s *Service) List(ctx context.Context, clientID int64) ([]Activity, error) {
	if s.queries == nil {
		return nil, fmt.Errorf("activities queries not configured")
	}
	rows, err := s.queries.ListActivities(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toActivities(rows), nil
}

// Recent returns the limit most recent activities by date.
func (s *Service) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if s.queries == nil {
		return nil, fmt.Errorf("activities queries not configured")
	}
	rows, err := s.queries.ListRecentActivities(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	return toActivities(rows), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Activity, error) {
	if s.queries == nil {
		return Activity{}, fmt.Errorf("activities queries not configured")
	}
	row, err := s.queries.GetActivity(ctx, id)
	if err != nil {
		return Activity{}, mapError(err)
	}
	return toActivity(row), nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Activity, error) {
	if s.queries == nil {
		return Activity{}, fmt.Errorf("activities queries not configured")
	}
	if !req.ClientID.Present() {
		return Activity{}, crm.Invalidf("client_id is required")
	}
	activityType, err := crm.Required("type", req.Type)
	if err != nil {
		return Activity{}, err
	}
	subject, err := crm.Required("subject", req.Subject)
	if err != nil {
		return Activity{}, err
	}
	now := crm.Now()
	date, ok := parseDate(req.Date)
	if !ok {
		if req.Date.Present() && !req.Date.Value.Blank() {
			s.logger.DebugContext(ctx, "unreadable activity date, using now", slog.String("date", string(req.Date.Value)))
		}
		date = now
	}
	id, err := s.queries.CreateActivity(ctx, queries.CreateActivityParams{
		ClientID:    req.ClientID.Value,
		Type:        activityType,
		Subject:     subject,
		Description: crm.Text(req.Description, ""),
		Date:        date,
		CreatedAt:   now,
	})
	if err != nil {
		return Activity{}, mapClientError(err, req.ClientID.Value)
	}
	s.logger.InfoContext(ctx, "activity created", slog.Int64("activity_id", id), slog.Int64("client_id", req.ClientID.Value))
	return s.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Activity, error) {
	if s.queries == nil {
		return Activity{}, fmt.Errorf("activities queries not configured")
	}
	current, err := s.queries.GetActivity(ctx, id)
	if err != nil {
		return Activity{}, mapError(err)
	}
	if req.ClientID.Set && req.ClientID.Null {
		return Activity{}, crm.Invalidf("client_id is required")
	}
	clientID := req.ClientID.Or(current.ClientID)
	activityType, err := crm.MergeRequired("type", req.Type, current.Type)
	if err != nil {
		return Activity{}, err
	}
	subject, err := crm.MergeRequired("subject", req.Subject, current.Subject)
	if err != nil {
		return Activity{}, err
	}
	date, ok := parseDate(req.Date)
	if !ok {
		date = current.Date
	}
	err = s.queries.UpdateActivity(ctx, queries.UpdateActivityParams{
		ID:          id,
		ClientID:    clientID,
		Type:        activityType,
		Subject:     subject,
		Description: crm.Merge(req.Description, current.Description, ""),
		Date:        date,
	})
	if err != nil {
		return Activity{}, mapClientError(err, clientID)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.queries == nil {
		return fmt.Errorf("activities queries not configured")
	}
	if err := s.queries.DeleteActivity(ctx, id); err != nil {
		return mapError(err)
	}
	s.logger.InfoContext(ctx, "activity deleted", slog.Int64("activity_id", id))
	return nil
}

func parseDate(o crm.Optional[crm.DateText]) (time.Time, bool) {
	if !o.Present() || o.Value.Blank() {
		return time.Time{}, false
	}
	return crm.ParseTimestamp(string(o.Value))
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return crm.NotFoundf("activity not found")
	}
	return err
}

func mapClientError(err error, clientID int64) error {
	if db.IsForeignKeyViolation(err) {
		return crm.Conflictf("client %d does not exist", clientID)
	}
	return mapError(err)
}

func toActivities(rows []queries.Activity) []Activity {
	items := make([]Activity, 0, len(rows))
	for _, row := range rows {
		items = append(items, toActivity(row))
	}
	return items
}

func toActivity(row queries.Activity) Activity {
	return Activity{
		ID:          row.ID,
		ClientID:    row.ClientID,
		Type:        row.Type,
		Subject:     row.Subject,
		Description: row.Description,
		Date:        crm.NewDateTime(row.Date),
		CreatedAt:   crm.NewDateTime(row.CreatedAt),
	}
}
