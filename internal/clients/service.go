// Package clients manages clients and the cascade that removes their contacts and activities.
package clients

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
	conn    *sql.DB
	queries *queries.Queries
	logger  *slog.Logger
}

func NewService(log *slog.Logger, conn *sql.DB, queries *queries.Queries) *Service {
	return &Service{
		conn:    conn,
		queries: queries,
		logger:  log.With(slog.String("service", "clients")),
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Client, error) {
	if s.queries == nil {
		return nil, fmt.Errorf("clients queries not configured")
	}
	pattern := ""
	if filter.Search != "" {
		pattern = "%" + db.EscapeLike(filter.Search) + "%"
	}
	rows, err := s.queries.ListClients(ctx, queries.ListClientsParams{
		Pattern: pattern,
		Status:  filter.Status,
	})
	if err != nil {
		return nil, err
	}
	items := make([]Client, 0, len(rows))
	for _, row := range rows {
		items = append(items, toClient(row))
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Client, error) {
	if s.queries == nil {
		return Client{}, fmt.Errorf("clients queries not configured")
	}
	row, err := s.queries.GetClient(ctx, id)
	if err != nil {
		return Client{}, mapError(err)
	}
	return toClient(row), nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Client, error) {
	if s.queries == nil {
		return Client{}, fmt.Errorf("clients queries not configured")
	}
	name, err := crm.Required("name", req.Name)
	if err != nil {
		return Client{}, err
	}
	email, err := crm.Required("email", req.Email)
	if err != nil {
		return Client{}, err
	}
	id, err := s.queries.CreateClient(ctx, queries.CreateClientParams{
		Name:      name,
		Email:     email,
		Phone:     crm.Text(req.Phone, ""),
		Company:   crm.Text(req.Company, ""),
		Address:   crm.Text(req.Address, ""),
		Status:    crm.Text(req.Status, DefaultStatus),
		CreatedAt: crm.Now(),
	})
	if err != nil {
		return Client{}, mapError(err)
	}
	s.logger.InfoContext(ctx, "client created", slog.Int64("client_id", id))
	return s.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Client, error) {
	if s.queries == nil {
		return Client{}, fmt.Errorf("clients queries not configured")
	}
	current, err := s.queries.GetClient(ctx, id)
	if err != nil {
		return Client{}, mapError(err)
	}
	name, err := crm.MergeRequired("name", req.Name, current.Name)
	if err != nil {
		return Client{}, err
	}
	email, err := crm.MergeRequired("email", req.Email, current.Email)
	if err != nil {
		return Client{}, err
	}
	err = s.queries.UpdateClient(ctx, queries.UpdateClientParams{
		ID:      id,
		Name:    name,
		Email:   email,
		Phone:   crm.Merge(req.Phone, current.Phone, ""),
		Company: crm.Merge(req.Company, current.Company, ""),
		Address: crm.Merge(req.Address, current.Address, ""),
		Status:  crm.Merge(req.Status, current.Status, DefaultStatus),
	})
	if err != nil {
		return Client{}, mapError(err)
	}
	return s.Get(ctx, id)
}

// Delete removes the client together with its contacts and activities in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.queries == nil || s.conn == nil {
		return fmt.Errorf("clients queries not configured")
	}
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	qtx := s.queries.WithTx(tx)
	if err := qtx.DeleteContactsByClient(ctx, id); err != nil {
		return err
	}
	if err := qtx.DeleteActivitiesByClient(ctx, id); err != nil {
		return err
	}
	if err := qtx.DeleteClient(ctx, id); err != nil {
		return mapError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "client deleted", slog.Int64("client_id", id))
	return nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return crm.NotFoundf("client not found")
	case db.IsUniqueViolation(err):
		return crm.Conflictf("a client with this email already exists")
	default:
		return err
	}
}

func toClient(row queries.Client) Client {
	return Client{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Company:   row.Company,
		Address:   row.Address,
		Status:    row.Status,
		CreatedAt: crm.NewDateTime(row.CreatedAt),
	}
}
