// Package contacts manages the people attached to a client.
package contacts

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
		logger:  log.With(slog.String("service", "contacts")),
	}
}

// List returns contacts, newest first. A zero clientID lists every contact.
func (s *Service) List(ctx context.Context, clientID int64) ([]Contact, error) {
	if s.queries == nil {
		return nil, fmt.Errorf("contacts queries not configured")
	}
	rows, err := s.queries.ListContacts(ctx, clientID)
	if err != nil {
		return nil, err
	}
	items := make([]Contact, 0, len(rows))
	for _, row := range rows {
		items = append(items, toContact(row))
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Contact, error) {
	if s.queries == nil {
		return Contact{}, fmt.Errorf("contacts queries not configured")
	}
	row, err := s.queries.GetContact(ctx, id)
	if err != nil {
		return Contact{}, mapError(err)
	}
	return toContact(row), nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Contact, error) {
	if s.queries == nil {
		return Contact{}, fmt.Errorf("contacts queries not configured")
	}
	if !req.ClientID.Present() {
		return Contact{}, crm.Invalidf("client_id is required")
	}
	name, err := crm.Required("name", req.Name)
	if err != nil {
		return Contact{}, err
	}
	id, err := s.queries.CreateContact(ctx, queries.CreateContactParams{
		ClientID:  req.ClientID.Value,
		Name:      name,
		Email:     crm.Text(req.Email, ""),
		Phone:     crm.Text(req.Phone, ""),
		Position:  crm.Text(req.Position, ""),
		Notes:     crm.Text(req.Notes, ""),
		CreatedAt: crm.Now(),
	})
	if err != nil {
		return Contact{}, mapClientError(err, req.ClientID.Value)
	}
	s.logger.InfoContext(ctx, "contact created", slog.Int64("contact_id", id), slog.Int64("client_id", req.ClientID.Value))
	return s.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Contact, error) {
	if s.queries == nil {
		return Contact{}, fmt.Errorf("contacts queries not configured")
	}
	current, err := s.queries.GetContact(ctx, id)
	if err != nil {
		return Contact{}, mapError(err)
	}
	if req.ClientID.Set && req.ClientID.Null {
		return Contact{}, crm.Invalidf("client_id is required")
	}
	clientID := req.ClientID.Or(current.ClientID)
	name, err := crm.MergeRequired("name", req.Name, current.Name)
	if err != nil {
		return Contact{}, err
	}
	err = s.queries.UpdateContact(ctx, queries.UpdateContactParams{
		ID:       id,
		ClientID: clientID,
		Name:     name,
		Email:    crm.Merge(req.Email, current.Email, ""),
		Phone:    crm.Merge(req.Phone, current.Phone, ""),
		Position: crm.Merge(req.Position, current.Position, ""),
		Notes:    crm.Merge(req.Notes, current.Notes, ""),
	})
	if err != nil {
		return Contact{}, mapClientError(err, clientID)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.queries == nil {
		return fmt.Errorf("contacts queries not configured")
	}
	if err := s.queries.DeleteContact(ctx, id); err != nil {
		return mapError(err)
	}
	s.logger.InfoContext(ctx, "contact deleted", slog.Int64("contact_id", id))
	return nil
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return crm.NotFoundf("contact not found")
	}
	return err
}

func mapClientError(err error, clientID int64) error {
	if db.IsForeignKeyViolation(err) {
		return crm.Conflictf("client %d does not exist", clientID)
	}
	return mapError(err)
}

func toContact(row queries.Contact) Contact {
	return Contact{
		ID:        row.ID,
		ClientID:  row.ClientID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Position:  row.Position,
		Notes:     row.Notes,
		CreatedAt: crm.NewDateTime(row.CreatedAt),
	}
}
