package activities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memohai/crm/internal/crm"
	"github.com/memohai/crm/internal/db/dbtest"
	"github.com/memohai/crm/internal/db/queries"
)

func setup(t *testing.T) (*Service, int64) {
	t.Helper()
	_, q := dbtest.Open(t)
	clientID, err := q.CreateClient(context.Background(), queries.CreateClientParams{
		Name:      "Acme",
		Email:     "acme@example.com",
		Status:    "active",
		CreatedAt: crm.Now(),
	})
	require.NoError(t, err)
	return NewService(dbtest.Logger(), q), clientID
}

func newRequest(clientID int64, date string) CreateRequest {
	req := CreateRequest{
		ClientID: crm.Some(clientID),
		Type:     crm.Some("call"),
		Subject:  crm.Some("Kickoff"),
	}
	if date != "" {
		req.Date = crm.Some(crm.DateText(date))
	}
	return req
}

func TestCreateDatePolicy(t *testing.T) {
	svc, clientID := setup(t)
	tests := []struct {
		name string
		date crm.Optional[crm.DateText]
		want string
	}{
		{"explicit", crm.Some(crm.DateText("2025-03-01T14:30")), "2025-03-01 14:30"},
		{"date only", crm.Some(crm.DateText("2025-03-01")), "2025-03-01 00:00"},
		{"absent", crm.Optional[crm.DateText]{}, ""},
		{"null", crm.Null[crm.DateText](), ""},
		{"empty", crm.Some(crm.DateText("")), ""},
		{"garbage", crm.Some(crm.DateText("not-a-date")), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(clientID, "")
			req.Date = tt.date
			before := time.Now().UTC().Add(-time.Minute)

			item, err := svc.Create(context.Background(), req)
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, item.Date.String())
				return
			}
			assert.WithinDuration(t, time.Now().UTC(), item.Date.Time, 2*time.Minute)
			assert.True(t, item.Date.After(before))
		})
	}
}

func TestCreateActivityValidation(t *testing.T) {
	svc, clientID := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Type: crm.Some("call"), Subject: crm.Some("s")})
	assert.ErrorIs(t, err, crm.ErrInvalidInput)
	_, err = svc.Create(ctx, CreateRequest{ClientID: crm.Some(clientID), Subject: crm.Some("s")})
	assert.ErrorIs(t, err, crm.ErrInvalidInput)
	_, err = svc.Create(ctx, CreateRequest{ClientID: crm.Some(clientID), Type: crm.Some("call")})
	assert.ErrorIs(t, err, crm.ErrInvalidInput)

	_, err = svc.Create(ctx, newRequest(clientID+100, ""))
	assert.ErrorIs(t, err, crm.ErrConflict)
}

func TestUpdateKeepsDateWhenUnreadable(t *testing.T) {
	svc, clientID := setup(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, newRequest(clientID, "2025-01-10 09:00"))
	require.NoError(t, err)

	for _, date := range []crm.Optional[crm.DateText]{
		{},
		crm.Null[crm.DateText](),
		crm.Some(crm.DateText("")),
		crm.Some(crm.DateText("garbage")),
	} {
		updated, err := svc.Update(ctx, created.ID, UpdateRequest{Date: date})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-10 09:00", updated.Date.String())
	}

	updated, err := svc.Update(ctx, created.ID, UpdateRequest{
		Date:        crm.Some(crm.DateText("2025-02-20T16:45:00Z")),
		Description: crm.Some("follow-up"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-20 16:45", updated.Date.String())
	assert.Equal(t, "follow-up", updated.Description)
	assert.Equal(t, "Kickoff", updated.Subject)
	assert.Equal(t, created.CreatedAt.String(), updated.CreatedAt.String())
}

func TestListOrdersByDate(t *testing.T) {
	svc, clientID := setup(t)
	ctx := context.Background()
	mid, err := svc.Create(ctx, newRequest(clientID, "2025-02-01"))
	require.NoError(t, err)
	old, err := svc.Create(ctx, newRequest(clientID, "2024-12-31"))
	require.NoError(t, err)
	latest, err := svc.Create(ctx, newRequest(clientID, "2025-06-15 08:00"))
	require.NoError(t, err)

	items, err := svc.List(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{latest.ID, mid.ID, old.ID}, []int64{items[0].ID, items[1].ID, items[2].ID})

	recent, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, latest.ID, recent[0].ID)

	none, err := svc.List(ctx, clientID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteActivity(t *testing.T) {
	svc, clientID := setup(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, newRequest(clientID, ""))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), crm.ErrNotFound)
}
