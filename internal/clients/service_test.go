package clients

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

func newTestService(t *testing.T) (*Service, *queries.Queries) {
	t.Helper()
	conn, q := dbtest.Open(t)
	return NewService(dbtest.Logger(), conn, q), q
}

func mustCreate(t *testing.T, svc *Service, name, email, company string) Client {
	t.Helper()
	item, err := svc.Create(context.Background(), CreateRequest{
		Name:    crm.Some(name),
		Email:   crm.Some(email),
		Company: crm.Some(company),
	})
	require.NoError(t, err)
	return item
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	before := time.Now().UTC().Truncate(time.Minute)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:  crm.Some(" Ada "),
		Email: crm.Some("ada@example.com"),
	})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.Equal(t, "Ada", item.Name)
	assert.Equal(t, DefaultStatus, item.Status)
	assert.Equal(t, "", item.Phone)
	assert.Equal(t, "", item.Company)
	assert.Equal(t, "", item.Address)
	assert.False(t, item.CreatedAt.Before(before))
}

func TestCreateRequiresNameAndEmail(t *testing.T) {
	svc, _ := newTestService(t)
	tests := []struct {
		name string
		req  CreateRequest
		want string
	}{
		{"missing name", CreateRequest{Email: crm.Some("a@b.c")}, "name is required"},
		{"null name", CreateRequest{Name: crm.Null[string](), Email: crm.Some("a@b.c")}, "name is required"},
		{"missing email", CreateRequest{Name: crm.Some("A")}, "email is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, crm.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDuplicateEmailIsConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "Acme", "x@y.z", "Acme Corp")

	_, err := svc.Create(ctx, CreateRequest{Name: crm.Some("Other"), Email: crm.Some("x@y.z")})
	require.ErrorIs(t, err, crm.ErrConflict)

	items, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateEmailConflict(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc, "A", "a@example.com", "")
	b := mustCreate(t, svc, "B", "b@example.com", "")

	_, err := svc.Update(context.Background(), b.ID, UpdateRequest{Email: crm.Some("a@example.com")})
	require.ErrorIs(t, err, crm.ErrConflict)
}

func TestPartialUpdateKeepsOmittedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateRequest{
		Name:    crm.Some("Acme"),
		Email:   crm.Some("acme@example.com"),
		Phone:   crm.Some("555"),
		Company: crm.Some("Acme Inc"),
		Status:  crm.Some("lead"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateRequest{Phone: crm.Some("777")})
	require.NoError(t, err)
	assert.Equal(t, "777", updated.Phone)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "acme@example.com", updated.Email)
	assert.Equal(t, "Acme Inc", updated.Company)
	assert.Equal(t, "lead", updated.Status)
	assert.Equal(t, created.CreatedAt.String(), updated.CreatedAt.String())

	reset, err := svc.Update(ctx, created.ID, UpdateRequest{Status: crm.Null[string](), Company: crm.Null[string]()})
	require.NoError(t, err)
	assert.Equal(t, DefaultStatus, reset.Status)
	assert.Equal(t, "", reset.Company)

	_, err = svc.Update(ctx, created.ID, UpdateRequest{Name: crm.Null[string]()})
	require.ErrorIs(t, err, crm.ErrInvalidInput)
}

func TestMissingClientIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, crm.ErrNotFound)
	_, err = svc.Update(ctx, 999, UpdateRequest{Name: crm.Some("x")})
	assert.ErrorIs(t, err, crm.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 999), crm.ErrNotFound)
}

func TestListSearchAndStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	byName := mustCreate(t, svc, "ACME Widgets", "one@example.com", "")
	byEmail := mustCreate(t, svc, "Bob", "bob@acme.io", "")
	byCompany := mustCreate(t, svc, "Carol", "carol@example.com", "Big Acme Co")
	mustCreate(t, svc, "Dave", "dave@example.com", "Globex")
	_, err := svc.Update(ctx, byEmail.ID, UpdateRequest{Status: crm.Some("inactive")})
	require.NoError(t, err)

	items, err := svc.List(ctx, ListFilter{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{byCompany.ID, byEmail.ID, byName.ID}, ids(items))

	items, err = svc.List(ctx, ListFilter{Search: "acme", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, []int64{byCompany.ID, byName.ID}, ids(items))

	items, err = svc.List(ctx, ListFilter{Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, []int64{byEmail.ID}, ids(items))
}

func TestListSearchFoldsNonASCII(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	item := mustCreate(t, svc, "Ñandú Exportaciones", "ventas@nandu.ar", "Ñandú SA")
	mustCreate(t, svc, "Globex", "info@globex.com", "")

	for _, query := range []string{"Ñandú", "ñandú", "ÑANDÚ", "ndú", "exportaciones", "ñandú sa"} {
		items, err := svc.List(ctx, ListFilter{Search: query})
		require.NoError(t, err, query)
		assert.Equal(t, []int64{item.ID}, ids(items), query)
	}
}

func TestListSearchTreatsWildcardsLiterally(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "100% Pure", "pure@example.com", "")
	mustCreate(t, svc, "1000 Pure", "thousand@example.com", "")

	items, err := svc.List(ctx, ListFilter{Search: "0%"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "100% Pure", items[0].Name)

	items, err = svc.List(ctx, ListFilter{Search: "_"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteCascades(t *testing.T) {
	svc, q := newTestService(t)
	ctx := context.Background()
	doomed := mustCreate(t, svc, "Doomed", "d@example.com", "")
	kept := mustCreate(t, svc, "Kept", "k@example.com", "")

	for _, clientID := range []int64{doomed.ID, kept.ID} {
		_, err := q.CreateContact(ctx, queries.CreateContactParams{ClientID: clientID, Name: "c", CreatedAt: crm.Now()})
		require.NoError(t, err)
		_, err = q.CreateActivity(ctx, queries.CreateActivityParams{ClientID: clientID, Type: "call", Subject: "s", Date: crm.Now(), CreatedAt: crm.Now()})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, doomed.ID))

	contacts, err := q.ListContacts(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
	activities, err := q.ListActivities(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)

	contacts, err = q.ListContacts(ctx, kept.ID)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	_, err = svc.Get(ctx, doomed.ID)
	assert.ErrorIs(t, err, crm.ErrNotFound)
}

func ids(items []Client) []int64 {
	out := make([]int64, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
