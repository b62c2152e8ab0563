package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventme/internal/model"
	"eventme/internal/store"
	"eventme/internal/testutil"
)

func TestUpsert_NewEvent(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewEventService(db)

	created, err := svc.Upsert(ctx, model.Event{
		Title: "Launch Party",
		Date:  "2026-03-14",
		City:  "Lisbon",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Launch Party", created.Title)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
}

func TestUpsert_UpdatesInPlace(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewEventService(db)

	first, err := svc.Upsert(ctx, model.Event{Title: "First", Date: "2026-01-01", City: "Oslo"})
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, model.Event{Title: "Second", Date: "2026-02-01", City: "Riga"})
	require.NoError(t, err)

	updated, err := svc.Upsert(ctx, model.Event{
		ID:    first.ID,
		Title: "First, renamed",
		Date:  "2026-01-15",
		City:  "Bergen",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "First, renamed", updated.Title)

	// Updating keeps the list length and the original ordering.
	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, "First, renamed", events[0].Title)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestUpsert_UnknownID(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewEventService(db)
	_, err := svc.Upsert(context.Background(), model.Event{
		ID:    "no-such-id",
		Title: "Ghost",
		Date:  "2026-01-01",
		City:  "Nowhere",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpsert_Invalid(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewEventService(db)
	ctx := context.Background()

	for _, ev := range []model.Event{
		{Date: "2026-01-01", City: "Oslo"},
		{Title: "No date", City: "Oslo"},
		{Title: "No city", Date: "2026-01-01"},
	} {
		_, err := svc.Upsert(ctx, ev)
		assert.ErrorIs(t, err, ErrEventInvalid)
	}
}

func TestGet(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewEventService(db)

	created, err := svc.Upsert(ctx, model.Event{Title: "Meetup", Date: "2026-05-01", City: "Porto"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDelete(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewEventService(db)

	created, err := svc.Upsert(ctx, model.Event{Title: "Gone soon", Date: "2026-06-01", City: "Ghent"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	events, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	// Deleting an absent id is a no-op.
	assert.NoError(t, svc.Delete(ctx, created.ID))
	assert.NoError(t, svc.Delete(ctx, "never-existed"))
}

func TestSeededAdminFlow(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, db))

	admin, err := NewAuthService(db).Login(ctx, store.DemoAdminEmail, store.DemoAdminPassword)
	require.NoError(t, err)
	require.True(t, admin.IsAdmin())

	svc := NewEventService(db)
	created, err := svc.Upsert(ctx, model.Event{Title: "X", Date: "2025-01-01", City: "Y"})
	require.NoError(t, err)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 4)
	last := events[3]
	assert.Equal(t, created.ID, last.ID)
	assert.NotEmpty(t, last.ID)
	assert.Equal(t, "X", last.Title)
}
