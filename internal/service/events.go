package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventme/internal/model"
	"eventme/internal/store"
)

// Event error kinds.
var (
	// ErrEventNotFound is returned when an id matches no stored event.
	ErrEventNotFound = errors.New("event not found")
	// ErrEventInvalid is returned when required fields are missing.
	ErrEventInvalid = errors.New("title, date and city are required")
)

// EventService implements listing and upsert/delete over the event
// collection.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{queries: store.New(db)}
}

// List returns the full event collection in insertion order.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.queries.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// Get returns the event with the given id, or ErrEventNotFound.
func (s *EventService) Get(ctx context.Context, id string) (model.Event, error) {
	event, err := s.queries.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, fmt.Errorf("getting event %s: %w", id, err)
	}
	return event, nil
}

// Upsert stores an event. With an empty id it assigns a fresh generated id
// and appends at the end of the collection; with an id matching an existing
// event it replaces that entry in place. An id that matches nothing yields
// ErrEventNotFound.
func (s *EventService) Upsert(ctx context.Context, event model.Event) (model.Event, error) {
	if event.Title == "" || event.Date == "" || event.City == "" {
		return model.Event{}, ErrEventInvalid
	}

	now := time.Now()

	if event.ID == "" {
		created, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
			ID:          uuid.NewString(),
			Title:       event.Title,
			Date:        event.Date,
			City:        event.City,
			ImageURL:    event.ImageURL,
			Description: event.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return model.Event{}, fmt.Errorf("creating event: %w", err)
		}
		slog.Info("event created", "event_id", created.ID, "title", created.Title)
		return created, nil
	}

	affected, err := s.queries.UpdateEvent(ctx, store.UpdateEventParams{
		ID:          event.ID,
		Title:       event.Title,
		Date:        event.Date,
		City:        event.City,
		ImageURL:    event.ImageURL,
		Description: event.Description,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("updating event %s: %w", event.ID, err)
	}
	if affected == 0 {
		return model.Event{}, ErrEventNotFound
	}

	updated, err := s.queries.GetEventByID(ctx, event.ID)
	if err != nil {
		return model.Event{}, fmt.Errorf("reloading event %s: %w", event.ID, err)
	}
	slog.Info("event updated", "event_id", updated.ID, "title", updated.Title)
	return updated, nil
}

// Delete removes the event with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *EventService) Delete(ctx context.Context, id string) error {
	affected, err := s.queries.DeleteEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	if affected > 0 {
		slog.Info("event deleted", "event_id", id)
	}
	return nil
}
