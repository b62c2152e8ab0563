package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventme/internal/auth"
	"eventme/internal/model"
)

// Demo account credentials
const (
	DemoAdminEmail    = "admin@demo.com"
	DemoAdminPassword = "admin123"

	DemoUserEmail    = "user@demo.com"
	DemoUserPassword = "user12345"
)

// demoEvent describes one of the fixed demo events.
type demoEvent struct {
	Title       string
	Date        string
	City        string
	ImageURL    string
	Description string
}

var demoEvents = []demoEvent{
	{"Tech Summit", "2025-10-12", "San Francisco, CA", "/static/images/event-1.png", "A day of future tech talks."},
	{"Design Meetup", "2025-11-03", "Berlin, DE", "/static/images/event-2.png", "Pixels, prototypes, and people."},
	{"Hack Night", "2025-12-01", "Remote", "/static/images/event-3.png", "Pair up and build something great."},
}

// Seed ensures the demo accounts and demo events exist. It is idempotent:
// each demo user is inserted only when no row has that email, and the demo
// events are inserted only when the events table is completely empty. Runs
// at startup before any handler touches the store.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	if err := seedDemoUsers(ctx, queries); err != nil {
		return fmt.Errorf("seeding demo users: %w", err)
	}
	if err := seedDemoEvents(ctx, queries); err != nil {
		return fmt.Errorf("seeding demo events: %w", err)
	}
	return nil
}

func seedDemoUsers(ctx context.Context, queries *Queries) error {
	accounts := []struct {
		email    string
		password string
		role     string
	}{
		{DemoAdminEmail, DemoAdminPassword, model.RoleAdmin},
		{DemoUserEmail, DemoUserPassword, model.RoleUser},
	}

	for _, acc := range accounts {
		_, err := queries.GetUserByEmail(ctx, acc.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking for %s: %w", acc.email, err)
		}

		hash, err := auth.HashPassword(acc.password)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", acc.email, err)
		}

		now := time.Now()
		user, err := queries.CreateUser(ctx, CreateUserParams{
			Email:        acc.email,
			PasswordHash: hash,
			Role:         acc.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", acc.email, err)
		}

		slog.Info("created demo user", "id", user.ID, "email", user.Email, "role", user.Role)
	}

	return nil
}

func seedDemoEvents(ctx context.Context, queries *Queries) error {
	count, err := queries.CountEvents(ctx)
	if err != nil {
		return fmt.Errorf("counting events: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, de := range demoEvents {
		event, err := queries.CreateEvent(ctx, CreateEventParams{
			ID:          uuid.NewString(),
			Title:       de.Title,
			Date:        de.Date,
			City:        de.City,
			ImageURL:    de.ImageURL,
			Description: de.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("creating event %q: %w", de.Title, err)
		}
		slog.Info("created demo event", "id", event.ID, "title", event.Title)
	}

	return nil
}
