package logging

import (
	"context"
	"log/slog"
	"testing"

	"eventme/internal/store"
	"eventme/internal/testutil"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestAuditLogHandler_ErrorLevel(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewAuditLogHandler(discardHandler{}, db))
	logger.Error("database connection failed", "host", "localhost", "port", 5432)

	entries, err := store.New(db).ListAuditEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListAuditEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != LevelError {
		t.Errorf("Level = %q, want %q", entries[0].Level, LevelError)
	}
	if entries[0].Message != "database connection failed" {
		t.Errorf("Message = %q, want %q", entries[0].Message, "database connection failed")
	}
}

func TestAuditLogHandler_WarnLevel(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewAuditLogHandler(discardHandler{}, db))
	logger.Warn("login rate limit exceeded", "ip", "203.0.113.7")

	entries, err := store.New(db).ListAuditEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListAuditEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != LevelWarning {
		t.Errorf("Level = %q, want %q", entries[0].Level, LevelWarning)
	}
}

func TestAuditLogHandler_InfoNotPersisted(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewAuditLogHandler(discardHandler{}, db))
	logger.Info("server started", "addr", ":8080")

	count, err := store.New(db).CountAuditEntries(context.Background())
	if err != nil {
		t.Fatalf("CountAuditEntries: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 entries for info-level log, got %d", count)
	}
}

func TestExtractMetadata(t *testing.T) {
	rec := slog.Record{}
	rec.AddAttrs(slog.String("ip", "203.0.113.7"), slog.Int("attempts", 3))

	got := extractMetadata(rec)
	want := `{"ip":"203.0.113.7","attempts":"3"}`
	if got != want {
		t.Errorf("extractMetadata = %q, want %q", got, want)
	}

	if got := extractMetadata(slog.Record{}); got != "{}" {
		t.Errorf("extractMetadata(empty) = %q, want {}", got)
	}
}

func TestEscapeJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`plain`, `plain`},
		{`with "quotes"`, `with \"quotes\"`},
		{"line\nbreak", `line\nbreak`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeJSON(tt.input); got != tt.want {
			t.Errorf("escapeJSON(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
