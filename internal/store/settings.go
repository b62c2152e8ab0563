package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Settings are named keys mapped to JSON-serialized values. Reads fall
// back to a caller-supplied default when the key is missing or the stored
// payload does not decode; writes overwrite unconditionally.

const getSetting = `SELECT value FROM settings WHERE key = ?`

// GetSetting returns the raw stored value for a key, or sql.ErrNoRows.
func (q *Queries) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := q.db.QueryRowContext(ctx, getSetting, key).Scan(&value)
	return value, err
}

const setSetting = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// SetSetting stores a raw value under a key, overwriting any previous value.
func (q *Queries) SetSetting(ctx context.Context, key, value string) error {
	_, err := q.db.ExecContext(ctx, setSetting, key, value, time.Now())
	return err
}

// ReadSetting decodes the JSON value stored under key into a value of type
// T. The fallback is returned when the key is absent or the stored payload
// fails to decode; storage errors other than absence are surfaced.
func ReadSetting[T any](ctx context.Context, q *Queries, key string, fallback T) (T, error) {
	raw, err := q.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("reading setting %q: %w", key, err)
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		// Malformed payloads are treated as absent rather than fatal.
		return fallback, nil
	}
	return value, nil
}

// WriteSetting serializes a value as JSON and stores it under key.
func WriteSetting[T any](ctx context.Context, q *Queries, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}
	if err := q.SetSetting(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}
