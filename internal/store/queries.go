package store

import (
	"context"
	"database/sql"
	"time"

	"eventme/internal/model"
)

// DBTX is the minimal database interface used by Queries. Satisfied by
// both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries provides typed access to the database.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to the given database.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

/* ----------------------------- Users ----------------------------- */

const createUser = `
INSERT INTO users (email, password_hash, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, email, password_hash, role, created_at, updated_at, last_login_at
`

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUser inserts a new user and returns the stored record.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.Email, arg.PasswordHash, arg.Role, arg.CreatedAt, arg.UpdatedAt)
	return scanUser(row)
}

const getUserByEmail = `
SELECT id, email, password_hash, role, created_at, updated_at, last_login_at
FROM users WHERE email = ?
`

// GetUserByEmail returns the user with the given email, or sql.ErrNoRows.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const getUserByID = `
SELECT id, email, password_hash, role, created_at, updated_at, last_login_at
FROM users WHERE id = ?
`

// GetUserByID returns the user with the given id, or sql.ErrNoRows.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const listUsers = `
SELECT id, email, password_hash, role, created_at, updated_at, last_login_at
FROM users ORDER BY id
`

// ListUsers returns all users in creation order.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role,
			&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const countUsers = `SELECT COUNT(*) FROM users`

// CountUsers returns the total number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}

const updateUserLastLogin = `UPDATE users SET last_login_at = ? WHERE id = ?`

// UpdateUserLastLogin records the time of the user's most recent login.
func (q *Queries) UpdateUserLastLogin(ctx context.Context, lastLoginAt time.Time, id int64) error {
	_, err := q.db.ExecContext(ctx, updateUserLastLogin, sql.NullTime{Time: lastLoginAt, Valid: true}, id)
	return err
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	return u, err
}

/* ----------------------------- Events ---------------------------- */

const createEvent = `
INSERT INTO events (id, title, date, city, image_url, description, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM events), ?, ?)
RETURNING id, title, date, city, image_url, description, position, created_at, updated_at
`

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	ID          string
	Title       string
	Date        string
	City        string
	ImageURL    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateEvent appends a new event at the end of the collection.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	row := q.db.QueryRowContext(ctx, createEvent,
		arg.ID, arg.Title, arg.Date, arg.City, arg.ImageURL, arg.Description,
		arg.CreatedAt, arg.UpdatedAt)
	return scanEvent(row)
}

const getEventByID = `
SELECT id, title, date, city, image_url, description, position, created_at, updated_at
FROM events WHERE id = ?
`

// GetEventByID returns the event with the given id, or sql.ErrNoRows.
func (q *Queries) GetEventByID(ctx context.Context, id string) (model.Event, error) {
	return scanEvent(q.db.QueryRowContext(ctx, getEventByID, id))
}

const listEvents = `
SELECT id, title, date, city, image_url, description, position, created_at, updated_at
FROM events ORDER BY position
`

// ListEvents returns all events in insertion order.
func (q *Queries) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, listEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.City, &e.ImageURL,
			&e.Description, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const updateEvent = `
UPDATE events
SET title = ?, date = ?, city = ?, image_url = ?, description = ?, updated_at = ?
WHERE id = ?
`

// UpdateEventParams holds the fields for UpdateEvent.
type UpdateEventParams struct {
	ID          string
	Title       string
	Date        string
	City        string
	ImageURL    string
	Description string
	UpdatedAt   time.Time
}

// UpdateEvent replaces the stored event in place, keeping its position.
// Returns the number of rows affected (0 when the id matches nothing).
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateEvent,
		arg.Title, arg.Date, arg.City, arg.ImageURL, arg.Description,
		arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteEvent = `DELETE FROM events WHERE id = ?`

// DeleteEvent removes the event with the given id. Returns the number of
// rows affected; deleting an absent id is not an error.
func (q *Queries) DeleteEvent(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteEvent, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countEvents = `SELECT COUNT(*) FROM events`

// CountEvents returns the total number of events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countEvents).Scan(&n)
	return n, err
}

func scanEvent(row *sql.Row) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.City, &e.ImageURL,
		&e.Description, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

/* --------------------------- Audit log --------------------------- */

// AuditEntry is a row in the audit_log table.
type AuditEntry struct {
	ID        int64
	Level     string
	Message   string
	Metadata  string // JSON string
	CreatedAt time.Time
}

const createAuditEntry = `
INSERT INTO audit_log (level, message, metadata, created_at)
VALUES (?, ?, ?, ?)
`

// CreateAuditEntryParams holds the fields for CreateAuditEntry.
type CreateAuditEntryParams struct {
	Level     string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateAuditEntry appends a record to the audit log.
func (q *Queries) CreateAuditEntry(ctx context.Context, arg CreateAuditEntryParams) error {
	_, err := q.db.ExecContext(ctx, createAuditEntry,
		arg.Level, arg.Message, arg.Metadata, arg.CreatedAt)
	return err
}

const listAuditEntries = `
SELECT id, level, message, metadata, created_at
FROM audit_log ORDER BY created_at DESC, id DESC LIMIT ?
`

// ListAuditEntries returns the most recent audit log entries.
func (q *Queries) ListAuditEntries(ctx context.Context, limit int64) ([]AuditEntry, error) {
	rows, err := q.db.QueryContext(ctx, listAuditEntries, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var a AuditEntry
		if err := rows.Scan(&a.ID, &a.Level, &a.Message, &a.Metadata, &a.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}

const countAuditEntries = `SELECT COUNT(*) FROM audit_log`

// CountAuditEntries returns the total number of audit log entries.
func (q *Queries) CountAuditEntries(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countAuditEntries).Scan(&n)
	return n, err
}

const deleteAuditEntriesBefore = `DELETE FROM audit_log WHERE created_at < ?`

// DeleteAuditEntriesBefore removes audit log entries older than the cutoff.
func (q *Queries) DeleteAuditEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteAuditEntriesBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
