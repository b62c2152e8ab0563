// Package service implements the application's core operations over the
// store: account signup/login and event management.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventme/internal/auth"
	"eventme/internal/model"
	"eventme/internal/store"
)

// User-facing error kinds. Callers branch on these instead of relying on
// panic/recover or string matching.
var (
	// ErrDuplicateAccount is returned by Signup when the email is taken.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidCredentials is returned by Login on any email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService implements signup and login against the user collection.
type AuthService struct {
	queries *store.Queries
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{queries: store.New(db)}
}

// Signup creates a new account and returns it. Fails with
// ErrDuplicateAccount when a user with the same email already exists; the
// existing record is left untouched. The role is admin or user per the
// wantsAdmin flag (demo semantics: anyone may ask for admin).
func (s *AuthService) Signup(ctx context.Context, email, password string, wantsAdmin bool) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, ErrInvalidCredentials
	}

	_, err := s.queries.GetUserByEmail(ctx, email)
	if err == nil {
		return model.User{}, ErrDuplicateAccount
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("checking for existing account: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("hashing password: %w", err)
	}

	role := model.RoleUser
	if wantsAdmin {
		role = model.RoleAdmin
	}

	now := time.Now()
	user, err := s.queries.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user signed up", "user_id", user.ID, "email", user.Email, "role", user.Role)
	return user, nil
}

// Login verifies credentials and returns the matching user. Fails with
// ErrInvalidCredentials unless the email exists and the password verifies
// against the stored hash; existing sessions are never touched here.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, error) {
	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for non-existent user", "email", email)
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("looking up user: %w", err)
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		return model.User{}, ErrInvalidCredentials
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		return model.User{}, ErrInvalidCredentials
	}

	if err := s.queries.UpdateUserLastLogin(ctx, time.Now(), user.ID); err != nil {
		// Don't block login on this error
		slog.Error("failed to update last login time", "error", err, "user_id", user.ID)
	}

	return user, nil
}
