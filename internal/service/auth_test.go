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

func TestSignupThenLogin(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db)

	created, err := svc.Signup(ctx, "alice@example.com", "s3cret-pass", false)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, model.RoleUser, created.Role)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash, "password must not be stored in plain text")

	logged, err := svc.Login(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
	assert.Equal(t, model.RoleUser, logged.Role)
}

func TestSignup_WantsAdmin(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	user, err := NewAuthService(db).Signup(context.Background(), "boss@example.com", "s3cret-pass", true)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
}

func TestSignup_DuplicateAccount(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db)

	first, err := svc.Signup(ctx, "alice@example.com", "original-pass", false)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "alice@example.com", "other-pass", true)
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// The existing record is untouched: the original password still works
	// and the role did not change.
	logged, err := svc.Login(ctx, "alice@example.com", "original-pass")
	require.NoError(t, err)
	assert.Equal(t, first.ID, logged.ID)
	assert.Equal(t, model.RoleUser, logged.Role)
}

func TestSignup_EmptyFields(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db)

	_, err := svc.Signup(ctx, "", "s3cret-pass", false)
	assert.Error(t, err)

	_, err = svc.Signup(ctx, "alice@example.com", "", false)
	assert.Error(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db)

	_, err := svc.Signup(ctx, "alice@example.com", "s3cret-pass", false)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SeededDemoAccounts(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, db))

	svc := NewAuthService(db)

	admin, err := svc.Login(ctx, store.DemoAdminEmail, store.DemoAdminPassword)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	user, err := svc.Login(ctx, store.DemoUserEmail, store.DemoUserPassword)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())
}

func TestLogin_UpdatesLastLogin(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db)

	created, err := svc.Signup(ctx, "alice@example.com", "s3cret-pass", false)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	reloaded, err := store.New(db).GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.LastLoginAt.Valid, "last_login_at should be set after login")
}
