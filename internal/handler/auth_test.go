package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"eventme/internal/session"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginForm(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	req := requestWithSession(sm, httptest.NewRequest(http.MethodGet, RouteLogin, nil))
	rec := httptest.NewRecorder()
	h.LoginForm(rec, req)

	assertStatus(t, rec.Code, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "login") {
		t.Errorf("body = %q, want login page", rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	createTestUser(t, db, "admin@demo.com", "admin123", "admin")
	user := createTestUser(t, db, "user@demo.com", "user12345", "user")

	t.Run("admin lands on the event manager", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteLogin, url.Values{
			"email":    {"admin@demo.com"},
			"password": {"admin123"},
		}))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assertRedirect(t, rec, RouteAdmin)
		if got := sm.GetInt64(req.Context(), session.KeyUserID); got == 0 {
			t.Error("session should hold the user id after login")
		}
	})

	t.Run("regular user lands on the event listing", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteLogin, url.Values{
			"email":    {"user@demo.com"},
			"password": {"user12345"},
		}))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assertRedirect(t, rec, RouteEvents)
		if got := sm.GetInt64(req.Context(), session.KeyUserID); got != user.ID {
			t.Errorf("session user id = %d, want %d", got, user.ID)
		}
	})

	t.Run("wrong password bounces back to login", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteLogin, url.Values{
			"email":    {"user@demo.com"},
			"password": {"wrong"},
		}))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assertRedirect(t, rec, RouteLogin)
		if got := sm.GetInt64(req.Context(), session.KeyUserID); got != 0 {
			t.Error("session should not hold a user id after failed login")
		}
	})

	t.Run("unknown email bounces back to login", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteLogin, url.Values{
			"email":    {"nobody@demo.com"},
			"password": {"whatever1"},
		}))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assertRedirect(t, rec, RouteLogin)
	})

	t.Run("missing fields bounce back to login", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteLogin, url.Values{}))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assertRedirect(t, rec, RouteLogin)
	})
}

func TestSignup(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	t.Run("new account is logged in and redirected", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteSignup, url.Values{
			"email":    {"new@example.com"},
			"password": {"s3cret-pass"},
		}))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assertRedirect(t, rec, RouteEvents)
		if got := sm.GetInt64(req.Context(), session.KeyUserID); got == 0 {
			t.Error("session should hold the user id after signup")
		}
	})

	t.Run("wants_admin checkbox grants the admin role", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteSignup, url.Values{
			"email":       {"boss@example.com"},
			"password":    {"s3cret-pass"},
			"wants_admin": {"on"},
		}))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assertRedirect(t, rec, RouteAdmin)
	})

	t.Run("duplicate email bounces back to signup", func(t *testing.T) {
		req := requestWithSession(sm, postForm(RouteSignup, url.Values{
			"email":    {"new@example.com"},
			"password": {"other-pass"},
		}))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assertRedirect(t, rec, RouteSignup)
	})
}

func TestLogout(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm, nil)

	user := createTestUser(t, db, "user@demo.com", "user12345", "user")

	req := requestWithSession(sm, httptest.NewRequest(http.MethodPost, RouteLogout, nil))
	sm.Put(req.Context(), session.KeyUserID, user.ID)

	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assertRedirect(t, rec, RouteRoot)
	if got := sm.GetInt64(req.Context(), session.KeyUserID); got != 0 {
		t.Error("session should be destroyed after logout")
	}
}
