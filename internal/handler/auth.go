package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"eventme/internal/middleware"
	"eventme/internal/render"
	"eventme/internal/service"
	"eventme/internal/session"
	"eventme/internal/store"
)

// AuthHandler handles the signup, login and logout routes.
type AuthHandler struct {
	queries         *store.Queries
	authService     *service.AuthService
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		authService:     service.NewAuthService(db),
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// redirectForUser picks the post-login destination based on role.
func redirectForUser(role string) string {
	if role == "admin" {
		return RouteAdmin
	}
	return RouteEvents
}

// LoginForm renders the login page. Already-authenticated visitors are sent
// straight to their landing page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), session.KeyUserID); userID > 0 {
		user, err := h.queries.GetUserByID(r.Context(), userID)
		if err == nil {
			http.Redirect(w, r, redirectForUser(user.Role), http.StatusSeeOther)
			return
		}
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Log in",
	}); err != nil {
		logAndInternalError(w, "rendering login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteLogin) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, RouteLogin, "Email and password are required")
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			flashError(w, r, h.renderer, RouteLogin,
				fmt.Sprintf("Too many failed attempts. Try again in %s.", formatDuration(remaining)))
			return
		}
	}

	user, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Record the failure even for unknown emails to prevent enumeration
			if h.loginProtection != nil {
				if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
					flashError(w, r, h.renderer, RouteLogin,
						fmt.Sprintf("Too many failed attempts. Try again in %s.", formatDuration(lockDuration)))
					return
				}
			}
			flashError(w, r, h.renderer, RouteLogin, "Invalid credentials.")
			return
		}
		logAndInternalError(w, "login error", "error", err)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), session.KeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)

	flashSuccess(w, r, h.renderer, redirectForUser(user.Role), "Welcome back!")
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), session.KeyUserID); userID > 0 {
		http.Redirect(w, r, RouteEvents, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/signup", render.TemplateData{
		Title: "Sign up",
	}); err != nil {
		logAndInternalError(w, "rendering signup page", "error", err)
	}
}

// Signup handles the signup form submission. A duplicate email leaves the
// existing account untouched and sends the visitor back with an error.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteSignup) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	wantsAdmin := r.FormValue("wants_admin") == "on"

	if email == "" || password == "" {
		flashError(w, r, h.renderer, RouteSignup, "Email and password are required")
		return
	}

	user, err := h.authService.Signup(r.Context(), email, password, wantsAdmin)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			flashError(w, r, h.renderer, RouteSignup, "Account already exists.")
			return
		}
		logAndInternalError(w, "signup error", "error", err)
		return
	}

	// Log the new account straight in
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), session.KeyUserID, user.ID)

	flashSuccess(w, r, h.renderer, redirectForUser(user.Role), "Account created. Welcome!")
}

// Logout handles user logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), session.KeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("user logged out", "user_id", userID)

	flashAndRedirect(w, r, h.renderer, RouteRoot, "You have been logged out.", "info")
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
