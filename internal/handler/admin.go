package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventme/internal/middleware"
	"eventme/internal/model"
	"eventme/internal/render"
	"eventme/internal/service"
)

// AdminHandler serves the event manager: the admin listing plus the
// create/edit/delete operations.
type AdminHandler struct {
	eventService *service.EventService
	renderer     *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		eventService: service.NewEventService(db),
		renderer:     renderer,
	}
}

// adminPageData holds the data for the event manager page.
type adminPageData struct {
	Events []model.Event
	// Editing holds the event being edited, zero-valued for the blank
	// create form. Its ID travels in a hidden form field so the upsert
	// knows whether to append or replace.
	Editing model.Event
}

// Manager renders the event manager with the blank create form.
func (h *AdminHandler) Manager(w http.ResponseWriter, r *http.Request) {
	h.renderManager(w, r, model.Event{})
}

// EditForm renders the event manager with the form pre-filled from an
// existing event.
func (h *AdminHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.eventService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			flashError(w, r, h.renderer, RouteAdmin, "Event not found.")
			return
		}
		logAndInternalError(w, "loading event for edit", "error", err, "event_id", id)
		return
	}

	h.renderManager(w, r, event)
}

func (h *AdminHandler) renderManager(w http.ResponseWriter, r *http.Request, editing model.Event) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		logAndInternalError(w, "listing events for manager", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title: "Manage Events",
		Data:  adminPageData{Events: events, Editing: editing},
		User:  middleware.GetUser(r),
	}); err != nil {
		logAndInternalError(w, "rendering event manager", "error", err)
	}
}

// Upsert handles the event form submission. An empty hidden id creates a
// new event at the end of the list; a non-empty id replaces that event in
// place.
func (h *AdminHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdmin) {
		return
	}

	event := model.Event{
		ID:          r.FormValue("id"),
		Title:       r.FormValue("title"),
		Date:        r.FormValue("date"),
		City:        r.FormValue("city"),
		ImageURL:    r.FormValue("image_url"),
		Description: r.FormValue("description"),
	}

	saved, err := h.eventService.Upsert(r.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventInvalid):
			flashError(w, r, h.renderer, RouteAdmin, "Title, date and city are required.")
		case errors.Is(err, service.ErrEventNotFound):
			flashError(w, r, h.renderer, RouteAdmin, "Event not found.")
		default:
			logAndInternalError(w, "saving event", "error", err)
		}
		return
	}

	slog.Info("event saved",
		"event_id", saved.ID,
		"title", saved.Title,
		"user_id", middleware.GetUserID(r),
	)

	flashSuccess(w, r, h.renderer, RouteAdmin, "Event saved.")
}

// Delete handles the delete button. Deleting an event that is already gone
// is treated as success.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		logAndInternalError(w, "deleting event", "error", err, "event_id", id)
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdmin, "Event deleted.")
}
