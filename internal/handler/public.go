package handler

import (
	"database/sql"
	"net/http"

	"eventme/internal/middleware"
	"eventme/internal/render"
	"eventme/internal/service"
)

// PublicHandler serves the public-facing pages.
type PublicHandler struct {
	eventService *service.EventService
	renderer     *render.Renderer
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(db *sql.DB, renderer *render.Renderer) *PublicHandler {
	return &PublicHandler{
		eventService: service.NewEventService(db),
		renderer:     renderer,
	}
}

// Home renders the landing page with a teaser of upcoming events.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		logAndInternalError(w, "listing events for home page", "error", err)
		return
	}

	// Show at most three events on the landing page
	if len(events) > 3 {
		events = events[:3]
	}

	if err := h.renderer.Render(w, r, "public/home", render.TemplateData{
		Title: "EventMe",
		Data:  events,
		User:  middleware.GetUser(r),
	}); err != nil {
		logAndInternalError(w, "rendering home page", "error", err)
	}
}

// Events renders the full public event listing in insertion order.
func (h *PublicHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		logAndInternalError(w, "listing events", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "public/events", render.TemplateData{
		Title: "Upcoming Events",
		Data:  events,
		User:  middleware.GetUser(r),
	}); err != nil {
		logAndInternalError(w, "rendering events page", "error", err)
	}
}
