package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHome(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewPublicHandler(db, testRenderer(t, sm))

	createTestEvent(t, db, "evt-1", "Tech Summit", "2025-10-12", "San Francisco, CA")

	req := requestWithSession(sm, httptest.NewRequest(http.MethodGet, RouteRoot, nil))
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	assertStatus(t, rec.Code, http.StatusOK)
}

func TestEvents(t *testing.T) {
	db := testDB(t)
	sm := testSessionManager(t)
	h := NewPublicHandler(db, testRenderer(t, sm))

	t.Run("empty listing still renders", func(t *testing.T) {
		req := requestWithSession(sm, httptest.NewRequest(http.MethodGet, RouteEvents, nil))
		rec := httptest.NewRecorder()
		h.Events(rec, req)

		assertStatus(t, rec.Code, http.StatusOK)
	})

	t.Run("with events", func(t *testing.T) {
		createTestEvent(t, db, "evt-1", "Tech Summit", "2025-10-12", "San Francisco, CA")
		createTestEvent(t, db, "evt-2", "Design Meetup", "2025-11-03", "Berlin, DE")

		req := requestWithSession(sm, httptest.NewRequest(http.MethodGet, RouteEvents, nil))
		rec := httptest.NewRecorder()
		h.Events(rec, req)

		assertStatus(t, rec.Code, http.StatusOK)
	})
}
