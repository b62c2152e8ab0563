package model

import "time"

// FallbackImageURL is shown for events without an image of their own.
const FallbackImageURL = "/static/images/event-placeholder.png"

// Event represents a listed event. The ID is an opaque unique string
// assigned on first save; Position preserves insertion order.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"` // ISO date, yyyy-mm-dd
	City        string    `json:"city"`
	ImageURL    string    `json:"image,omitempty"`
	Description string    `json:"desc,omitempty"`
	Position    int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Image returns the event image URL, falling back to the placeholder
// when none is set.
func (e *Event) Image() string {
	if e.ImageURL == "" {
		return FallbackImageURL
	}
	return e.ImageURL
}
