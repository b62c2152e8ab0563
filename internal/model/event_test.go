package model

import "testing"

func TestEventImage(t *testing.T) {
	e := Event{ImageURL: "/static/images/summit.png"}
	if got := e.Image(); got != "/static/images/summit.png" {
		t.Errorf("Image() = %q; want event's own image", got)
	}

	e.ImageURL = ""
	if got := e.Image(); got != FallbackImageURL {
		t.Errorf("Image() = %q; want fallback %q", got, FallbackImageURL)
	}
}
