package store

import (
	"context"
	"reflect"
	"testing"
)

func TestSettings_RoundTrip(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	type banner struct {
		Text  string   `json:"text"`
		Tags  []string `json:"tags"`
		Count int      `json:"count"`
	}

	in := banner{Text: "Launch week", Tags: []string{"new", "featured"}, Count: 3}
	if err := WriteSetting(ctx, q, "home_banner", in); err != nil {
		t.Fatalf("WriteSetting: %v", err)
	}

	out, err := ReadSetting(ctx, q, "home_banner", banner{})
	if err != nil {
		t.Fatalf("ReadSetting: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestSettings_Overwrite(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := WriteSetting(ctx, q, "motd", "first"); err != nil {
		t.Fatalf("WriteSetting: %v", err)
	}
	if err := WriteSetting(ctx, q, "motd", "second"); err != nil {
		t.Fatalf("WriteSetting (overwrite): %v", err)
	}

	got, err := ReadSetting(ctx, q, "motd", "")
	if err != nil {
		t.Fatalf("ReadSetting: %v", err)
	}
	if got != "second" {
		t.Errorf("value = %q, want %q", got, "second")
	}
}

func TestReadSetting_MissingKeyReturnsFallback(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	got, err := ReadSetting(context.Background(), New(db), "never-written", 42)
	if err != nil {
		t.Fatalf("ReadSetting: %v", err)
	}
	if got != 42 {
		t.Errorf("value = %d, want fallback 42", got)
	}
}

func TestReadSetting_MalformedPayloadReturnsFallback(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.SetSetting(ctx, "broken", "{not json"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}

	got, err := ReadSetting(ctx, q, "broken", map[string]string{"state": "default"})
	if err != nil {
		t.Fatalf("ReadSetting: %v", err)
	}
	if got["state"] != "default" {
		t.Errorf("value = %v, want fallback map", got)
	}
}
