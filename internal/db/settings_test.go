package db

import (
	"context"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	settings, cleanup := newTestSettings(t)
	defer cleanup()

	_, found, err := settings.Get(context.Background(), "demo-theme")
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if found {
		t.Fatalf("expected missing key to report absent")
	}

	if err := settings.Set(context.Background(), "demo-theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, found, err := settings.Get(context.Background(), "demo-theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatalf("expected key to be present")
	}
	if value != "dark" {
		t.Fatalf("expected value 'dark', got %q", value)
	}
}

func TestSettingsSetOverwrites(t *testing.T) {
	settings, cleanup := newTestSettings(t)
	defer cleanup()

	if err := settings.Set(context.Background(), "demo-theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := settings.Set(context.Background(), "demo-theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, found, err := settings.Get(context.Background(), "demo-theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || value != "light" {
		t.Fatalf("expected overwritten value 'light', got %q (found=%v)", value, found)
	}
}

func TestSettingsDelete(t *testing.T) {
	settings, cleanup := newTestSettings(t)
	defer cleanup()

	if err := settings.Set(context.Background(), "demo-theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := settings.Delete(context.Background(), "demo-theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, found, err := settings.Get(context.Background(), "demo-theme")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if found {
		t.Fatalf("expected key to be gone after delete")
	}
}

func newTestSettings(t *testing.T) (*Settings, func()) {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewSettings(db), func() {
		_ = db.Close()
	}
}
