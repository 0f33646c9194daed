package prefs

import (
	"path/filepath"
	"testing"

	"github.com/eskui/overlay-control/internal/settings"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptyStoreReturnsDefaults(t *testing.T) {
	s := openStore(t)
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap != settings.Defaults() {
		t.Fatalf("expected defaults, got %#v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)
	want := settings.Snapshot{
		DarkMode:             false,
		Opacity:              0.8,
		FreeDrag:             true,
		NotificationPosition: "bottom-left",
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %#v want %#v", got, want)
	}
}

func TestSaveOverwritesExistingKeys(t *testing.T) {
	s := openStore(t)
	first := settings.Defaults()
	first.Opacity = 0.5
	if err := s.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := first
	second.Opacity = 0.75
	if err := s.Save(second); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Opacity != 0.75 {
		t.Fatalf("expected updated opacity, got %v", got.Opacity)
	}
}

func TestLoadIgnoresInvalidStoredValues(t *testing.T) {
	s := openStore(t)
	for key, value := range map[string]string{
		"window_opacity":        "9.5",
		"notification_position": "middle",
		"dark_mode":             "sometimes",
	} {
		if _, err := s.db.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?)`, key, value); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap != settings.Defaults() {
		t.Fatalf("expected invalid values ignored, got %#v", snap)
	}
}

func TestSetDarkModePersistsSingleKey(t *testing.T) {
	s := openStore(t)
	if err := s.SetDarkMode(false); err != nil {
		t.Fatalf("set: %v", err)
	}
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.DarkMode {
		t.Fatalf("expected dark mode off")
	}
	if snap.Opacity != settings.Defaults().Opacity {
		t.Fatalf("expected other keys untouched")
	}
}
