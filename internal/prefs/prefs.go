package prefs

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/eskui/overlay-control/internal/settings"
)

const (
	keyDarkMode             = "dark_mode"
	keyOpacity              = "window_opacity"
	keyFreeDrag             = "free_drag"
	keyNotificationPosition = "notification_position"
)

// Store persists user preferences across sessions in a small sqlite file.
type Store struct {
	db *sql.DB
}

// Open creates or opens the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init prefs schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted snapshot, falling back to defaults for any key
// that is missing or unreadable.
func (s *Store) Load() (settings.Snapshot, error) {
	snap := settings.Defaults()

	rows, err := s.db.Query(`SELECT key, value FROM prefs`)
	if err != nil {
		return snap, fmt.Errorf("load prefs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return snap, fmt.Errorf("scan pref: %w", err)
		}
		switch key {
		case keyDarkMode:
			if v, err := strconv.ParseBool(value); err == nil {
				snap.DarkMode = v
			}
		case keyOpacity:
			if v, err := strconv.ParseFloat(value, 64); err == nil && v >= 0 && v <= 1 {
				snap.Opacity = v
			}
		case keyFreeDrag:
			if v, err := strconv.ParseBool(value); err == nil {
				snap.FreeDrag = v
			}
		case keyNotificationPosition:
			for _, p := range settings.Positions {
				if p == value {
					snap.NotificationPosition = value
					break
				}
			}
		}
	}
	return snap, rows.Err()
}

// Save writes the whole snapshot.
func (s *Store) Save(snap settings.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	defer tx.Rollback()

	pairs := map[string]string{
		keyDarkMode:             strconv.FormatBool(snap.DarkMode),
		keyOpacity:              strconv.FormatFloat(snap.Opacity, 'f', -1, 64),
		keyFreeDrag:             strconv.FormatBool(snap.FreeDrag),
		keyNotificationPosition: snap.NotificationPosition,
	}
	for key, value := range pairs {
		if _, err := tx.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return fmt.Errorf("save pref %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// SetDarkMode persists just the dark mode flag, used by the host toggle that
// bypasses the settings panel.
func (s *Store) SetDarkMode(enabled bool) error {
	_, err := s.db.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyDarkMode, strconv.FormatBool(enabled))
	if err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	return nil
}
