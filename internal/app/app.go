package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/logging"
	"github.com/eskui/overlay-control/internal/prefs"
	"github.com/eskui/overlay-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	HostURL    string
	EventsURL  string
	PrefsPath  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("open prefs: %w", err)
	}
	defer store.Close()

	saved, err := store.Load()
	if err != nil {
		// Defaults still apply; a broken prefs row is not fatal.
		logging.Error(err)
	}

	client := host.NewClient(cfg.HostURL)
	listener := host.NewListener(cfg.EventsURL)
	defer listener.Stop()

	model := ui.NewModel(client, listener, store, saved, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
