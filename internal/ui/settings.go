package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/logging"
	"github.com/eskui/overlay-control/internal/settings"
	"github.com/eskui/overlay-control/internal/theme"
)

// applyPrefs makes a preference snapshot live: theme, drag mode, and toast
// anchoring all read from m.prefs at render time.
func (m *Model) applyPrefs(snap settings.Snapshot) {
	m.prefs = snap
	m.styles = theme.ForDarkMode(snap.DarkMode)
	if m.styles.Loading != nil {
		m.spinner.Style = *m.styles.Loading
	}
}

func (m *Model) saveSettings() tea.Cmd {
	if m.session == nil {
		return nil
	}
	changed := m.session.ChangedFields()
	snap := m.session.Save()
	m.applyPrefs(snap)
	m.session = nil

	if err := m.prefsStore.Save(snap); err != nil {
		logging.Error(err)
	}

	cmds := []tea.Cmd{}
	for _, field := range changed {
		switch field {
		case settings.FieldDarkMode:
			enabled := snap.DarkMode
			cmds = append(cmds, m.post("darkModeChanged", func(ctx context.Context) error {
				return m.client.DarkModeChanged(ctx, enabled)
			}))
		case settings.FieldOpacity:
			opacity := snap.Opacity
			cmds = append(cmds, m.post("opacityChanged", func(ctx context.Context) error {
				return m.client.OpacityChanged(ctx, opacity)
			}))
		case settings.FieldFreeDrag:
			enabled := snap.FreeDrag
			cmds = append(cmds, m.post("freeDragChanged", func(ctx context.Context) error {
				return m.client.FreeDragChanged(ctx, enabled)
			}))
		case settings.FieldNotificationPosition:
			position := snap.NotificationPosition
			cmds = append(cmds, m.post("notificationPositionChanged", func(ctx context.Context) error {
				return m.client.NotificationPositionChanged(ctx, position)
			}))
		}
	}
	return m.closeAndRelease(cmds...)
}

// cancelSettings restores the open-time snapshot bit for bit, undoing every
// live preview.
func (m *Model) cancelSettings() tea.Cmd {
	if m.session == nil {
		return m.closeAndRelease()
	}
	snap := m.session.Cancel()
	m.applyPrefs(snap)
	m.session = nil
	return m.closeAndRelease()
}
