package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/eskui/overlay-control/internal/menu"
	"github.com/eskui/overlay-control/internal/notify"
	"github.com/eskui/overlay-control/internal/panel"
	"github.com/eskui/overlay-control/internal/settings"
)

const (
	minContentWidth = 40
	maxContentWidth = 72
	listPageSize    = 10
)

// View renders the whole overlay: the active panel window, the toast stack,
// and the optional footer.
func (m *Model) View() string {
	var sections []string

	id, phase := m.registry.Displayed()
	if body, title, ok := m.panelView(id); ok {
		window := m.renderWindow(title, body)
		if phase == panel.Opening || phase == panel.Closing {
			window = lipgloss.NewStyle().Faint(true).Render(window)
		}
		sections = append(sections, window)
	}

	if toasts := m.renderToasts(); toasts != "" {
		if m.prefs.NotificationPosition == "bottom-left" || m.prefs.NotificationPosition == "bottom-right" {
			sections = append(sections, toasts)
		} else {
			sections = append([]string{toasts}, sections...)
		}
	}

	if m.infoMsg != "" && time.Now().Before(m.infoExpire) && m.styles.Info != nil {
		sections = append(sections, m.styles.Info.Render(m.infoMsg))
	}
	if m.errMsg != "" && m.styles.Error != nil {
		sections = append(sections, m.styles.Error.Render(m.errMsg))
	}
	if m.showFooter {
		sections = append(sections, m.renderFooter())
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n")
}

func (m *Model) panelView(id panel.ID) (body, title string, ok bool) {
	switch id {
	case panel.Amount:
		return m.viewAmount(), m.amountPanel.Title, true
	case panel.List:
		frame := m.stack.Current()
		if frame == nil {
			return "", "", false
		}
		return m.viewList(frame), frame.Title, true
	case panel.Dropdown:
		return m.viewDropdown(), m.drop.Title, true
	case panel.Settings:
		if m.session == nil {
			return "", "", false
		}
		return m.viewSettings(), "Settings", true
	case panel.Banking:
		return m.viewBanking(), m.bank.Account.BankName, true
	case panel.Transfer:
		return m.viewTransfer(), "Transfer", true
	case panel.Statement:
		return m.viewStatement(), "Statement", true
	case panel.Shop:
		return m.viewShop(), m.flow.Catalog.Title, true
	}
	return "", "", false
}

func (m *Model) contentWidth() int {
	width := m.width - 4
	if width < minContentWidth {
		width = minContentWidth
	}
	if width > maxContentWidth {
		width = maxContentWidth
	}
	return width
}

func (m *Model) renderWindow(title, body string) string {
	width := m.contentWidth()
	var b strings.Builder
	if title != "" && m.styles.Title != nil {
		b.WriteString(m.styles.Title.Render(truncate.StringWithTail(title, uint(width), "…")))
		b.WriteString("\n")
	}
	b.WriteString(body)
	if m.styles.Window == nil {
		return b.String()
	}
	return m.styles.Window.Width(width).Render(b.String())
}

func (m *Model) viewAmount() string {
	var b strings.Builder
	b.WriteString(m.amountPanel.View())
	b.WriteString("\n\n")
	if m.styles.Footer != nil {
		b.WriteString(m.styles.Footer.Render("↑/↓ adjust · enter confirm · esc cancel"))
	}
	return b.String()
}

func (m *Model) viewList(frame *menu.Frame) string {
	width := m.contentWidth()
	var b strings.Builder

	if frame.Filter != "" {
		prompt := "/"
		if m.styles.FilterPrompt != nil {
			prompt = m.styles.FilterPrompt.Render("/")
		}
		filter := frame.Filter
		if m.styles.Filter != nil {
			filter = m.styles.Filter.Render(frame.Filter)
		}
		b.WriteString(prompt + filter + "\n")
	}

	visible := frame.Visible()
	if len(visible) == 0 {
		if m.styles.Info != nil {
			b.WriteString(m.styles.Info.Render("no matches"))
		}
		return b.String()
	}

	start := 0
	if frame.Cursor >= listPageSize {
		start = frame.Cursor - listPageSize + 1
	}
	end := start + listPageSize
	if end > len(visible) {
		end = len(visible)
	}

	for i := start; i < end; i++ {
		entry := visible[i]
		label := entry.Item.Label
		if entry.Item.Icon != "" {
			label = entry.Item.Icon + " " + label
		}
		if entry.Item.Kind == menu.Submenu {
			label += " →"
		}
		if entry.Item.Price > 0 {
			label += "  " + formatPrice(entry.Item.Price)
		}
		label = truncate.StringWithTail(label, uint(width-2), "…")

		switch {
		case entry.Item.Disabled && m.styles.DisabledItem != nil:
			b.WriteString("  " + m.styles.DisabledItem.Render(label))
		case i == frame.Cursor:
			indicator := "> "
			if m.styles.SelectedItemIndicator != nil {
				indicator = m.styles.SelectedItemIndicator.Render("> ")
			}
			if m.styles.SelectedItem != nil {
				label = m.styles.SelectedItem.Render(label)
			}
			b.WriteString(indicator + label)
		default:
			indicator := "  "
			if m.styles.ItemIndicator != nil {
				indicator = m.styles.ItemIndicator.Render("· ")
			}
			if m.styles.Item != nil {
				label = m.styles.Item.Render(label)
			}
			b.WriteString(indicator + label)
		}
		b.WriteString("\n")

		if i == frame.Cursor && entry.Item.Description != "" && m.styles.Description != nil {
			desc := truncate.StringWithTail(entry.Item.Description, uint(width-4), "…")
			b.WriteString("    " + m.styles.Description.Render(desc) + "\n")
		}
	}

	if len(visible) > listPageSize && m.styles.Footer != nil {
		b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%d/%d", frame.Cursor+1, len(visible))))
	}
	return b.String()
}

func (m *Model) viewDropdown() string {
	var b strings.Builder

	selected := "Select an option…"
	if _, value, ok := m.drop.Value(); ok {
		selected = value
	}
	if m.styles.Item != nil {
		selected = m.styles.Item.Render(selected)
	}
	marker := "▾"
	if m.drop.ListOpen {
		marker = "▴"
	}
	b.WriteString(selected + " " + marker + "\n")

	if m.drop.ListOpen {
		for i, option := range m.drop.Options {
			line := option
			if i == m.drop.Cursor && m.styles.SelectedItem != nil {
				line = m.styles.SelectedItem.Render(line)
			} else if m.styles.Item != nil {
				line = m.styles.Item.Render(line)
			}
			prefix := "  "
			if i == m.drop.Selected {
				prefix = "✓ "
			}
			b.WriteString(prefix + line + "\n")
		}
	}

	if m.styles.Footer != nil {
		b.WriteString("\n" + m.styles.Footer.Render("space open · enter confirm · esc cancel"))
	}
	return b.String()
}

func (m *Model) viewSettings() string {
	if m.session == nil {
		return ""
	}
	snap := m.session.Current()
	rows := []struct {
		label string
		value string
	}{
		{"Dark mode", onOff(snap.DarkMode)},
		{"Window opacity", fmt.Sprintf("%d%%", settings.FractionToPercent(snap.Opacity))},
		{"Free drag", onOff(snap.FreeDrag)},
		{"Notifications", snap.NotificationPosition},
	}

	var b strings.Builder
	for i, row := range rows {
		line := fmt.Sprintf("%-16s %s", row.label, row.value)
		if i == m.session.Cursor {
			if m.styles.SelectedItem != nil {
				line = m.styles.SelectedItem.Render(line)
			}
			b.WriteString("> " + line)
		} else {
			if m.styles.Item != nil {
				line = m.styles.Item.Render(line)
			}
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.styles.Footer != nil {
		hint := "←/→ adjust · enter save · esc cancel"
		if m.session.Dirty() {
			hint = "unsaved changes · " + hint
		}
		b.WriteString("\n" + m.styles.Footer.Render(hint))
	}
	return b.String()
}

func (m *Model) renderToasts() string {
	active := m.center.Active()
	if len(active) == 0 {
		return ""
	}
	now := time.Now()
	width := 36

	var blocks []string
	for _, rec := range active {
		var b strings.Builder
		title := rec.Title
		if rec.Icon != "" {
			title = rec.Icon + " " + title
		}
		style := m.toastStyle(rec.Type)
		if style != nil {
			title = style.Render(truncate.StringWithTail(title, uint(width), "…"))
		}
		b.WriteString(title)
		if rec.Message != "" {
			b.WriteString("\n")
			message := truncate.StringWithTail(rec.Message, uint(width), "…")
			if m.styles.Info != nil {
				message = m.styles.Info.Render(message)
			}
			b.WriteString(message)
		}
		if !rec.Sticky() {
			b.WriteString("\n")
			b.WriteString(m.progress.ViewAs(rec.Remaining(now)))
		}
		block := b.String()
		if rec.Exiting {
			block = lipgloss.NewStyle().Faint(true).Render(block)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func (m *Model) toastStyle(kind notify.Type) *lipgloss.Style {
	switch kind {
	case notify.Success:
		return m.styles.Success
	case notify.Error:
		return m.styles.Error
	case notify.Warning:
		return m.styles.Warning
	default:
		return m.styles.Info
	}
}

func (m *Model) renderFooter() string {
	if m.styles.Footer == nil {
		return ""
	}
	hint := "esc close"
	switch m.registry.Active() {
	case panel.List:
		hint = "↑/↓ move · enter select · type to filter · esc back"
	case panel.Shop:
		hint = "tab cart · c checkout · esc leave shop"
	case panel.Banking:
		hint = "d/w/t/s actions · esc close"
	}
	return m.styles.Footer.Render(truncate.StringWithTail(hint, uint(m.contentWidth()), "…"))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
