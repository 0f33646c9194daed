package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/amount"
	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/logging"
	"github.com/eskui/overlay-control/internal/menu"
	"github.com/eskui/overlay-control/internal/notify"
	"github.com/eskui/overlay-control/internal/panel"
	"github.com/eskui/overlay-control/internal/settings"
	"github.com/eskui/overlay-control/internal/shop"
)

func (m *Model) handleHostEventMsg(msg tea.Msg) tea.Cmd {
	event := msg.(hostEventMsg).event
	rearm := waitForHostEvent(m.listener)
	if event.Err != nil {
		logging.Error(event.Err)
		return rearm
	}

	var cmd tea.Cmd
	switch event.Cmd.Kind {
	case host.KindShowAmount:
		cmd = m.showAmount(event.Cmd.ShowAmount)
	case host.KindShowList:
		cmd = m.showList(event.Cmd.ShowList)
	case host.KindShowDropdown:
		cmd = m.showDropdown(event.Cmd.ShowDropdown)
	case host.KindShowSettings:
		cmd = m.showSettings()
	case host.KindShowShop:
		cmd = m.showShop(event.Cmd.ShowShop)
	case host.KindShowBanking:
		cmd = m.showBanking(event.Cmd.ShowBanking)
	case host.KindShowNotification:
		cmd = m.showNotification(event.Cmd.Notification)
	case host.KindToggleDarkMode:
		cmd = m.toggleDarkMode()
	case host.KindHide:
		cmd = m.hideAll()
	}
	if cmd == nil {
		return rearm
	}
	return tea.Batch(cmd, rearm)
}

func (m *Model) showAmount(payload *host.ShowAmount) tea.Cmd {
	title := payload.Title
	if title == "" {
		title = "Enter Amount"
	}
	m.amountReturn = ""
	focus := m.amountPanel.Show(title, amount.Min, func(value int) tea.Cmd {
		return m.closeAndRelease(m.post("amountSubmit", func(ctx context.Context) error {
			return m.client.AmountSubmit(ctx, value)
		}))
	})
	return tea.Batch(m.registry.Show(panel.Amount), focus)
}

func (m *Model) showList(payload *host.ShowList) tea.Cmd {
	items := menu.Normalize(payload.Items)
	frame := menu.NewFrame(payload.Title, items)
	if payload.IsSubmenu && m.stack.Depth() > 0 && m.registry.Phase(panel.List) != panel.Closed {
		// Submenu content renders in place without reopening the panel.
		m.stack.Push(frame)
		return m.registry.Show(panel.List)
	}
	m.stack.Reset(frame)
	return m.registry.Show(panel.List)
}

func (m *Model) showDropdown(payload *host.ShowDropdown) tea.Cmd {
	m.drop.Show(payload.Title, payload.Options, payload.SelectedIndex)
	return m.registry.Show(panel.Dropdown)
}

func (m *Model) showNotification(payload *host.ShowNotification) tea.Cmd {
	spec := notify.Spec{
		Type:    notify.Type(payload.NotificationType),
		Title:   payload.Title,
		Message: payload.Message,
		Icon:    payload.Icon,
	}
	if payload.Duration != nil {
		if *payload.Duration <= 0 {
			spec.Duration = -1
		} else {
			spec.Duration = time.Duration(*payload.Duration) * time.Millisecond
		}
	}
	spec.Closable = payload.Closable
	_, cmd := m.center.Create(spec)
	return tea.Batch(cmd, m.ensureNotifyTicker())
}

func (m *Model) showShop(payload *host.ShowShop) tea.Cmd {
	catalog := shop.Catalog{Title: payload.Title}
	for _, c := range payload.Categories {
		catalog.Categories = append(catalog.Categories, shop.Category(c))
	}
	for _, it := range payload.Items {
		catalog.Items = append(catalog.Items, shop.Item(it))
	}
	m.flow.Open(catalog)
	m.shopFocus = zoneItems
	m.shopItemCursor = 0
	m.shopCartCursor = 0
	m.confirmClear = false
	m.payCursor = 0
	return m.registry.Show(panel.Shop)
}

func (m *Model) showBanking(payload *host.ShowBanking) tea.Cmd {
	m.bank.Open(*payload)
	return m.registry.Show(panel.Banking)
}

func (m *Model) showSettings() tea.Cmd {
	m.session = settings.Open(m.prefs)
	return m.registry.Show(panel.Settings)
}

func (m *Model) toggleDarkMode() tea.Cmd {
	m.prefs.DarkMode = !m.prefs.DarkMode
	m.applyPrefs(m.prefs)
	if err := m.prefsStore.SetDarkMode(m.prefs.DarkMode); err != nil {
		logging.Error(err)
	}
	enabled := m.prefs.DarkMode
	return m.post("darkModeChanged", func(ctx context.Context) error {
		return m.client.DarkModeChanged(ctx, enabled)
	})
}

// hideAll force-closes everything, then releases focus. Rejected while a
// drag is in flight.
func (m *Model) hideAll() tea.Cmd {
	if m.registry.Dragging() {
		return nil
	}
	if !m.registry.Visible() {
		return nil
	}
	return m.registry.HideAll(func() tea.Cmd {
		m.cleanup()
		return m.post("close", func(ctx context.Context) error {
			return m.client.Close(ctx)
		})
	})
}

// cleanup tears down per-panel state after a forced hide.
func (m *Model) cleanup() {
	m.stack.Clear()
	m.amountPanel.Blur()
	m.amountReturn = ""
	m.session = nil
	m.flow.Reset()
	m.bank.Transfer.Blur()
	m.confirmClear = false
}
