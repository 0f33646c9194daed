package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/notify"
	"github.com/eskui/overlay-control/internal/panel"
	"github.com/eskui/overlay-control/internal/shop"
)

// enterPayment moves to the payment screen and fires the fresh balance and
// tax fetches. Both are requested on every entry, never cached.
func (m *Model) enterPayment() tea.Cmd {
	generation, err := m.flow.EnterPayment()
	if err != nil {
		return m.toast(notify.Warning, "Cart is empty", "Add something before checking out")
	}
	m.insufficientWarned = false
	m.payCursor = 0
	return tea.Batch(
		fetchBalances(m.client, generation),
		fetchTaxRates(m.client, generation),
	)
}

func (m *Model) selectPaymentMethod(method shop.Method) tea.Cmd {
	generation, err := m.flow.SelectMethod(method, time.Now())
	switch err {
	case nil:
	case shop.ErrStillLoading:
		return nil
	case shop.ErrInsufficientFunds:
		return m.toast(notify.Error, "Insufficient funds", "That account cannot cover the total")
	default:
		return nil
	}

	lines := make([]host.CheckoutLine, 0, m.flow.Cart.Len())
	for _, l := range m.flow.Cart.Lines() {
		lines = append(lines, host.CheckoutLine{
			ID:            l.ID,
			Name:          l.Name,
			Price:         l.Price,
			Quantity:      l.Quantity,
			InventoryName: l.InventoryName,
		})
	}
	// The host applies tax itself; the request carries the raw cart total.
	return tea.Batch(
		m.spinner.Tick,
		submitCheckout(m.client, generation, lines, m.flow.Cart.Total(), string(method)),
	)
}

func (m *Model) handleBalancesLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded := msg.(balancesLoadedMsg)
	if loaded.err != nil {
		if loaded.generation != m.flow.Generation() {
			return nil
		}
		m.flow.BackToShop()
		return m.toast(notify.Error, "Bank unavailable", "Could not load your balances")
	}
	if !m.flow.ApplyBalances(loaded.generation, loaded.balances) {
		return nil
	}
	return m.warnIfBroke()
}

func (m *Model) handleTaxRatesLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded := msg.(taxRatesLoadedMsg)
	if loaded.err != nil {
		if loaded.generation != m.flow.Generation() {
			return nil
		}
		m.flow.BackToShop()
		return m.toast(notify.Error, "Bank unavailable", "Could not load tax rates")
	}
	if !m.flow.ApplyRates(loaded.generation, loaded.rates) {
		return nil
	}
	return m.warnIfBroke()
}

// warnIfBroke raises exactly one error toast per payment entry when neither
// method can cover the total.
func (m *Model) warnIfBroke() tea.Cmd {
	if m.flow.Loading() || m.insufficientWarned || !m.flow.BothInsufficient() {
		return nil
	}
	m.insufficientWarned = true
	return m.toast(notify.Error, "Insufficient funds", "Neither cash nor bank can cover this purchase")
}

func (m *Model) handleCheckoutResultMsg(msg tea.Msg) tea.Cmd {
	result := msg.(checkoutResultMsg)
	if result.generation != m.flow.Generation() || m.flow.Screen != shop.ScreenProcessing {
		return nil
	}
	success := result.err == nil
	reason := ""
	if result.err != nil {
		reason = result.err.Error()
	}
	// The outcome is held back until the minimum processing dwell elapses.
	return revealOutcome(m.flow.OutcomeDelay(time.Now()), result.generation, success, reason)
}

func (m *Model) handleOutcomeMsg(msg tea.Msg) tea.Cmd {
	outcome := msg.(outcomeMsg)
	if outcome.success {
		m.flow.Succeed(outcome.generation)
		return nil
	}
	m.flow.Fail(outcome.generation, outcome.reason)
	return nil
}

// continueShopping rebuilds the shop screen after an outcome. After a success
// the host is told a fresh purchase can begin.
func (m *Model) continueShopping() tea.Cmd {
	wasComplete := m.flow.ContinueShopping()
	m.shopFocus = zoneItems
	m.shopItemCursor = 0
	m.shopCartCursor = 0
	m.confirmClear = false
	if !wasComplete {
		return nil
	}
	return m.post("shopReadyForNewPurchase", func(ctx context.Context) error {
		return m.client.ShopReadyForNewPurchase(ctx)
	})
}

// exitShopping is the only place the shop session closes and releases focus;
// every in-flow screen change deliberately keeps focus held.
func (m *Model) exitShopping() tea.Cmd {
	return m.registry.Hide(panel.Shop, func() tea.Cmd {
		m.flow.Reset()
		m.confirmClear = false
		return m.post("close", func(ctx context.Context) error {
			return m.client.Close(ctx)
		})
	})
}
