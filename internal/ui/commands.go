package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/ui/command"
)

// hostEventMsg delivers one decoded inbound host command.
type hostEventMsg struct {
	event host.Event
}

// hostDoneMsg signals the listener channel closed.
type hostDoneMsg struct{}

// balancesLoadedMsg carries a getPlayerBalances result stamped with the
// payment generation that requested it.
type balancesLoadedMsg struct {
	generation int
	balances   host.Balances
	err        error
}

// taxRatesLoadedMsg carries a getTaxRates result.
type taxRatesLoadedMsg struct {
	generation int
	rates      host.TaxRates
	err        error
}

// checkoutResultMsg carries the host's verdict on a submitted purchase.
type checkoutResultMsg struct {
	generation int
	err        error
}

// outcomeMsg reveals the processing outcome once the minimum dwell elapsed.
type outcomeMsg struct {
	generation int
	success    bool
	reason     string
}

// notifyFrameMsg re-renders toast progress bars while any are visible.
type notifyFrameMsg struct{}

// dragSettleMsg clears the drag guard shortly after a drop, so a hide racing
// the release still loses.
type dragSettleMsg struct{}

const (
	fetchTimeout     = 5 * time.Second
	notifyFrameEvery = 250 * time.Millisecond
	dragSettleDelay  = 100 * time.Millisecond
)

func waitForHostEvent(l *host.Listener) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-l.Events()
		if !ok {
			return hostDoneMsg{}
		}
		return hostEventMsg{event: event}
	}
}

func fetchBalances(client *host.Client, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		balances, err := client.GetPlayerBalances(ctx)
		return balancesLoadedMsg{generation: generation, balances: balances, err: err}
	}
}

func fetchTaxRates(client *host.Client, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		rates, err := client.GetTaxRates(ctx)
		return taxRatesLoadedMsg{generation: generation, rates: rates, err: err}
	}
}

func submitCheckout(client *host.Client, generation int, lines []host.CheckoutLine, total float64, method string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := client.ShopCheckout(ctx, lines, total, method)
		return checkoutResultMsg{generation: generation, err: err}
	}
}

func revealOutcome(delay time.Duration, generation int, success bool, reason string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return outcomeMsg{generation: generation, success: success, reason: reason}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return outcomeMsg{generation: generation, success: success, reason: reason}
	})
}

func notifyFrame() tea.Cmd {
	return tea.Tick(notifyFrameEvery, func(time.Time) tea.Msg {
		return notifyFrameMsg{}
	})
}

func dragSettle() tea.Cmd {
	return tea.Tick(dragSettleDelay, func(time.Time) tea.Msg {
		return dragSettleMsg{}
	})
}

// post queues a fire-and-forget callback through the bus.
func (m *Model) post(endpoint string, send func(ctx context.Context) error) tea.Cmd {
	return m.bus.Execute(command.Request{Endpoint: endpoint, Send: send})
}
