package command

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/logging/events"
)

// Request encapsulates one outbound host callback.
type Request struct {
	Endpoint string
	Send     func(ctx context.Context) error
}

// Result reports a completed callback back into the update loop. Err is
// informational; callback failures never block the UI.
type Result struct {
	Endpoint string
	Err      error
}

// Bus coordinates outbound host callbacks.
type Bus struct {
	timeout time.Duration
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{timeout: 5 * time.Second}
}

// Execute wraps a callback into a Bubble Tea command while emitting trace
// logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	return func() tea.Msg {
		if req.Send == nil {
			return Result{Endpoint: req.Endpoint}
		}
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()
		err := req.Send(ctx)
		if err != nil {
			events.Host.PostError(req.Endpoint, err)
		}
		return Result{Endpoint: req.Endpoint, Err: err}
	}
}
