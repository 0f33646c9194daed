package host

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/eskui/overlay-control/internal/logging"
	"github.com/eskui/overlay-control/internal/logging/events"
)

// Event conveys a decoded host command or a transport error.
type Event struct {
	Cmd Command
	Err error
}

// Listener maintains a websocket subscription to the host's command stream
// and publishes decoded envelopes.
type Listener struct {
	url string

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewListener connects to the given websocket URL and starts reading. The
// connection is retried with pacing until Stop is called.
func NewListener(url string) *Listener {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Listener{
		url:    url,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	l.wg.Add(1)
	go l.run()

	go func() {
		l.wg.Wait()
		close(l.events)
	}()

	return l
}

// Events returns the channel of inbound host events.
func (l *Listener) Events() <-chan Event {
	return l.events
}

// Stop cancels the listener. The read loop exits once the current read
// unblocks; use Wait for a clean drain (e.g. in tests).
func (l *Listener) Stop() {
	l.cancel()
}

// Wait blocks until the read loop has exited and the events channel is closed.
func (l *Listener) Wait() {
	l.wg.Wait()
}

func (l *Listener) run() {
	defer l.wg.Done()

	throttle := newThrottle(time.Second)
	for {
		if l.ctx.Err() != nil {
			return
		}
		throttle.wait()

		conn, _, err := websocket.DefaultDialer.DialContext(l.ctx, l.url, nil)
		if err != nil {
			if l.ctx.Err() != nil {
				return
			}
			logging.Error(err)
			continue
		}
		events.Host.Connected(l.url)

		if !l.read(conn) {
			return
		}
	}
}

// read pumps one connection until it fails. Returns false when the listener
// is shutting down.
func (l *Listener) read(conn *websocket.Conn) bool {
	defer conn.Close()

	// Unblock ReadMessage on Stop.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-l.ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if l.ctx.Err() != nil {
				return false
			}
			events.Host.Disconnected(err)
			return true
		}

		cmd, err := Decode(data)
		if err != nil {
			if unknown, ok := err.(ErrUnknownKind); ok {
				events.Host.UnknownCommand(unknown.Kind)
				continue
			}
			logging.Error(err)
			continue
		}
		events.Host.Command(string(cmd.Kind))

		select {
		case <-l.ctx.Done():
			return false
		case l.events <- Event{Cmd: cmd}:
		}
	}
}
