package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/logging/events"
)

// Type classifies a toast for styling and default icon.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

const (
	// DefaultDuration applies when the host omits one.
	DefaultDuration = 5 * time.Second
	// ExitDuration is how long a dismissed toast lingers while animating out.
	ExitDuration = 350 * time.Millisecond
	// MaxActive caps concurrent toasts; the oldest is evicted beyond this.
	MaxActive = 5
)

// Spec is a toast request before defaults are applied.
type Spec struct {
	Type     Type
	Title    string
	Message  string
	Icon     string
	Duration time.Duration // 0 means DefaultDuration, negative means sticky
	Closable *bool         // nil means true
}

// Record is one live toast.
type Record struct {
	ID       int
	Type     Type
	Title    string
	Message  string
	Icon     string
	Duration time.Duration
	Closable bool
	Created  time.Time
	Exiting  bool
}

// Sticky reports whether the toast never auto-expires.
func (r *Record) Sticky() bool {
	return r.Duration < 0
}

// Remaining returns the fraction of lifetime left, for the progress bar.
func (r *Record) Remaining(now time.Time) float64 {
	if r.Sticky() || r.Duration == 0 {
		return 1
	}
	left := 1 - float64(now.Sub(r.Created))/float64(r.Duration)
	if left < 0 {
		return 0
	}
	if left > 1 {
		return 1
	}
	return left
}

// ExpireMsg fires when a toast's lifetime ends.
type ExpireMsg struct{ ID int }

// RemoveMsg fires when a toast's exit animation ends.
type RemoveMsg struct{ ID int }

// Center owns every live toast. IDs increase monotonically and are never
// reused within a session.
type Center struct {
	nextID int
	active []*Record
	now    func() time.Time
}

// NewCenter builds an empty notification center.
func NewCenter() *Center {
	return &Center{nextID: 1, now: time.Now}
}

// Active returns the live toasts, oldest first.
func (c *Center) Active() []*Record {
	return c.active
}

// Create adds a toast with defaults applied and returns its expiry command.
func (c *Center) Create(spec Spec) (*Record, tea.Cmd) {
	if spec.Type == "" {
		spec.Type = Info
	}
	if spec.Duration == 0 {
		spec.Duration = DefaultDuration
	}
	closable := true
	if spec.Closable != nil {
		closable = *spec.Closable
	}

	rec := &Record{
		ID:       c.nextID,
		Type:     spec.Type,
		Title:    spec.Title,
		Message:  spec.Message,
		Icon:     spec.Icon,
		Duration: spec.Duration,
		Closable: closable,
		Created:  c.now(),
	}
	c.nextID++

	var cmds []tea.Cmd
	if evicted := c.evictOverflow(); evicted != nil {
		cmds = append(cmds, evicted)
	}
	c.active = append(c.active, rec)
	events.Notify.Created(rec.ID, string(rec.Type))

	if !rec.Sticky() {
		id := rec.ID
		cmds = append(cmds, tea.Tick(rec.Duration, func(time.Time) tea.Msg {
			return ExpireMsg{ID: id}
		}))
	}
	if len(cmds) == 0 {
		return rec, nil
	}
	return rec, tea.Batch(cmds...)
}

// Close begins a toast's exit animation. Unknown or already-exiting ids are
// ignored, so expiry racing a manual close is harmless.
func (c *Center) Close(id int) tea.Cmd {
	rec := c.find(id)
	if rec == nil || rec.Exiting {
		return nil
	}
	rec.Exiting = true
	events.Notify.Closed(id)
	return tea.Tick(ExitDuration, func(time.Time) tea.Msg {
		return RemoveMsg{ID: id}
	})
}

// Remove drops a toast once its exit animation finished.
func (c *Center) Remove(id int) {
	for i, rec := range c.active {
		if rec.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// CloseAll dismisses every closable toast.
func (c *Center) CloseAll() tea.Cmd {
	var cmds []tea.Cmd
	for _, rec := range c.active {
		if rec.Closable {
			if cmd := c.Close(rec.ID); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (c *Center) find(id int) *Record {
	for _, rec := range c.active {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// evictOverflow makes room for one more toast by closing the oldest
// non-exiting record when the cap is reached.
func (c *Center) evictOverflow() tea.Cmd {
	live := 0
	for _, rec := range c.active {
		if !rec.Exiting {
			live++
		}
	}
	if live < MaxActive {
		return nil
	}
	for _, rec := range c.active {
		if !rec.Exiting {
			events.Notify.Evicted(rec.ID)
			return c.Close(rec.ID)
		}
	}
	return nil
}
