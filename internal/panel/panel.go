package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/logging/events"
)

// ID names a top-level panel. Submenus render inside the list panel and are
// not registered here.
type ID string

const (
	Amount    ID = "amount"
	List      ID = "list"
	Dropdown  ID = "dropdown"
	Settings  ID = "settings"
	Banking   ID = "banking"
	Transfer  ID = "transfer"
	Statement ID = "statement"
	Shop      ID = "shop"
)

// Phase is the lifecycle of a panel's open/close animation.
type Phase int

const (
	Closed Phase = iota
	Opening
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// AnimDuration is how long a single open or close transition takes.
const AnimDuration = 300 * time.Millisecond

// TickMsg marks the end of one panel transition. Seq guards against ticks
// from superseded transitions.
type TickMsg struct {
	ID  ID
	Seq int
}

var knownIDs = map[ID]bool{
	Amount:    true,
	List:      true,
	Dropdown:  true,
	Settings:  true,
	Banking:   true,
	Transfer:  true,
	Statement: true,
	Shop:      true,
}

// Registry tracks the phase of every panel and enforces the one-visible-panel
// rule. All transitions run through a single timed tick per panel.
type Registry struct {
	phases   map[ID]Phase
	active   ID
	closing  ID
	seq      map[ID]int
	dragging bool

	// pendingShow is opened once the currently closing panel finishes.
	pendingShow ID
	onClosed    map[ID][]func() tea.Cmd

	// onVisibility fires on the none-visible <-> some-visible edge.
	onVisibility func(visible bool) tea.Cmd
}

// NewRegistry builds an empty registry. onVisibility may be nil.
func NewRegistry(onVisibility func(visible bool) tea.Cmd) *Registry {
	return &Registry{
		phases:       make(map[ID]Phase),
		seq:          make(map[ID]int),
		onClosed:     make(map[ID][]func() tea.Cmd),
		onVisibility: onVisibility,
	}
}

// Active returns the panel currently opening or open, or "" when none.
func (r *Registry) Active() ID {
	return r.active
}

// Phase reports the lifecycle phase of a panel.
func (r *Registry) Phase(id ID) Phase {
	return r.phases[id]
}

// Displayed returns the panel a view should render and its phase: the active
// panel, or the one still animating closed so the dim-out stays on screen for
// the whole close transition.
func (r *Registry) Displayed() (ID, Phase) {
	if r.active != "" {
		return r.active, r.phases[r.active]
	}
	if r.closing != "" && r.phases[r.closing] == Closing {
		return r.closing, Closing
	}
	return "", Closed
}

// Visible reports whether any panel is not fully closed.
func (r *Registry) Visible() bool {
	for _, p := range r.phases {
		if p != Closed {
			return true
		}
	}
	return false
}

// SetDragging marks a drag in progress, which blocks HideAll.
func (r *Registry) SetDragging(dragging bool) {
	r.dragging = dragging
}

// Dragging reports whether a drag is in progress.
func (r *Registry) Dragging() bool {
	return r.dragging
}

// Show opens a panel. Showing the already-active panel is a no-op so content
// can be re-rendered in place. If another panel is visible it is closed first
// and the new one opens when the close animation completes.
func (r *Registry) Show(id ID) tea.Cmd {
	if !knownIDs[id] {
		events.Panel.Unknown(string(id))
		return nil
	}
	if r.active == id && r.phases[id] != Closing {
		return nil
	}
	events.Panel.Show(string(id))

	wasVisible := r.Visible()

	if r.active != "" && r.active != id {
		prev := r.active
		r.pendingShow = id
		return r.beginClose(prev)
	}

	cmd := r.beginOpen(id)
	if !wasVisible && r.onVisibility != nil {
		return tea.Batch(cmd, r.onVisibility(true))
	}
	return cmd
}

// Hide closes a panel if it is visible. onClosed runs when the close
// animation finishes.
func (r *Registry) Hide(id ID, onClosed func() tea.Cmd) tea.Cmd {
	if !knownIDs[id] {
		events.Panel.Unknown(string(id))
		return nil
	}
	if r.phases[id] == Closed || r.phases[id] == Closing {
		if onClosed != nil && r.phases[id] == Closed {
			return onClosed()
		}
		if onClosed != nil {
			r.onClosed[id] = append(r.onClosed[id], onClosed)
		}
		return nil
	}
	events.Panel.Hide(string(id))
	if onClosed != nil {
		r.onClosed[id] = append(r.onClosed[id], onClosed)
	}
	return r.beginClose(id)
}

// CloseCurrent closes whichever panel is active.
func (r *Registry) CloseCurrent(onClosed func() tea.Cmd) tea.Cmd {
	if r.active == "" {
		if onClosed != nil {
			return onClosed()
		}
		return nil
	}
	return r.Hide(r.active, onClosed)
}

// HideAll force-closes everything. Rejected while a drag is in progress so a
// drop never lands on a dead surface.
func (r *Registry) HideAll(onClosed func() tea.Cmd) tea.Cmd {
	if r.dragging {
		events.Panel.DragBlocked(string(r.active))
		return nil
	}
	r.pendingShow = ""
	var cmds []tea.Cmd
	for id, phase := range r.phases {
		if phase == Open || phase == Opening {
			cmds = append(cmds, r.beginClose(id))
		}
	}
	if len(cmds) == 0 {
		if onClosed != nil {
			return onClosed()
		}
		return nil
	}
	if onClosed != nil && r.active != "" {
		r.onClosed[r.active] = append(r.onClosed[r.active], onClosed)
	}
	return tea.Batch(cmds...)
}

// Advance processes a transition tick. Stale ticks (superseded transitions)
// are dropped.
func (r *Registry) Advance(msg TickMsg) tea.Cmd {
	if msg.Seq != r.seq[msg.ID] {
		return nil
	}
	switch r.phases[msg.ID] {
	case Opening:
		r.phases[msg.ID] = Open
		events.Panel.Phase(string(msg.ID), Open.String())
		return nil
	case Closing:
		r.phases[msg.ID] = Closed
		if r.closing == msg.ID {
			r.closing = ""
		}
		events.Panel.Phase(string(msg.ID), Closed.String())
		var cmds []tea.Cmd
		for _, fn := range r.onClosed[msg.ID] {
			if cmd := fn(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		delete(r.onClosed, msg.ID)

		if r.pendingShow != "" {
			next := r.pendingShow
			r.pendingShow = ""
			cmds = append(cmds, r.beginOpen(next))
		} else if !r.Visible() && r.onVisibility != nil {
			if cmd := r.onVisibility(false); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			return nil
		}
		return tea.Batch(cmds...)
	default:
		return nil
	}
}

func (r *Registry) beginOpen(id ID) tea.Cmd {
	r.phases[id] = Opening
	r.active = id
	if r.closing == id {
		r.closing = ""
	}
	r.seq[id]++
	delete(r.onClosed, id) // reopening cancels any queued close continuations
	events.Panel.Phase(string(id), Opening.String())
	return r.tick(id)
}

func (r *Registry) beginClose(id ID) tea.Cmd {
	r.phases[id] = Closing
	if r.active == id {
		r.active = ""
		r.closing = id
	}
	r.seq[id]++
	events.Panel.Phase(string(id), Closing.String())
	return r.tick(id)
}

func (r *Registry) tick(id ID) tea.Cmd {
	seq := r.seq[id]
	return tea.Tick(AnimDuration, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Seq: seq}
	})
}
