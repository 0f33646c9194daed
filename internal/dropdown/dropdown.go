package dropdown

// Panel is the single-choice selector. The option list opens and closes
// independently of the panel itself.
type Panel struct {
	Title    string
	Options  []string
	Selected int // -1 when nothing chosen yet
	Cursor   int
	ListOpen bool
}

// New builds an idle dropdown.
func New() *Panel {
	return &Panel{Selected: -1}
}

// Show resets the panel for a new prompt. selected may be nil or out of
// range, both meaning no preselection.
func (p *Panel) Show(title string, options []string, selected *int) {
	p.Title = title
	p.Options = append([]string(nil), options...)
	p.Selected = -1
	p.Cursor = 0
	p.ListOpen = false
	if selected != nil && *selected >= 0 && *selected < len(options) {
		p.Selected = *selected
		p.Cursor = *selected
	}
}

// Toggle opens or closes the option list.
func (p *Panel) Toggle() {
	if len(p.Options) == 0 {
		return
	}
	p.ListOpen = !p.ListOpen
	if p.ListOpen && p.Selected >= 0 {
		p.Cursor = p.Selected
	}
}

// MoveCursor shifts the highlight inside the open list.
func (p *Panel) MoveCursor(delta int) {
	if !p.ListOpen || len(p.Options) == 0 {
		return
	}
	next := p.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(p.Options) {
		next = len(p.Options) - 1
	}
	p.Cursor = next
}

// Choose commits the highlighted option and closes the list.
func (p *Panel) Choose() {
	if !p.ListOpen || p.Cursor < 0 || p.Cursor >= len(p.Options) {
		return
	}
	p.Selected = p.Cursor
	p.ListOpen = false
}

// CloseList collapses the option list without changing the selection.
// Returns false when the list was already closed, meaning escape should
// close the whole panel instead.
func (p *Panel) CloseList() bool {
	if !p.ListOpen {
		return false
	}
	p.ListOpen = false
	return true
}

// Value returns the confirmed selection. ok is false when nothing is chosen,
// in which case submit degrades to a plain close.
func (p *Panel) Value() (index int, value string, ok bool) {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return 0, "", false
	}
	return p.Selected, p.Options[p.Selected], true
}
