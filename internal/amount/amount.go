package amount

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// Min and Max bound every amount the panel can hold.
	Min = 1
	Max = 999999
)

// Clamp forces v into the valid amount range.
func Clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}

// Panel is the single-value numeric input. OnSubmit decides what a confirmed
// amount means; the default host callback is supplied by the caller, and
// banking swaps in deposit/withdraw handlers per opening.
type Panel struct {
	Title    string
	OnSubmit func(value int) tea.Cmd

	input textinput.Model
}

// New builds an idle panel.
func New() *Panel {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(Min)
	ti.CharLimit = 6
	ti.Width = 10
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}
	return &Panel{input: ti}
}

// Show resets the panel for a new prompt. initial is clamped.
func (p *Panel) Show(title string, initial int, onSubmit func(int) tea.Cmd) tea.Cmd {
	p.Title = title
	p.OnSubmit = onSubmit
	p.input.SetValue(strconv.Itoa(Clamp(initial)))
	p.input.CursorEnd()
	return p.input.Focus()
}

// Blur drops input focus when the panel closes.
func (p *Panel) Blur() {
	p.input.Blur()
}

// Value parses the current input, clamped into range. ok is false when the
// field holds nothing usable.
func (p *Panel) Value() (int, bool) {
	raw := strings.TrimSpace(p.input.Value())
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return Clamp(v), true
}

// Adjust shifts the value by delta, clamping the result. An empty field
// starts from the minimum.
func (p *Panel) Adjust(delta int) {
	v, ok := p.Value()
	if !ok {
		v = Min
	}
	p.input.SetValue(strconv.Itoa(Clamp(v + delta)))
	p.input.CursorEnd()
}

// Submit confirms the amount. It returns the OnSubmit command and true when
// the value is valid; an unusable value keeps the panel open.
func (p *Panel) Submit() (tea.Cmd, bool) {
	v, ok := p.Value()
	if !ok {
		return nil, false
	}
	if p.OnSubmit == nil {
		return nil, true
	}
	return p.OnSubmit(v), true
}

// Update forwards messages to the text input.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the input field.
func (p *Panel) View() string {
	return p.input.View()
}
