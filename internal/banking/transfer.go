package banking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Form fields in focus order.
const (
	fieldRecipient = iota
	fieldAmount
	fieldDescription
	fieldTotal
)

// Form is the transfer sub-screen: recipient, amount, optional note.
type Form struct {
	inputs  []textinput.Model
	focus   int
	Done    bool // success screen showing
	LastRef string
}

// NewForm builds an empty transfer form.
func NewForm() Form {
	recipient := textinput.New()
	recipient.Placeholder = "Recipient account"
	recipient.CharLimit = 32
	recipient.Width = 24

	amount := textinput.New()
	amount.Placeholder = "Amount"
	amount.CharLimit = 9
	amount.Width = 24
	amount.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 64
	description.Width = 24

	return Form{inputs: []textinput.Model{recipient, amount, description}}
}

// Reset clears every field and returns focus to the recipient.
func (f *Form) Reset() {
	if f.inputs == nil {
		*f = NewForm()
	}
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.Done = false
	f.LastRef = ""
}

// Focus gives the current field input focus.
func (f *Form) Focus() tea.Cmd {
	if f.inputs == nil {
		*f = NewForm()
	}
	return f.inputs[f.focus].Focus()
}

// Blur removes focus from every field.
func (f *Form) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// CycleFocus moves focus to the next (or previous) field.
func (f *Form) CycleFocus(backward bool) tea.Cmd {
	f.inputs[f.focus].Blur()
	if backward {
		f.focus = (f.focus + fieldTotal - 1) % fieldTotal
	} else {
		f.focus = (f.focus + 1) % fieldTotal
	}
	return f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// FieldViews renders every field for the transfer screen.
func (f *Form) FieldViews() []string {
	if f.inputs == nil {
		*f = NewForm()
	}
	views := make([]string, len(f.inputs))
	for i := range f.inputs {
		views[i] = f.inputs[i].View()
	}
	return views
}

// Recipient returns the trimmed recipient field.
func (f *Form) Recipient() string {
	return strings.TrimSpace(f.inputs[fieldRecipient].Value())
}

// Amount parses the amount field. Zero and garbage both return an error.
func (f *Form) Amount() (int, error) {
	raw := strings.TrimSpace(f.inputs[fieldAmount].Value())
	if raw == "" {
		return 0, errors.New("enter an amount")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("amount must be a whole number")
	}
	if v <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return v, nil
}

// Description returns the trimmed note field.
func (f *Form) Description() string {
	return strings.TrimSpace(f.inputs[fieldDescription].Value())
}

// Validate checks the form against the available bank balance.
func (f *Form) Validate(bankBalance float64) error {
	if f.Recipient() == "" {
		return errors.New("enter a recipient account")
	}
	amount, err := f.Amount()
	if err != nil {
		return err
	}
	if float64(amount) > bankBalance {
		return errors.New("insufficient bank balance")
	}
	return nil
}

// Build creates the transfer transaction after validation passed. The
// reference id doubles as the success-screen receipt number.
func (f *Form) Build(now time.Time) Transaction {
	amount, _ := f.Amount()
	description := f.Description()
	if description == "" {
		description = fmt.Sprintf("Transfer to %s", f.Recipient())
	}
	ref := uuid.NewString()
	f.LastRef = ref
	f.Done = true
	return Transaction{
		Ref:         ref,
		Type:        "transfer",
		Amount:      float64(amount),
		When:        now,
		Date:        now.Format("2006-01-02 15:04"),
		Description: description,
		Category:    "transfer",
	}
}
