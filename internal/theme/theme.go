package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Window                *lipgloss.Style
	Title                 *lipgloss.Style
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	DisabledItem          *lipgloss.Style
	Description           *lipgloss.Style
	Price                 *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Success               *lipgloss.Style
	Warning               *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	Button                *lipgloss.Style
	ButtonActive          *lipgloss.Style
	ButtonDisabled        *lipgloss.Style
}

var darkStyles = Styles{
	Window: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Price: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 2),
	),
	ButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 2),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true).Padding(0, 2),
	),
}

var lightStyles = Styles{
	Window: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Background(lipgloss.Color("254")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("254")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Faint(true),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Price: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Padding(0, 2),
	),
	ButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Bold(true).Padding(0, 2),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Faint(true).Padding(0, 2),
	),
}

// Default exposes the dark style set, the normal overlay appearance.
func Default() *Styles {
	return &darkStyles
}

// Light exposes the light style set used when dark mode is off.
func Light() *Styles {
	return &lightStyles
}

// ForDarkMode picks the style set matching the dark mode preference.
func ForDarkMode(dark bool) *Styles {
	if dark {
		return &darkStyles
	}
	return &lightStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
