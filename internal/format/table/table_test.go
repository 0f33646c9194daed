package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Cash", "$250"},
		{"Bank", "$1,000"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignRight})
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if out[0] != "Cash    $250" {
		t.Fatalf("unexpected first line %q", out[0])
	}
	if out[1] != "Bank  $1,000" {
		t.Fatalf("unexpected second line %q", out[1])
	}
}

func TestFormatMeasuresStyledCells(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)
	rows := [][]string{
		{bold.Render("Cash"), "$5"},
		{"Balance", "$10"},
	}
	out := Format(rows, nil)
	w0 := lipgloss.Width(out[0])
	w1 := lipgloss.Width(out[1])
	if w0 > w1 {
		t.Fatalf("expected styled cell padded by display width, got %d vs %d", w0, w1)
	}
}

func TestFormatTrimsTrailingPadding(t *testing.T) {
	rows := [][]string{
		{"Short", "x"},
		{"Much longer cell", "y"},
	}
	out := Format(rows, nil)
	for _, line := range out {
		if strings.HasSuffix(line, " ") {
			t.Fatalf("expected trailing padding trimmed, got %q", line)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil for no rows, got %#v", out)
	}
}
