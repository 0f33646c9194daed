package dropdown

import "testing"

func opts() []string { return []string{"Red", "Green", "Blue"} }

func TestShowWithPreselection(t *testing.T) {
	p := New()
	sel := 2
	p.Show("Color", opts(), &sel)
	idx, value, ok := p.Value()
	if !ok || idx != 2 || value != "Blue" {
		t.Fatalf("expected preselected Blue, got %d %q ok=%v", idx, value, ok)
	}
}

func TestShowIgnoresOutOfRangePreselection(t *testing.T) {
	p := New()
	sel := 9
	p.Show("Color", opts(), &sel)
	if _, _, ok := p.Value(); ok {
		t.Fatalf("expected no selection for out-of-range index")
	}
}

func TestChooseCommitsAndClosesList(t *testing.T) {
	p := New()
	p.Show("Color", opts(), nil)
	p.Toggle()
	p.MoveCursor(1)
	p.Choose()
	if p.ListOpen {
		t.Fatalf("expected list closed after choose")
	}
	idx, value, ok := p.Value()
	if !ok || idx != 1 || value != "Green" {
		t.Fatalf("expected Green chosen, got %d %q ok=%v", idx, value, ok)
	}
}

func TestMoveCursorClampsAndNeedsOpenList(t *testing.T) {
	p := New()
	p.Show("Color", opts(), nil)
	p.MoveCursor(1)
	if p.Cursor != 0 {
		t.Fatalf("expected cursor unmoved while list closed, got %d", p.Cursor)
	}
	p.Toggle()
	p.MoveCursor(10)
	if p.Cursor != 2 {
		t.Fatalf("expected cursor clamped to last option, got %d", p.Cursor)
	}
	p.MoveCursor(-10)
	if p.Cursor != 0 {
		t.Fatalf("expected cursor clamped to first option, got %d", p.Cursor)
	}
}

func TestCloseListEscapeSemantics(t *testing.T) {
	p := New()
	p.Show("Color", opts(), nil)
	p.Toggle()
	if !p.CloseList() {
		t.Fatalf("expected first escape to collapse the list")
	}
	if p.CloseList() {
		t.Fatalf("expected second escape to fall through to panel close")
	}
}

func TestToggleReopensAtSelection(t *testing.T) {
	p := New()
	sel := 1
	p.Show("Color", opts(), &sel)
	p.Toggle()
	p.MoveCursor(1)
	p.Toggle() // collapse without choosing
	p.Toggle()
	if p.Cursor != 1 {
		t.Fatalf("expected cursor back on selection, got %d", p.Cursor)
	}
}
