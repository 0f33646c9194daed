package amount

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, Min},
		{-50, Min},
		{1, 1},
		{500, 500},
		{Max, Max},
		{Max + 1, Max},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestShowClampsInitial(t *testing.T) {
	p := New()
	p.Show("Enter Amount", 0, nil)
	v, ok := p.Value()
	if !ok || v != Min {
		t.Fatalf("expected minimum after zero initial, got %d ok=%v", v, ok)
	}
}

func TestValueRejectsEmptyAndGarbage(t *testing.T) {
	p := New()
	p.Show("Enter Amount", 100, nil)
	p.input.SetValue("")
	if _, ok := p.Value(); ok {
		t.Fatalf("expected empty field to report no value")
	}
	p.input.SetValue("0")
	if _, ok := p.Value(); ok {
		t.Fatalf("expected zero to report no value")
	}
}

func TestAdjustClampsAtBounds(t *testing.T) {
	p := New()
	p.Show("Enter Amount", Min, nil)
	p.Adjust(-10)
	if v, _ := p.Value(); v != Min {
		t.Fatalf("expected floor at %d, got %d", Min, v)
	}
	p.Show("Enter Amount", Max, nil)
	p.Adjust(100)
	if v, _ := p.Value(); v != Max {
		t.Fatalf("expected ceiling at %d, got %d", Max, v)
	}
}

func TestAdjustFromEmptyStartsAtMin(t *testing.T) {
	p := New()
	p.Show("Enter Amount", 100, nil)
	p.input.SetValue("")
	p.Adjust(5)
	if v, _ := p.Value(); v != Min+5 {
		t.Fatalf("expected %d, got %d", Min+5, v)
	}
}

func TestSubmitInvokesHandlerWithClampedValue(t *testing.T) {
	p := New()
	var got int
	p.Show("Enter Amount", 1, func(v int) tea.Cmd {
		got = v
		return nil
	})
	p.input.SetValue("2500")
	if _, ok := p.Submit(); !ok {
		t.Fatalf("expected submit to accept valid value")
	}
	if got != 2500 {
		t.Fatalf("expected handler called with 2500, got %d", got)
	}
}

func TestSubmitRefusesUnusableValue(t *testing.T) {
	p := New()
	called := false
	p.Show("Enter Amount", 1, func(int) tea.Cmd {
		called = true
		return nil
	})
	p.input.SetValue("")
	if _, ok := p.Submit(); ok {
		t.Fatalf("expected submit rejected for empty field")
	}
	if called {
		t.Fatalf("expected handler not called")
	}
}
