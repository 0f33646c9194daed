package notify

import (
	"testing"
	"time"
)

func TestCreateAppliesDefaults(t *testing.T) {
	c := NewCenter()
	rec, cmd := c.Create(Spec{Title: "Saved"})
	if rec.Type != Info {
		t.Fatalf("expected info default, got %q", rec.Type)
	}
	if rec.Duration != DefaultDuration {
		t.Fatalf("expected default duration, got %v", rec.Duration)
	}
	if !rec.Closable {
		t.Fatalf("expected closable by default")
	}
	if cmd == nil {
		t.Fatalf("expected expiry command for non-sticky toast")
	}
}

func TestStickyToastNeverExpires(t *testing.T) {
	c := NewCenter()
	rec, cmd := c.Create(Spec{Title: "Hold", Duration: -1})
	if !rec.Sticky() {
		t.Fatalf("expected sticky toast")
	}
	if cmd != nil {
		t.Fatalf("expected no expiry command for sticky toast")
	}
	if got := rec.Remaining(time.Now().Add(time.Hour)); got != 1 {
		t.Fatalf("expected full remaining for sticky toast, got %v", got)
	}
}

func TestIDsMonotonic(t *testing.T) {
	c := NewCenter()
	a, _ := c.Create(Spec{})
	b, _ := c.Create(Spec{})
	if b.ID != a.ID+1 {
		t.Fatalf("expected increasing ids, got %d then %d", a.ID, b.ID)
	}
	c.Close(a.ID)
	c.Remove(a.ID)
	d, _ := c.Create(Spec{})
	if d.ID <= b.ID {
		t.Fatalf("expected id never reused, got %d after %d", d.ID, b.ID)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewCenter()
	rec, _ := c.Create(Spec{})
	if cmd := c.Close(rec.ID); cmd == nil {
		t.Fatalf("expected removal command on first close")
	}
	if cmd := c.Close(rec.ID); cmd != nil {
		t.Fatalf("expected second close ignored")
	}
	if cmd := c.Close(999); cmd != nil {
		t.Fatalf("expected unknown id ignored")
	}
}

func TestOverflowEvictsOldest(t *testing.T) {
	c := NewCenter()
	var first *Record
	for i := 0; i < MaxActive; i++ {
		rec, _ := c.Create(Spec{})
		if first == nil {
			first = rec
		}
	}
	c.Create(Spec{})
	if len(c.Active()) != MaxActive+1 {
		t.Fatalf("expected evicted toast still animating out, got %d", len(c.Active()))
	}
	if !first.Exiting {
		t.Fatalf("expected oldest toast evicted")
	}
	live := 0
	for _, rec := range c.Active() {
		if !rec.Exiting {
			live++
		}
	}
	if live != MaxActive {
		t.Fatalf("expected %d live toasts, got %d", MaxActive, live)
	}
}

func TestRemainingCountsDown(t *testing.T) {
	base := time.Now()
	c := NewCenter()
	c.now = func() time.Time { return base }
	rec, _ := c.Create(Spec{Duration: 4 * time.Second})
	if got := rec.Remaining(base); got != 1 {
		t.Fatalf("expected full bar at creation, got %v", got)
	}
	if got := rec.Remaining(base.Add(2 * time.Second)); got != 0.5 {
		t.Fatalf("expected half remaining, got %v", got)
	}
	if got := rec.Remaining(base.Add(10 * time.Second)); got != 0 {
		t.Fatalf("expected empty bar past expiry, got %v", got)
	}
}

func TestCloseAllSkipsUnclosable(t *testing.T) {
	c := NewCenter()
	no := false
	pinned, _ := c.Create(Spec{Closable: &no})
	plain, _ := c.Create(Spec{})
	c.CloseAll()
	if pinned.Exiting {
		t.Fatalf("expected unclosable toast kept")
	}
	if !plain.Exiting {
		t.Fatalf("expected closable toast dismissed")
	}
}
