package shop

import "testing"

func water() Item  { return Item{ID: "water", Name: "Water", Price: 5} }
func burger() Item { return Item{ID: "burger", Name: "Burger", Price: 12.5} }

func TestAddMergesExistingLine(t *testing.T) {
	var c Cart
	c.Add(water())
	c.Add(burger())
	c.Add(water())
	if c.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", c.Len())
	}
	if c.Lines()[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", c.Lines()[0].Quantity)
	}
	if c.Count() != 3 {
		t.Fatalf("expected 3 units, got %d", c.Count())
	}
}

func TestTotalRecomputed(t *testing.T) {
	var c Cart
	c.Add(water())
	c.Add(water())
	c.Add(burger())
	if got := c.Total(); got != 22.5 {
		t.Fatalf("expected total 22.5, got %v", got)
	}
	c.AdjustQuantity("water", 1)
	if got := c.Total(); got != 27.5 {
		t.Fatalf("expected total 27.5, got %v", got)
	}
}

func TestAdjustToZeroRemovesLine(t *testing.T) {
	var c Cart
	c.Add(water())
	c.AdjustQuantity("water", -1)
	if !c.Empty() {
		t.Fatalf("expected empty cart, got %#v", c.Lines())
	}
	c.AdjustQuantity("water", 1) // unknown id now, ignored
	if !c.Empty() {
		t.Fatalf("expected unknown id ignored")
	}
}

func TestRemoveDropsWholeLine(t *testing.T) {
	var c Cart
	c.Add(water())
	c.Add(water())
	c.Add(burger())
	c.Remove("water")
	if c.Len() != 1 || c.Lines()[0].ID != "burger" {
		t.Fatalf("expected only burger left, got %#v", c.Lines())
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(water())
	c.Clear()
	if !c.Empty() || c.Count() != 0 {
		t.Fatalf("expected cleared cart")
	}
}
