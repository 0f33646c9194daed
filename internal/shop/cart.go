package shop

import "github.com/eskui/overlay-control/internal/logging/events"

// Line is one cart entry. Quantity is always positive; a line that would hit
// zero is removed instead.
type Line struct {
	ID            string
	Name          string
	Price         float64
	Icon          string
	Quantity      int
	InventoryName string
}

// Cart holds the pending purchase in insertion order.
type Cart struct {
	lines []Line
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart holds nothing.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Count returns the total unit count across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total recomputes the cart value from scratch on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Add merges one unit of the item into an existing line or appends a new one.
func (c *Cart) Add(item Item) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			events.Cart.Add(item.ID, c.lines[i].Quantity)
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price,
		Icon:          item.Icon,
		Quantity:      1,
		InventoryName: item.InventoryName,
	})
	events.Cart.Add(item.ID, 1)
}

// AdjustQuantity shifts a line's quantity by delta, removing the line when it
// reaches zero. Unknown ids are ignored.
func (c *Cart) AdjustQuantity(id string, delta int) {
	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			events.Cart.Remove(id)
			return
		}
		events.Cart.Adjust(id, c.lines[i].Quantity)
		return
	}
}

// Remove drops a line outright.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			events.Cart.Remove(id)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	events.Cart.Clear()
}
