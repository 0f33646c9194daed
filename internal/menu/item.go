package menu

import (
	"bytes"
	"encoding/json"
)

// Kind classifies a list item's selection behaviour.
type Kind int

const (
	// Plain items close the panel and report a selection.
	Plain Kind = iota
	// Submenu items keep the panel open and ask the host for the next level.
	Submenu
	// Back items pop one level off the stack.
	Back
)

// Item is one row of a list panel.
type Item struct {
	Label       string
	Description string
	Icon        string
	Price       float64
	Disabled    bool
	Kind        Kind
}

type wireItem struct {
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Disabled    bool    `json:"disabled,omitempty"`
	Submenu     bool    `json:"submenu,omitempty"`
	IsBack      bool    `json:"isBack,omitempty"`
}

// MarshalJSON renders the item in the host's wire shape so selections echo
// back exactly what arrived.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireItem{
		Label:       it.Label,
		Description: it.Description,
		Icon:        it.Icon,
		Price:       it.Price,
		Disabled:    it.Disabled,
		Submenu:     it.Kind == Submenu,
		IsBack:      it.Kind == Back,
	})
}

func (w wireItem) item() Item {
	kind := Plain
	switch {
	case w.IsBack:
		kind = Back
	case w.Submenu:
		kind = Submenu
	}
	return Item{
		Label:       w.Label,
		Description: w.Description,
		Icon:        w.Icon,
		Price:       w.Price,
		Disabled:    w.Disabled,
		Kind:        kind,
	}
}

// Normalize decodes a raw items payload, degrading malformed input into a
// single disabled placeholder so the panel still opens. A wrapper object with
// a nested items array is unwrapped.
func Normalize(raw json.RawMessage) []Item {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return placeholder("Error: No menu items")
	}

	var wire []wireItem
	if err := json.Unmarshal(trimmed, &wire); err == nil {
		return fromWire(wire)
	}

	var wrapper struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err == nil && len(wrapper.Items) > 0 {
		if err := json.Unmarshal(wrapper.Items, &wire); err == nil {
			return fromWire(wire)
		}
	}

	return placeholder("Error: Invalid menu data")
}

func fromWire(wire []wireItem) []Item {
	if len(wire) == 0 {
		return placeholder("Error: No menu items")
	}
	items := make([]Item, len(wire))
	for i, w := range wire {
		items[i] = w.item()
	}
	return items
}

func placeholder(label string) []Item {
	return []Item{{Label: label, Disabled: true}}
}
