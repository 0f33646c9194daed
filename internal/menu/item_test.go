package menu

import (
	"encoding/json"
	"testing"
)

func TestNormalizeKinds(t *testing.T) {
	raw := json.RawMessage(`[
		{"label":"Buy","price":25},
		{"label":"Weapons","submenu":true},
		{"label":"Back","isBack":true},
		{"label":"Locked","disabled":true}
	]`)
	items := Normalize(raw)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].Kind != Plain || items[0].Price != 25 {
		t.Fatalf("unexpected plain item: %#v", items[0])
	}
	if items[1].Kind != Submenu {
		t.Fatalf("expected submenu kind, got %#v", items[1])
	}
	if items[2].Kind != Back {
		t.Fatalf("expected back kind, got %#v", items[2])
	}
	if !items[3].Disabled {
		t.Fatalf("expected disabled item, got %#v", items[3])
	}
}

func TestNormalizeUnwrapsNestedItems(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"label":"One"},{"label":"Two"}]}`)
	items := Normalize(raw)
	if len(items) != 2 || items[0].Label != "One" || items[1].Label != "Two" {
		t.Fatalf("expected unwrapped items, got %#v", items)
	}
}

func TestNormalizeInvalidPayload(t *testing.T) {
	items := Normalize(json.RawMessage(`{"whatever":true}`))
	if len(items) != 1 || !items[0].Disabled {
		t.Fatalf("expected single disabled placeholder, got %#v", items)
	}
	if items[0].Label != "Error: Invalid menu data" {
		t.Fatalf("unexpected placeholder label %q", items[0].Label)
	}
}

func TestNormalizeMissingPayload(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		items := Normalize(raw)
		if len(items) != 1 || !items[0].Disabled || items[0].Label != "Error: No menu items" {
			t.Fatalf("expected no-items placeholder, got %#v", items)
		}
	}
}

func TestNormalizeEmptyArray(t *testing.T) {
	items := Normalize(json.RawMessage(`[]`))
	if len(items) != 1 || items[0].Label != "Error: No menu items" {
		t.Fatalf("expected no-items placeholder, got %#v", items)
	}
}

func TestItemMarshalWireShape(t *testing.T) {
	data, err := json.Marshal(Item{Label: "Weapons", Kind: Submenu})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]interface{}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["label"] != "Weapons" || wire["submenu"] != true {
		t.Fatalf("unexpected wire shape: %v", wire)
	}
	if _, ok := wire["isBack"]; ok {
		t.Fatalf("expected isBack omitted, got %v", wire)
	}
}
