package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/settings"
	"github.com/eskui/overlay-control/internal/shop"
)

// drain runs a command tree synchronously, unwrapping batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, drain(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestCheckoutSubmitsUntaxedCartTotal(t *testing.T) {
	var checkout map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/shopCheckout") {
			json.NewDecoder(r.Body).Decode(&checkout)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	m := NewModel(host.NewClient(srv.URL), nil, nil, settings.Defaults(), 80, 24, false, false)
	m.flow.Open(shop.Catalog{
		Categories: []shop.Category{{ID: "drink", Name: "Drinks"}},
		Items:      []shop.Item{{ID: "water", Name: "Water", Price: 100, Category: "drink"}},
	})
	m.flow.Cart.Add(shop.Item{ID: "water", Name: "Water", Price: 100})
	gen, err := m.flow.EnterPayment()
	if err != nil {
		t.Fatalf("enter payment: %v", err)
	}
	cashRate := 10.0
	m.flow.ApplyBalances(gen, host.Balances{Cash: 500, Bank: 500})
	m.flow.ApplyRates(gen, host.TaxRates{Cash: &cashRate})

	drain(m.selectPaymentMethod(shop.MethodCash))

	if checkout == nil {
		t.Fatalf("expected a checkout request")
	}
	// The 10% cash tax settles host-side; the body carries the raw cart total.
	if checkout["total"] != float64(100) {
		t.Fatalf("expected cart total 100 in body, got %v", checkout["total"])
	}
	if checkout["paymentMethod"] != "cash" {
		t.Fatalf("expected cash method, got %v", checkout["paymentMethod"])
	}
}
