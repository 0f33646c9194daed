package host

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPostHitsEndpointWithJSONBody(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/eskui/")
	if err := c.AmountSubmit(context.Background(), 250); err != nil {
		t.Fatalf("post: %v", err)
	}
	if gotPath != "/eskui/amountSubmit" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if gotBody["amount"] != float64(250) {
		t.Fatalf("unexpected body %v", gotBody)
	}
}

func TestPostReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Close(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestShopCheckoutParsesVerdict(t *testing.T) {
	verdict := `{"success":true}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(verdict))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	lines := []CheckoutLine{{ID: "water", Name: "Water", Price: 5, Quantity: 2}}
	if err := c.ShopCheckout(context.Background(), lines, 10, "cash"); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	verdict = `{"success":false,"error":"card declined"}`
	err := c.ShopCheckout(context.Background(), lines, 10, "bank")
	if err == nil || !strings.Contains(err.Error(), "card declined") {
		t.Fatalf("expected declined error, got %v", err)
	}

	verdict = `{"success":false}`
	err = c.ShopCheckout(context.Background(), lines, 10, "bank")
	if err == nil || !strings.Contains(err.Error(), "payment declined") {
		t.Fatalf("expected default reason, got %v", err)
	}
}

func TestSettingsCallbacksCarryNamedFields(t *testing.T) {
	bodies := map[string]map[string]interface{}{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		bodies[r.URL.Path] = body
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()
	if err := c.DarkModeChanged(ctx, true); err != nil {
		t.Fatalf("darkModeChanged: %v", err)
	}
	if err := c.OpacityChanged(ctx, 0.85); err != nil {
		t.Fatalf("opacityChanged: %v", err)
	}
	if err := c.FreeDragChanged(ctx, false); err != nil {
		t.Fatalf("freeDragChanged: %v", err)
	}
	if err := c.NotificationPositionChanged(ctx, "bottom-left"); err != nil {
		t.Fatalf("notificationPositionChanged: %v", err)
	}

	cases := []struct {
		path  string
		field string
		want  interface{}
	}{
		{"/darkModeChanged", "darkMode", true},
		{"/opacityChanged", "windowOpacity", 0.85},
		{"/freeDragChanged", "freeDrag", false},
		{"/notificationPositionChanged", "notificationPosition", "bottom-left"},
	}
	for _, tc := range cases {
		body, ok := bodies[tc.path]
		if !ok {
			t.Fatalf("no request seen on %s", tc.path)
		}
		got, ok := body[tc.field]
		if !ok {
			t.Fatalf("%s body missing %q: %v", tc.path, tc.field, body)
		}
		if got != tc.want {
			t.Fatalf("%s %s = %v, want %v", tc.path, tc.field, got, tc.want)
		}
	}
}

func TestGetTaxRatesDecodesDisabledMethods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cash":5,"bank":false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rates, err := c.GetTaxRates(context.Background())
	if err != nil {
		t.Fatalf("get rates: %v", err)
	}
	if rates.Cash == nil || *rates.Cash != 5 || rates.Bank != nil {
		t.Fatalf("unexpected rates %#v", rates)
	}
}

func TestGetPlayerBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cash":120.5,"bank":4000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	b, err := c.GetPlayerBalances(context.Background())
	if err != nil {
		t.Fatalf("get balances: %v", err)
	}
	if b.Cash != 120.5 || b.Bank != 4000 {
		t.Fatalf("unexpected balances %#v", b)
	}
}
