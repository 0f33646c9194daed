package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eskui/overlay-control/internal/logging/events"
)

// Balances is the host's answer to getPlayerBalances.
type Balances struct {
	Cash float64 `json:"cash"`
	Bank float64 `json:"bank"`
}

// TaxRates is the host's answer to getTaxRates. A nil rate means the host sent
// false for that method, i.e. no tax applies.
type TaxRates struct {
	Cash *float64
	Bank *float64
}

// RateFor returns the tax percentage for a payment method, zero when unset.
func (t TaxRates) RateFor(method string) float64 {
	var rate *float64
	switch method {
	case "cash":
		rate = t.Cash
	case "bank":
		rate = t.Bank
	}
	if rate == nil {
		return 0
	}
	return *rate
}

func (t *TaxRates) UnmarshalJSON(data []byte) error {
	var raw struct {
		Cash json.RawMessage `json:"cash"`
		Bank json.RawMessage `json:"bank"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if t.Cash, err = decodeRate(raw.Cash); err != nil {
		return fmt.Errorf("cash rate: %w", err)
	}
	if t.Bank, err = decodeRate(raw.Bank); err != nil {
		return fmt.Errorf("bank rate: %w", err)
	}
	return nil
}

func decodeRate(raw json.RawMessage) (*float64, error) {
	if len(raw) == 0 || string(raw) == "false" || string(raw) == "null" {
		return nil, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CheckoutLine is one cart line in a shopCheckout request.
type CheckoutLine struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	InventoryName string  `json:"inventoryName,omitempty"`
}

// Client posts callbacks to the host. Every endpoint is <base>/<name> with a
// JSON body.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the given callback base URL.
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// Post sends a fire-and-forget callback. The response body is discarded.
func (c *Client) Post(ctx context.Context, endpoint string, payload interface{}) error {
	events.Host.Post(endpoint)
	resp, err := c.do(ctx, endpoint, payload)
	if err != nil {
		events.Host.PostError(endpoint, err)
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, endpoint string, payload interface{}) (*http.Response, error) {
	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("post %s: status %d", endpoint, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, payload, dst interface{}) error {
	resp, err := c.do(ctx, endpoint, payload)
	if err != nil {
		events.Host.PostError(endpoint, err)
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		err = fmt.Errorf("decode %s response: %w", endpoint, err)
		events.Host.PostError(endpoint, err)
		return err
	}
	return nil
}

// AmountSubmit reports a confirmed amount.
func (c *Client) AmountSubmit(ctx context.Context, amount int) error {
	return c.Post(ctx, "amountSubmit", map[string]interface{}{"amount": amount})
}

// ListSelect reports a plain list selection by index with the item echoed back.
func (c *Client) ListSelect(ctx context.Context, index int, item interface{}) error {
	return c.Post(ctx, "listSelect", map[string]interface{}{"index": index, "item": item})
}

// SubmenuSelect reports entry into a submenu item.
func (c *Client) SubmenuSelect(ctx context.Context, index int, item interface{}) error {
	return c.Post(ctx, "submenuSelect", map[string]interface{}{"index": index, "item": item})
}

// SubmenuBack reports a back navigation out of the current submenu.
func (c *Client) SubmenuBack(ctx context.Context) error {
	return c.Post(ctx, "submenuBack", nil)
}

// DropdownSelect reports the chosen option.
func (c *Client) DropdownSelect(ctx context.Context, index int, value string) error {
	return c.Post(ctx, "dropdownSelect", map[string]interface{}{"index": index, "value": value})
}

// Close tells the host the overlay closed and input focus should be released.
func (c *Client) Close(ctx context.Context) error {
	return c.Post(ctx, "close", nil)
}

// BankingAction reports a deposit or withdrawal.
func (c *Client) BankingAction(ctx context.Context, action string, amount int) error {
	return c.Post(ctx, "bankingAction", map[string]interface{}{"action": action, "amount": amount})
}

// ShopCheckout submits the cart for payment and waits for the host verdict.
func (c *Client) ShopCheckout(ctx context.Context, lines []CheckoutLine, total float64, method string) error {
	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	payload := map[string]interface{}{
		"items":         lines,
		"total":         total,
		"paymentMethod": method,
	}
	if err := c.fetch(ctx, "shopCheckout", payload, &result); err != nil {
		return err
	}
	if !result.Success {
		if result.Error == "" {
			result.Error = "payment declined"
		}
		return fmt.Errorf("shopCheckout: %s", result.Error)
	}
	return nil
}

// ShopReadyForNewPurchase signals the shop screen was rebuilt after a sale.
func (c *Client) ShopReadyForNewPurchase(ctx context.Context) error {
	return c.Post(ctx, "shopReadyForNewPurchase", nil)
}

// GetTaxRates fetches the current tax rates. Never cached; the flow asks again
// on every payment-method entry.
func (c *Client) GetTaxRates(ctx context.Context) (TaxRates, error) {
	var rates TaxRates
	err := c.fetch(ctx, "getTaxRates", nil, &rates)
	return rates, err
}

// GetPlayerBalances fetches the player's cash and bank balances.
func (c *Client) GetPlayerBalances(ctx context.Context) (Balances, error) {
	var b Balances
	err := c.fetch(ctx, "getPlayerBalances", nil, &b)
	return b, err
}

// DarkModeChanged reports a persisted dark mode change.
func (c *Client) DarkModeChanged(ctx context.Context, enabled bool) error {
	return c.Post(ctx, "darkModeChanged", map[string]interface{}{"darkMode": enabled})
}

// OpacityChanged reports a persisted opacity change (fraction in [0,1]).
func (c *Client) OpacityChanged(ctx context.Context, opacity float64) error {
	return c.Post(ctx, "opacityChanged", map[string]interface{}{"windowOpacity": opacity})
}

// FreeDragChanged reports a persisted free-drag toggle.
func (c *Client) FreeDragChanged(ctx context.Context, enabled bool) error {
	return c.Post(ctx, "freeDragChanged", map[string]interface{}{"freeDrag": enabled})
}

// NotificationPositionChanged reports a persisted toast corner change.
func (c *Client) NotificationPositionChanged(ctx context.Context, position string) error {
	return c.Post(ctx, "notificationPositionChanged", map[string]interface{}{"notificationPosition": position})
}
