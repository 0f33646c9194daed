package shop

import (
	"testing"
	"time"

	"github.com/eskui/overlay-control/internal/host"
)

func testCatalog() Catalog {
	return Catalog{
		Categories: []Category{{ID: "food", Name: "Food"}},
		Items:      []Item{{ID: "water", Name: "Water", Price: 5, Category: "food"}},
	}
}

func rate(v float64) *float64 { return &v }

func paymentFlow(t *testing.T) (*Flow, int) {
	t.Helper()
	f := &Flow{}
	f.Open(testCatalog())
	f.Cart.Add(Item{ID: "water", Name: "Water", Price: 100})
	gen, err := f.EnterPayment()
	if err != nil {
		t.Fatalf("enter payment: %v", err)
	}
	return f, gen
}

func TestEnterPaymentRejectsEmptyCart(t *testing.T) {
	f := &Flow{}
	f.Open(testCatalog())
	if _, err := f.EnterPayment(); err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if f.Screen != ScreenShop {
		t.Fatalf("expected screen unchanged, got %v", f.Screen)
	}
}

func TestStaleFetchResultsDiscarded(t *testing.T) {
	f, gen := paymentFlow(t)
	f.BackToShop()
	if f.ApplyBalances(gen, host.Balances{Cash: 500}) {
		t.Fatalf("expected stale balances dropped")
	}
	if f.ApplyRates(gen, host.TaxRates{Cash: rate(5)}) {
		t.Fatalf("expected stale rates dropped")
	}
	if f.Balances != nil || f.Rates != nil {
		t.Fatalf("expected no data installed after backing out")
	}
}

func TestTaxFlooredPerMethod(t *testing.T) {
	f, gen := paymentFlow(t) // cart total 100
	f.ApplyBalances(gen, host.Balances{Cash: 1000, Bank: 1000})
	f.ApplyRates(gen, host.TaxRates{Cash: rate(7.9), Bank: nil})
	if got := f.Tax(MethodCash); got != 7 {
		t.Fatalf("expected floored cash tax 7, got %v", got)
	}
	if got := f.Tax(MethodBank); got != 0 {
		t.Fatalf("expected zero bank tax when rate disabled, got %v", got)
	}
	if got := f.TaxedTotal(MethodCash); got != 107 {
		t.Fatalf("expected taxed total 107, got %v", got)
	}
}

func TestCanAffordAndBothInsufficient(t *testing.T) {
	f, gen := paymentFlow(t) // total 100
	if f.BothInsufficient() {
		t.Fatalf("expected false while loading")
	}
	f.ApplyBalances(gen, host.Balances{Cash: 99, Bank: 100})
	if f.BothInsufficient() {
		t.Fatalf("expected false until rates arrive")
	}
	f.ApplyRates(gen, host.TaxRates{})
	if f.CanAfford(MethodCash) {
		t.Fatalf("expected cash insufficient at 99")
	}
	if !f.CanAfford(MethodBank) {
		t.Fatalf("expected bank sufficient at 100")
	}
	if f.BothInsufficient() {
		t.Fatalf("expected one affordable method")
	}
	f.ApplyBalances(f.Generation(), host.Balances{Cash: 1, Bank: 1})
	if !f.BothInsufficient() {
		t.Fatalf("expected both insufficient")
	}
}

func TestCanAffordIgnoresTax(t *testing.T) {
	f, gen := paymentFlow(t) // total 100
	f.ApplyBalances(gen, host.Balances{Cash: 100, Bank: 50})
	f.ApplyRates(gen, host.TaxRates{Cash: rate(10), Bank: rate(10)})
	// Cash exactly matches the cart total; the 10% tax settles host-side and
	// must not lock the method out.
	if !f.CanAfford(MethodCash) {
		t.Fatalf("expected cash affordable at balance == cart total")
	}
	if f.CanAfford(MethodBank) {
		t.Fatalf("expected bank insufficient at 50")
	}
	if _, err := f.SelectMethod(MethodCash, time.Now()); err != nil {
		t.Fatalf("select cash: %v", err)
	}
}

func TestSelectMethodGates(t *testing.T) {
	f, gen := paymentFlow(t)
	now := time.Now()
	if _, err := f.SelectMethod(MethodCash, now); err != ErrStillLoading {
		t.Fatalf("expected ErrStillLoading, got %v", err)
	}
	f.ApplyBalances(gen, host.Balances{Cash: 50, Bank: 500})
	f.ApplyRates(gen, host.TaxRates{})
	if _, err := f.SelectMethod(MethodCash, now); err != ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	checkoutGen, err := f.SelectMethod(MethodBank, now)
	if err != nil {
		t.Fatalf("select bank: %v", err)
	}
	if f.Screen != ScreenProcessing || f.Method != MethodBank {
		t.Fatalf("expected processing with bank, got %v %q", f.Screen, f.Method)
	}
	if checkoutGen != gen+1 {
		t.Fatalf("expected generation bumped, got %d after %d", checkoutGen, gen)
	}
	if _, err := f.SelectMethod(MethodBank, now); err == nil {
		t.Fatalf("expected selection rejected off the payment screen")
	}
}

func TestOutcomeDelayHoldsMinimumDwell(t *testing.T) {
	f, gen := paymentFlow(t)
	f.ApplyBalances(gen, host.Balances{Cash: 500, Bank: 500})
	f.ApplyRates(gen, host.TaxRates{})
	start := time.Now()
	if _, err := f.SelectMethod(MethodCash, start); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := f.OutcomeDelay(start); got != MinProcessing {
		t.Fatalf("expected full dwell at start, got %v", got)
	}
	if got := f.OutcomeDelay(start.Add(time.Second)); got != 500*time.Millisecond {
		t.Fatalf("expected 500ms left, got %v", got)
	}
	if got := f.OutcomeDelay(start.Add(2 * time.Second)); got != 0 {
		t.Fatalf("expected zero past minimum, got %v", got)
	}
}

func TestSucceedAndFailGatedByGeneration(t *testing.T) {
	f, gen := paymentFlow(t)
	f.ApplyBalances(gen, host.Balances{Cash: 500, Bank: 500})
	f.ApplyRates(gen, host.TaxRates{})
	checkoutGen, err := f.SelectMethod(MethodCash, time.Now())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if f.Succeed(checkoutGen - 1) {
		t.Fatalf("expected stale success dropped")
	}
	if !f.Succeed(checkoutGen) {
		t.Fatalf("expected success applied")
	}
	if f.Screen != ScreenSuccess || !f.PurchaseComplete {
		t.Fatalf("expected success screen, got %v complete=%v", f.Screen, f.PurchaseComplete)
	}
	if f.Fail(checkoutGen, "late") {
		t.Fatalf("expected outcome rejected off the processing screen")
	}
}

func TestContinueShoppingClearsCartOnlyAfterSuccess(t *testing.T) {
	f, gen := paymentFlow(t)
	f.ApplyBalances(gen, host.Balances{Cash: 500, Bank: 500})
	f.ApplyRates(gen, host.TaxRates{})
	checkoutGen, _ := f.SelectMethod(MethodCash, time.Now())
	f.Fail(checkoutGen, "declined")
	if f.ContinueShopping() {
		t.Fatalf("expected no ready signal after failure")
	}
	if f.Cart.Empty() {
		t.Fatalf("expected cart kept after failure")
	}

	gen2, _ := f.EnterPayment()
	f.ApplyBalances(gen2, host.Balances{Cash: 500, Bank: 500})
	f.ApplyRates(gen2, host.TaxRates{})
	checkoutGen2, _ := f.SelectMethod(MethodCash, time.Now())
	f.Succeed(checkoutGen2)
	if !f.ContinueShopping() {
		t.Fatalf("expected ready signal after success")
	}
	if !f.Cart.Empty() {
		t.Fatalf("expected cart cleared after success")
	}
}

func TestTryAnotherMethodRestartsPayment(t *testing.T) {
	f, gen := paymentFlow(t)
	f.ApplyBalances(gen, host.Balances{Cash: 500, Bank: 500})
	f.ApplyRates(gen, host.TaxRates{})
	checkoutGen, _ := f.SelectMethod(MethodCash, time.Now())
	f.Fail(checkoutGen, "declined")

	retryGen, err := f.TryAnotherMethod()
	if err != nil {
		t.Fatalf("try another method: %v", err)
	}
	if f.Screen != ScreenPayment {
		t.Fatalf("expected payment screen, got %v", f.Screen)
	}
	if !f.Loading() {
		t.Fatalf("expected fresh fetches pending")
	}
	if retryGen <= checkoutGen {
		t.Fatalf("expected newer generation, got %d after %d", retryGen, checkoutGen)
	}
	if _, err := f.TryAnotherMethod(); err == nil {
		t.Fatalf("expected retry rejected off the failure screen")
	}
}

func TestBackToShopKeepsCart(t *testing.T) {
	f, _ := paymentFlow(t)
	f.BackToShop()
	if f.Screen != ScreenShop {
		t.Fatalf("expected shop screen, got %v", f.Screen)
	}
	if f.Cart.Empty() {
		t.Fatalf("expected cart kept")
	}
}

func TestItemsForFiltersByCategory(t *testing.T) {
	cat := Catalog{
		Categories: []Category{{ID: "food"}, {ID: "drink"}},
		Items: []Item{
			{ID: "burger", Category: "food"},
			{ID: "water", Category: "drink"},
		},
	}
	if got := cat.ItemsFor("food"); len(got) != 1 || got[0].ID != "burger" {
		t.Fatalf("expected burger only, got %#v", got)
	}
	if got := cat.ItemsFor(""); len(got) != 2 {
		t.Fatalf("expected all items, got %#v", got)
	}
}
