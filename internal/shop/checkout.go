package shop

import (
	"errors"
	"math"
	"time"

	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/logging/events"
)

// Screen is the checkout flow position.
type Screen int

const (
	ScreenShop Screen = iota
	ScreenPayment
	ScreenProcessing
	ScreenSuccess
	ScreenFailure
)

func (s Screen) String() string {
	switch s {
	case ScreenPayment:
		return "payment"
	case ScreenProcessing:
		return "processing"
	case ScreenSuccess:
		return "success"
	case ScreenFailure:
		return "failure"
	default:
		return "shop"
	}
}

// Method is a payment method choice.
type Method string

const (
	MethodCash Method = "cash"
	MethodBank Method = "bank"
)

// MinProcessing is the minimum time the processing screen stays up, so the
// outcome never flashes past the user even when the host answers instantly.
const MinProcessing = 1500 * time.Millisecond

// ErrCartEmpty rejects checkout with nothing to buy.
var ErrCartEmpty = errors.New("cart is empty")

// ErrInsufficientFunds rejects a method whose balance cannot cover the total.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrStillLoading rejects a method pick before balances have arrived.
var ErrStillLoading = errors.New("balances still loading")

// Flow is the whole shop session: catalog, cart, and the multi-screen
// checkout state machine. Balances and tax rates are fetched fresh on every
// payment screen entry and stamped with a generation so results landing after
// the user backed out are discarded.
type Flow struct {
	Catalog  Catalog
	Category string
	Cart     Cart

	Screen Screen
	Method Method

	Balances *host.Balances
	Rates    *host.TaxRates

	FailureReason    string
	PurchaseComplete bool

	generation      int
	processingStart time.Time
}

// Open resets the flow around freshly pushed catalog content.
func (f *Flow) Open(catalog Catalog) {
	f.Catalog = catalog
	f.Category = ""
	if len(catalog.Categories) > 0 {
		f.Category = catalog.Categories[0].ID
	}
	f.Cart.Clear()
	f.Screen = ScreenShop
	f.Method = ""
	f.Balances = nil
	f.Rates = nil
	f.FailureReason = ""
	f.PurchaseComplete = false
	f.generation++
}

// Generation returns the current fetch/checkout generation.
func (f *Flow) Generation() int {
	return f.generation
}

// EnterPayment moves to the payment-method screen and invalidates any earlier
// fetches. The returned generation must stamp the new balance and tax
// requests. Fails when the cart is empty.
func (f *Flow) EnterPayment() (int, error) {
	if f.Cart.Empty() {
		return 0, ErrCartEmpty
	}
	f.Screen = ScreenPayment
	f.Method = ""
	f.Balances = nil
	f.Rates = nil
	f.generation++
	events.Payment.Screen(f.Screen.String())
	return f.generation, nil
}

// ApplyBalances installs a fetch result. Stale generations are dropped.
func (f *Flow) ApplyBalances(generation int, b host.Balances) bool {
	if generation != f.generation {
		events.Payment.StaleFetch("balances", generation)
		return false
	}
	f.Balances = &b
	return true
}

// ApplyRates installs a tax-rate fetch result. Stale generations are dropped.
func (f *Flow) ApplyRates(generation int, r host.TaxRates) bool {
	if generation != f.generation {
		events.Payment.StaleFetch("taxRates", generation)
		return false
	}
	f.Rates = &r
	return true
}

// Loading reports whether the payment screen is still waiting on the host.
func (f *Flow) Loading() bool {
	return f.Balances == nil || f.Rates == nil
}

// Tax returns the whole-unit tax for a method: floor(total * rate / 100).
func (f *Flow) Tax(method Method) float64 {
	if f.Rates == nil {
		return 0
	}
	rate := f.Rates.RateFor(string(method))
	return math.Floor(f.Cart.Total() * rate / 100)
}

// TaxedTotal returns the cart total plus method tax.
func (f *Flow) TaxedTotal(method Method) float64 {
	return f.Cart.Total() + f.Tax(method)
}

// CanAfford reports whether a method's balance covers the cart total. Tax is
// the host's concern at charge time, so it never gates the pick here. Always
// false while loading.
func (f *Flow) CanAfford(method Method) bool {
	if f.Balances == nil || f.Rates == nil {
		return false
	}
	switch method {
	case MethodCash:
		return f.Balances.Cash >= f.Cart.Total()
	case MethodBank:
		return f.Balances.Bank >= f.Cart.Total()
	default:
		return false
	}
}

// BothInsufficient reports whether neither method can pay. Only meaningful
// once loading has finished.
func (f *Flow) BothInsufficient() bool {
	if f.Loading() {
		return false
	}
	return !f.CanAfford(MethodCash) && !f.CanAfford(MethodBank)
}

// SelectMethod commits a payment method and enters processing. The returned
// generation stamps the checkout request.
func (f *Flow) SelectMethod(method Method, now time.Time) (int, error) {
	if f.Screen != ScreenPayment {
		return 0, errors.New("not on payment screen")
	}
	if f.Loading() {
		return 0, ErrStillLoading
	}
	if !f.CanAfford(method) {
		return 0, ErrInsufficientFunds
	}
	f.Method = method
	f.Screen = ScreenProcessing
	f.processingStart = now
	f.generation++
	events.Payment.MethodSelected(string(method), f.TaxedTotal(method))
	events.Payment.Screen(f.Screen.String())
	return f.generation, nil
}

// OutcomeDelay returns how much longer the processing screen must stay up
// before an outcome may show.
func (f *Flow) OutcomeDelay(now time.Time) time.Duration {
	elapsed := now.Sub(f.processingStart)
	if elapsed >= MinProcessing {
		return 0
	}
	return MinProcessing - elapsed
}

// Succeed shows the success screen. Stale generations (the user already left
// processing) are dropped.
func (f *Flow) Succeed(generation int) bool {
	if generation != f.generation || f.Screen != ScreenProcessing {
		return false
	}
	f.Screen = ScreenSuccess
	f.PurchaseComplete = true
	events.Payment.Result(true, f.TaxedTotal(f.Method))
	events.Payment.Screen(f.Screen.String())
	return true
}

// Fail shows the failure screen with a reason.
func (f *Flow) Fail(generation int, reason string) bool {
	if generation != f.generation || f.Screen != ScreenProcessing {
		return false
	}
	f.Screen = ScreenFailure
	f.FailureReason = reason
	events.Payment.Result(false, f.TaxedTotal(f.Method))
	events.Payment.Screen(f.Screen.String())
	return true
}

// BackToShop leaves the payment screen without buying, invalidating any
// in-flight fetches. The cart is kept.
func (f *Flow) BackToShop() {
	f.Screen = ScreenShop
	f.Method = ""
	f.Balances = nil
	f.Rates = nil
	f.generation++
	events.Payment.Screen(f.Screen.String())
}

// ContinueShopping returns to the shop screen after an outcome. After a
// success the cart is cleared and the shop rebuilt; the caller must then
// signal shopReadyForNewPurchase to the host. Returns whether that signal is
// due.
func (f *Flow) ContinueShopping() bool {
	wasComplete := f.PurchaseComplete
	if wasComplete {
		f.Cart.Clear()
	}
	f.Screen = ScreenShop
	f.Method = ""
	f.Balances = nil
	f.Rates = nil
	f.FailureReason = ""
	f.PurchaseComplete = false
	f.generation++
	events.Payment.Screen(f.Screen.String())
	return wasComplete
}

// TryAnotherMethod goes from failure back to the payment screen with fresh
// fetches, like a first entry.
func (f *Flow) TryAnotherMethod() (int, error) {
	if f.Screen != ScreenFailure {
		return 0, errors.New("not on failure screen")
	}
	f.Screen = ScreenShop
	return f.EnterPayment()
}

// Reset tears the whole session down: cart, screens, and any pending
// generations. Used by exitShopping and hide.
func (f *Flow) Reset() {
	f.Catalog = Catalog{}
	f.Category = ""
	f.Cart.Clear()
	f.Screen = ScreenShop
	f.Method = ""
	f.Balances = nil
	f.Rates = nil
	f.FailureReason = ""
	f.PurchaseComplete = false
	f.generation++
}
