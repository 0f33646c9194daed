package events

import "github.com/eskui/overlay-control/internal/logging"

type CartTracer struct{}

type PaymentTracer struct{}

var (
	Cart    = CartTracer{}
	Payment = PaymentTracer{}
)

func (CartTracer) Add(id string, quantity int) {
	logging.Trace("cart.add", map[string]interface{}{"item": id, "quantity": quantity})
}

func (CartTracer) Adjust(id string, quantity int) {
	logging.Trace("cart.adjust", map[string]interface{}{"item": id, "quantity": quantity})
}

func (CartTracer) Remove(id string) {
	logging.Trace("cart.remove", map[string]interface{}{"item": id})
}

func (CartTracer) Clear() {
	logging.Trace("cart.clear", nil)
}

func (PaymentTracer) Screen(screen string) {
	logging.Trace("payment.screen", map[string]interface{}{"screen": screen})
}

func (PaymentTracer) MethodSelected(method string, total float64) {
	logging.Trace("payment.method", map[string]interface{}{"method": method, "total": total})
}

func (PaymentTracer) StaleFetch(kind string, generation int) {
	logging.Trace("payment.stale-fetch", map[string]interface{}{"kind": kind, "generation": generation})
}

func (PaymentTracer) Result(success bool, total float64) {
	logging.Trace("payment.result", map[string]interface{}{"success": success, "total": total})
}
