package events

import "github.com/eskui/overlay-control/internal/logging"

type NotifyTracer struct{}

var Notify = NotifyTracer{}

func (NotifyTracer) Created(id int, kind string) {
	logging.Trace("notify.created", map[string]interface{}{"id": id, "type": kind})
}

func (NotifyTracer) Closed(id int) {
	logging.Trace("notify.closed", map[string]interface{}{"id": id})
}

func (NotifyTracer) Evicted(id int) {
	logging.Trace("notify.evicted", map[string]interface{}{"id": id})
}
