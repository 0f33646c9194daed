package events

import "github.com/eskui/overlay-control/internal/logging"

type HostTracer struct{}

var Host = HostTracer{}

func (HostTracer) Command(kind string) {
	logging.Trace("host.command", map[string]interface{}{"kind": kind})
}

func (HostTracer) UnknownCommand(kind string) {
	logging.Trace("host.unknown-command", map[string]interface{}{"kind": kind})
}

func (HostTracer) Post(endpoint string) {
	logging.Trace("host.post", map[string]interface{}{"endpoint": endpoint})
}

func (HostTracer) PostError(endpoint string, err error) {
	if err == nil {
		return
	}
	logging.Trace("host.post-error", map[string]interface{}{"endpoint": endpoint, "error": err.Error()})
}

func (HostTracer) Connected(url string) {
	logging.Trace("host.connected", map[string]interface{}{"url": url})
}

func (HostTracer) Disconnected(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("host.disconnected", payload)
}
