package events

import "github.com/eskui/overlay-control/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Show(id string) {
	logging.Trace("panel.show", map[string]interface{}{"panel": id})
}

func (PanelTracer) Hide(id string) {
	logging.Trace("panel.hide", map[string]interface{}{"panel": id})
}

func (PanelTracer) Phase(id, phase string) {
	logging.Trace("panel.phase", map[string]interface{}{"panel": id, "phase": phase})
}

func (PanelTracer) Visible(visible bool) {
	logging.Trace("panel.visible", map[string]interface{}{"visible": visible})
}

func (PanelTracer) DragBlocked(id string) {
	logging.Trace("panel.drag-blocked", map[string]interface{}{"panel": id})
}

func (PanelTracer) Unknown(id string) {
	logging.Trace("panel.unknown", map[string]interface{}{"panel": id})
}
