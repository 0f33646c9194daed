package events

import "github.com/eskui/overlay-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) MenuEnter(title, label string, index int) {
	logging.Trace("menu.enter", map[string]interface{}{
		"title": title,
		"label": label,
		"index": index,
	})
}

func (UITracer) MenuBack(title string, depth int) {
	logging.Trace("menu.back", map[string]interface{}{"title": title, "depth": depth})
}

func (UITracer) MenuCursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"title": title, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(title string) {
	logging.Trace("filter.clear", map[string]interface{}{"title": title})
}

func (FilterTracer) Append(title, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"title": title, "filter": filter})
}

func (FilterTracer) Backspace(title, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"title": title, "filter": filter})
}
