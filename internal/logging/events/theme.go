package events

import "github.com/atomicstack/termfolio/internal/logging"

type ThemeTracer struct{}

var Theme = ThemeTracer{}

func (ThemeTracer) Change(from, to string) {
	logging.Trace("theme.change", map[string]interface{}{"from": from, "to": to})
}

func (ThemeTracer) Persist(name string, err error) {
	payload := map[string]interface{}{"theme": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("theme.persist", payload)
}
