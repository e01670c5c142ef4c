package events

import "github.com/atomicstack/termfolio/internal/logging"

type PaneTracer struct{}

type PaneReason string

const (
	PaneReasonShortcut PaneReason = "shortcut"
	PaneReasonCommand  PaneReason = "command"
	PaneReasonMouse    PaneReason = "mouse"
	PaneReasonMenu     PaneReason = "menu"
	PaneReasonClose    PaneReason = "close"
)

var Pane = PaneTracer{}

func (PaneTracer) Create(pane int) {
	logging.Trace("pane.create", map[string]interface{}{"pane": pane})
}

func (PaneTracer) Close(pane, focus int) {
	logging.Trace("pane.close", map[string]interface{}{"pane": pane, "focus": focus})
}

func (PaneTracer) Focus(pane int, reason PaneReason) {
	logging.Trace("pane.focus", map[string]interface{}{"pane": pane, "reason": string(reason)})
}

func (PaneTracer) Submit(pane int, line string) {
	logging.Trace("pane.submit", map[string]interface{}{"pane": pane, "line": line})
}

func (PaneTracer) Clear(pane int, reason PaneReason) {
	logging.Trace("pane.clear", map[string]interface{}{"pane": pane, "reason": string(reason)})
}

func (PaneTracer) History(pane, cursor int) {
	logging.Trace("pane.history", map[string]interface{}{"pane": pane, "cursor": cursor})
}

func (PaneTracer) Complete(pane int, prefix string, matches []string) {
	logging.Trace("pane.complete", map[string]interface{}{"pane": pane, "prefix": prefix, "matches": matches})
}

func (PaneTracer) Scroll(pane, offset int) {
	logging.Trace("pane.scroll", map[string]interface{}{"pane": pane, "offset": offset})
}
