package events

import "github.com/atomicstack/termfolio/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(pane int, name, args string) {
	logging.Trace("command.queue", map[string]interface{}{"pane": pane, "name": name, "args": args})
}

func (CommandTracer) Result(pane int, name string, blocks int, effect string) {
	logging.Trace("command.result", map[string]interface{}{
		"pane":   pane,
		"name":   name,
		"blocks": blocks,
		"effect": effect,
	})
}

func (CommandTracer) Unknown(pane int, name, suggestion string) {
	logging.Trace("command.unknown", map[string]interface{}{"pane": pane, "name": name, "suggestion": suggestion})
}

func (CommandTracer) Pending(pane int, name string) {
	logging.Trace("command.pending", map[string]interface{}{"pane": pane, "name": name})
}

func (CommandTracer) Stale(pane int, generation uint64) {
	logging.Trace("command.stale", map[string]interface{}{"pane": pane, "generation": generation})
}
