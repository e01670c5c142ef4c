package events

import "github.com/atomicstack/termfolio/internal/logging"

type EffectTracer struct{}

var Effect = EffectTracer{}

func (EffectTracer) Start(name string, owner int, generation uint64) {
	logging.Trace("effect.start", map[string]interface{}{"effect": name, "owner": owner, "generation": generation})
}

func (EffectTracer) Stop(name string, owner int) {
	logging.Trace("effect.stop", map[string]interface{}{"effect": name, "owner": owner})
}

func (EffectTracer) Stale(name string, generation uint64) {
	logging.Trace("effect.stale", map[string]interface{}{"effect": name, "generation": generation})
}

func (EffectTracer) Snake(state string, score int) {
	logging.Trace("effect.snake", map[string]interface{}{"state": state, "score": score})
}
