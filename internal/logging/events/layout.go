package events

import "github.com/atomicstack/termfolio/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) Split(target, created int, orientation, shape string) {
	logging.Trace("layout.split", map[string]interface{}{
		"target":      target,
		"created":     created,
		"orientation": orientation,
		"shape":       shape,
	})
}

func (LayoutTracer) Collapse(removed int, shape string) {
	logging.Trace("layout.collapse", map[string]interface{}{"removed": removed, "shape": shape})
}

func (LayoutTracer) ResizeStart(handle int, orientation string) {
	logging.Trace("layout.resize.start", map[string]interface{}{"handle": handle, "orientation": orientation})
}

func (LayoutTracer) Resize(handle int, delta float64, sizes []float64) {
	logging.Trace("layout.resize", map[string]interface{}{"handle": handle, "delta": delta, "sizes": sizes})
}

func (LayoutTracer) ResizeEnd() {
	logging.Trace("layout.resize.end", nil)
}
