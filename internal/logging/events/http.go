package events

import (
	"time"

	"github.com/atomicstack/termfolio/internal/logging"
)

type HTTPTracer struct{}

var HTTP = HTTPTracer{}

func (HTTPTracer) Request(method, path string, status int, latency time.Duration) {
	logging.Trace("http.request", map[string]interface{}{
		"method":     method,
		"path":       path,
		"status":     status,
		"latency_ms": latency.Milliseconds(),
	})
}
