package events

import "github.com/atomicstack/termfolio/internal/logging"

type WeatherTracer struct{}

var Weather = WeatherTracer{}

func (WeatherTracer) Fetch(location string) {
	logging.Trace("weather.fetch", map[string]interface{}{"location": location})
}

func (WeatherTracer) Error(location string, err error) {
	if err == nil {
		return
	}
	logging.Trace("weather.error", map[string]interface{}{"location": location, "error": err.Error()})
}
