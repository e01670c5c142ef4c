package main

import (
	"testing"
	"time"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/config"
	"github.com/atomicstack/termfolio/internal/weather"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      100,
			Height:     30,
			Theme:      "nord",
			Typewriter: true,
			TypeDelay:  20 * time.Millisecond,
			Weather:    weather.Config{APIKey: "secret"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":           "100",
			"theme":           "nord",
			"weather-api-key": "***",
		},
		Args: []string{"--theme", "nord"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "100" {
		t.Fatalf("expected width 100, got %v", flagsValue["width"])
	}
	if flagsValue["theme"] != "nord" {
		t.Fatalf("expected theme nord, got %v", flagsValue["theme"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.Weather.APIKey != "***" {
		t.Fatalf("expected redacted api key, got %q", cfgValue.App.Weather.APIKey)
	}
	if cfgValue.App.Theme != "nord" || cfgValue.App.Width != 100 {
		t.Fatalf("unexpected app config %#v", cfgValue.App)
	}
	session, ok := payload["session"].(sessionDetails)
	if !ok {
		t.Fatalf("expected session details in payload")
	}
	if session.Theme != "nord" || session.ThemeFallback {
		t.Fatalf("expected nord theme without fallback, got %#v", session)
	}
	if session.CanvasWidth != 100 || session.CanvasHeight != 30 || session.CanvasSource != "config" {
		t.Fatalf("expected configured canvas 100x30, got %#v", session)
	}
	if !session.WeatherEnabled || session.TypeDelayMs != 20 {
		t.Fatalf("unexpected session details %#v", session)
	}
	if session.PrefsPath != ":memory:" {
		t.Fatalf("expected in-memory prefs, got %q", session.PrefsPath)
	}
	if cfg.App.Weather.APIKey != "secret" {
		t.Fatalf("payload must not modify the caller's config")
	}
}

func TestDescribeSessionFallsBackToDefaultTheme(t *testing.T) {
	cfg := config.Config{App: app.Config{Theme: "neon", DBPath: "/tmp/prefs.db"}}
	tty := ttyDetails{Detected: &ttyDetected{Source: "stdout", Width: 120, Height: 40}}

	d := describeSession(cfg, tty)
	if d.Theme != "default" || !d.ThemeFallback {
		t.Fatalf("expected default theme fallback, got %q fallback=%v", d.Theme, d.ThemeFallback)
	}
	if d.CanvasWidth != 120 || d.CanvasHeight != 40 || d.CanvasSource != "stdout" {
		t.Fatalf("expected tty canvas, got %dx%d from %q", d.CanvasWidth, d.CanvasHeight, d.CanvasSource)
	}
	if d.WeatherEnabled {
		t.Fatalf("weather must be disabled without a key")
	}
	if len(d.Commands) == 0 || d.Commands[0] != "help" {
		t.Fatalf("expected registry commands starting with help, got %v", d.Commands)
	}
}
