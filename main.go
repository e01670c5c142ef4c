package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/term"

	"github.com/atomicstack/termfolio/internal/cli"
	"github.com/atomicstack/termfolio/internal/command"
	"github.com/atomicstack/termfolio/internal/config"
	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/theme"
)

func main() {
	opts := cli.Options{
		Environ: os.Environ(),
		OnStart: traceStartup,
	}
	err := cli.Execute(context.Background(), os.Args[1:], opts)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	// the API key never reaches the trace log
	redacted := cfg
	if redacted.App.Weather.APIKey != "" {
		redacted.App.Weather.APIKey = "***"
	}
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": redacted,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	tty := collectTTYDetails()
	payload["tty"] = tty
	payload["session"] = describeSession(cfg, tty)
	return payload
}

// sessionDetails is the termfolio state the first frame will be drawn with.
type sessionDetails struct {
	Theme          string   `json:"theme"`
	ThemeFallback  bool     `json:"theme_fallback"`
	Typewriter     bool     `json:"typewriter"`
	TypeDelayMs    int64    `json:"type_delay_ms"`
	CanvasWidth    int      `json:"canvas_width"`
	CanvasHeight   int      `json:"canvas_height"`
	CanvasSource   string   `json:"canvas_source"`
	MinPane        [2]int   `json:"min_pane"`
	PrefsPath      string   `json:"prefs_path"`
	WeatherEnabled bool     `json:"weather_enabled"`
	Commands       []string `json:"commands"`
	Term           string   `json:"term,omitempty"`
	ColorTerm      string   `json:"colorterm,omitempty"`
}

func describeSession(cfg config.Config, tty ttyDetails) sessionDetails {
	d := sessionDetails{
		Theme:          theme.Resolve(cfg.App.Theme).Name,
		ThemeFallback:  cfg.App.Theme != "" && !theme.Valid(cfg.App.Theme),
		Typewriter:     cfg.App.Typewriter,
		TypeDelayMs:    cfg.App.TypeDelay.Milliseconds(),
		MinPane:        [2]int{cfg.App.MinPaneWidth, cfg.App.MinPaneHeight},
		PrefsPath:      cfg.App.DBPath,
		WeatherEnabled: cfg.App.Weather.APIKey != "",
		Commands:       command.BuildRegistry().Names(),
		Term:           os.Getenv("TERM"),
		ColorTerm:      os.Getenv("COLORTERM"),
	}
	if d.PrefsPath == "" {
		d.PrefsPath = ":memory:"
	}
	switch {
	case cfg.App.Width > 0 && cfg.App.Height > 0:
		d.CanvasWidth, d.CanvasHeight, d.CanvasSource = cfg.App.Width, cfg.App.Height, "config"
	case tty.Detected != nil:
		d.CanvasWidth, d.CanvasHeight, d.CanvasSource = tty.Detected.Width, tty.Detected.Height, tty.Detected.Source
	default:
		d.CanvasSource = "window-size"
	}
	return d
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
