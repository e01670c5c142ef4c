// Package command resolves and runs the commands typed into a pane.
//
// The registry is built once and never changes. Handlers are pure: they map
// an invocation to content blocks plus a description of any side effect,
// and leave applying those to the caller.
package command

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/weather"
)

// Weather looks up current conditions.
type Weather interface {
	Lookup(ctx context.Context, location string) (weather.Report, error)
}

// Calculator evaluates arithmetic expressions.
type Calculator interface {
	Evaluate(expr string) (float64, error)
}

// Context carries the collaborators handlers need.
type Context struct {
	Resume     *content.Resume
	Weather    Weather
	Calculator Calculator
	Theme      string
	Themes     []string
	Shortcuts  []content.Shortcut

	entries []content.HelpEntry
}

// Effect is a side effect a command asks the caller to perform.
type Effect int

const (
	EffectNone Effect = iota
	EffectClear
	EffectMatrixStart
	EffectMatrixStop
	EffectSnakeStart
	EffectSnakeStop
)

func (e Effect) String() string {
	switch e {
	case EffectClear:
		return "clear"
	case EffectMatrixStart:
		return "matrix.start"
	case EffectMatrixStop:
		return "matrix.stop"
	case EffectSnakeStart:
		return "snake.start"
	case EffectSnakeStop:
		return "snake.stop"
	default:
		return "none"
	}
}

// Pending is follow-up output produced after Delay by Run.
type Pending struct {
	Delay time.Duration
	Run   func(context.Context) content.Block
}

// Result is what a command produced. Every known command yields exactly one
// block.
type Result struct {
	Name    string
	Blocks  []content.Block
	Effect  Effect
	Theme   string
	Pending *Pending
	Unknown bool
}

// Invocation is a parsed input line. Name is lowercased for dispatch; Raw
// and Args keep what was typed.
type Invocation struct {
	Raw  string
	Name string
	Args string
}

// Handler runs one command.
type Handler func(Context, Invocation) Result

// Command is one registry entry: a name, its help text and the handler.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Group   content.Group
	// Hidden commands run and complete but stay out of help listings.
	Hidden  bool
	Handler Handler
}

// Registry is the immutable command table.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

// BuildRegistry constructs the registry from the built-in command table.
func BuildRegistry() *Registry {
	defs := builtins()
	r := &Registry{
		commands: make([]*Command, 0, len(defs)),
		byName:   make(map[string]*Command, len(defs)),
	}
	for i := range defs {
		cmd := &defs[i]
		r.commands = append(r.commands, cmd)
		r.byName[cmd.Name] = cmd
	}
	return r
}

// Parse splits a line into the dispatch key and the raw argument text.
func Parse(line string) Invocation {
	raw := strings.TrimSpace(line)
	inv := Invocation{Raw: raw}
	if raw == "" {
		return inv
	}
	name, args := raw, ""
	if idx := strings.IndexFunc(raw, unicode.IsSpace); idx >= 0 {
		name, args = raw[:idx], raw[idx+1:]
	}
	inv.Name = strings.ToLower(name)
	inv.Args = strings.TrimSpace(args)
	return inv
}

// Resolve finds a command by exact, case-insensitive name.
func (r *Registry) Resolve(token string) (*Command, bool) {
	cmd, ok := r.byName[strings.ToLower(strings.TrimSpace(token))]
	return cmd, ok
}

// Commands returns the table in registry order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	for i, cmd := range r.commands {
		out[i] = *cmd
	}
	return out
}

// Names returns command names in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		out[i] = cmd.Name
	}
	return out
}

// HelpEntries describes the listed commands for help output.
func (r *Registry) HelpEntries() []content.HelpEntry {
	out := make([]content.HelpEntry, 0, len(r.commands))
	for _, cmd := range r.commands {
		if cmd.Hidden {
			continue
		}
		out = append(out, content.HelpEntry{Name: cmd.Name, Summary: cmd.Summary, Group: cmd.Group})
	}
	return out
}

// Complete returns the names starting with prefix, ignoring case. An empty
// prefix matches nothing.
func (r *Registry) Complete(prefix string) []string {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if p == "" {
		return nil
	}
	var out []string
	for _, cmd := range r.commands {
		if strings.HasPrefix(cmd.Name, p) {
			out = append(out, cmd.Name)
		}
	}
	return out
}
