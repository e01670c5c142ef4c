// Package command turns deferred command output into Bubble Tea commands.
package command

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/logging/events"
)

// Request describes follow-up output for a pane. Generation is the pane's
// generation when the command ran.
type Request struct {
	Pane       int
	Generation uint64
	Name       string
	Delay      time.Duration
	Run        func(context.Context) content.Block
}

// OutputMsg delivers a deferred block to its pane.
type OutputMsg struct {
	Pane       int
	Generation uint64
	Name       string
	Block      content.Block
}

// Bus coordinates the execution of deferred command output.
type Bus struct {
	ctx context.Context
}

// New initialises a bus whose work is cancelled with ctx.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.Run == nil {
		return nil
	}
	events.Command.Pending(req.Pane, req.Name)
	return func() tea.Msg {
		if req.Delay > 0 {
			timer := time.NewTimer(req.Delay)
			defer timer.Stop()
			select {
			case <-b.ctx.Done():
				return nil
			case <-timer.C:
			}
		}
		block := req.Run(b.ctx)
		events.Command.Result(req.Pane, req.Name, 1, "deferred")
		return OutputMsg{Pane: req.Pane, Generation: req.Generation, Name: req.Name, Block: block}
	}
}
