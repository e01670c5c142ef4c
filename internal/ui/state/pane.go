// Package state holds the per-pane terminal state: the input line, command
// history, scrollback and the typewriter reveal. Nothing in here renders or
// schedules; the UI drives it.
package state

import (
	"strings"

	"github.com/atomicstack/termfolio/internal/content"
)

// HistoryDirection selects which way NavigateHistory walks.
type HistoryDirection int

const (
	Older HistoryDirection = iota
	Newer
)

// Pane is one independent terminal: its own input, history and scrollback.
type Pane struct {
	ID          int
	Input       string
	InputCursor int
	// History is oldest first.
	History []string
	// HistoryCursor is -1 while not browsing; 0 is the most recent entry.
	HistoryCursor int
	Blocks        []content.Block
	// Offset is the first visible rendered line.
	Offset int
	// Generation changes whenever the scrollback is reset. Async writes and
	// reveals scheduled under an older generation are dropped.
	Generation uint64
	Reveal     *Reveal

	revealSeq uint64
}

// NewPane returns a pane showing banner.
func NewPane(id int, banner content.Block) *Pane {
	return &Pane{
		ID:            id,
		HistoryCursor: -1,
		Blocks:        []content.Block{banner},
	}
}

// TakeInput consumes the input line for submission. Blank input is reported
// as ok=false and leaves history untouched.
func (p *Pane) TakeInput() (string, bool) {
	line := strings.TrimSpace(p.Input)
	p.Input = ""
	p.InputCursor = 0
	p.HistoryCursor = -1
	if line == "" {
		return "", false
	}
	p.History = append(p.History, line)
	return line, true
}

// NavigateHistory walks the history without wrapping. The input shows the
// selected entry, or nothing once back past the most recent one.
func (p *Pane) NavigateHistory(dir HistoryDirection) bool {
	prev := p.HistoryCursor
	switch dir {
	case Older:
		if p.HistoryCursor < len(p.History)-1 {
			p.HistoryCursor++
		}
	case Newer:
		if p.HistoryCursor > -1 {
			p.HistoryCursor--
		}
	}
	if p.HistoryCursor == -1 {
		p.SetInput("")
	} else {
		p.SetInput(p.History[len(p.History)-1-p.HistoryCursor])
	}
	return prev != p.HistoryCursor
}

// Append adds blocks to the scrollback and returns the index of the first.
func (p *Pane) Append(blocks ...content.Block) int {
	idx := len(p.Blocks)
	p.Blocks = append(p.Blocks, blocks...)
	return idx
}

// Clear resets the scrollback to banner and invalidates pending work.
func (p *Pane) Clear(banner content.Block) {
	p.Blocks = []content.Block{banner}
	p.Offset = 0
	p.Reveal = nil
	p.Generation++
}
