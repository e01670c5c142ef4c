package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/command"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/layout"
	"github.com/atomicstack/termfolio/internal/logging/events"
	uicommand "github.com/atomicstack/termfolio/internal/ui/command"
	uistate "github.com/atomicstack/termfolio/internal/ui/state"
)

// typeTickMsg reveals one more rune of a pane's typewriter block.
type typeTickMsg struct {
	pane int
	tok  uistate.RevealToken
}

// submit runs the pane's input line and applies the result.
func (m *Model) submit(p *uistate.Pane) tea.Cmd {
	line, ok := p.TakeInput()
	if !ok {
		return nil
	}
	events.Pane.Submit(p.ID, line)
	inv := command.Parse(line)
	events.Command.Queue(p.ID, inv.Name, inv.Args)
	p.Append(content.Echo(line))

	res := m.registry.Run(m.commandContext(), line)
	if res.Unknown {
		events.Command.Unknown(p.ID, inv.Name, m.registry.Suggest(inv.Name))
	}
	events.Command.Result(p.ID, res.Name, len(res.Blocks), res.Effect.String())
	return m.applyResult(p, res)
}

func (m *Model) applyResult(p *uistate.Pane, res command.Result) tea.Cmd {
	var cmds []tea.Cmd
	blocks := res.Blocks

	switch res.Effect {
	case command.EffectClear:
		banner := m.session.Banner()
		if len(blocks) > 0 {
			banner, blocks = blocks[0], blocks[1:]
		}
		p.Clear(banner)
		events.Pane.Clear(p.ID, events.PaneReasonCommand)
	case command.EffectMatrixStart:
		cmds = append(cmds, m.startMatrix(p.ID))
	case command.EffectMatrixStop:
		m.stopMatrix()
	case command.EffectSnakeStart:
		cmds = append(cmds, m.startSnake(p.ID))
	case command.EffectSnakeStop:
		m.stopSnake()
	}

	if res.Theme != "" {
		cmds = append(cmds, m.setTheme(res.Theme))
	}
	cmds = append(cmds, m.appendBlocks(p, blocks...))
	if res.Pending != nil {
		cmds = append(cmds, m.bus.Execute(uicommand.Request{
			Pane:       p.ID,
			Generation: p.Generation,
			Name:       res.Name,
			Delay:      res.Pending.Delay,
			Run:        res.Pending.Run,
		}))
	}
	m.followPane(p.ID)
	return tea.Batch(cmds...)
}

// appendBlocks adds output to a pane, typing out the last revealable block
// when the typewriter is on.
func (m *Model) appendBlocks(p *uistate.Pane, blocks ...content.Block) tea.Cmd {
	if len(blocks) == 0 {
		return nil
	}
	first := p.Append(blocks...)
	if !m.typewriter {
		return nil
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		if !blocks[i].Reveal {
			continue
		}
		tok, ok := p.StartReveal(first + i)
		if !ok {
			return nil
		}
		return m.typeTick(p.ID, tok)
	}
	return nil
}

func (m *Model) typeTick(pane int, tok uistate.RevealToken) tea.Cmd {
	return tea.Tick(m.typeDelay, func(time.Time) tea.Msg {
		return typeTickMsg{pane: pane, tok: tok}
	})
}

func (m *Model) handleTypeTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(typeTickMsg)
	if !ok {
		return nil
	}
	p := m.session.Pane(tick.pane)
	if p == nil {
		return nil
	}
	live, more := p.AdvanceReveal(tick.tok)
	if !live {
		return nil
	}
	m.followPane(p.ID)
	if !more {
		return nil
	}
	return m.typeTick(p.ID, tick.tok)
}

func (m *Model) handleOutputMsg(msg tea.Msg) tea.Cmd {
	out, ok := msg.(uicommand.OutputMsg)
	if !ok {
		return nil
	}
	p := m.session.Pane(out.Pane)
	if p == nil || p.Generation != out.Generation {
		events.Command.Stale(out.Pane, out.Generation)
		return nil
	}
	cmd := m.appendBlocks(p, out.Block)
	m.followPane(p.ID)
	return cmd
}

func (m *Model) clearPane(p *uistate.Pane, reason events.PaneReason) {
	if p == nil {
		return
	}
	p.Clear(m.session.Banner())
	events.Pane.Clear(p.ID, reason)
}

// canvas is the area available to panes.
func (m *Model) canvas() layout.Rect {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	h -= footerRows
	if h < 1 {
		h = 1
	}
	return layout.Rect{W: w, H: h}
}

func (m *Model) arrange() layout.Arrangement {
	return m.session.Tree().Arrange(m.canvas())
}

// paneMetrics returns the rendered scrollback length and the number of
// output rows of pane id.
func (m *Model) paneMetrics(id int) (total, height int) {
	p := m.session.Pane(id)
	if p == nil {
		return 0, 0
	}
	rect := m.arrange().Panes[id]
	height = rect.H - promptRows
	if height < 0 {
		height = 0
	}
	return len(m.renderScrollback(p, rect.W)), height
}

// followPane keeps a pane pinned to its newest output.
func (m *Model) followPane(id int) {
	p := m.session.Pane(id)
	if p == nil {
		return
	}
	total, height := m.paneMetrics(id)
	p.ScrollToBottom(total, height)
}

func (m *Model) clampPane(id int) {
	p := m.session.Pane(id)
	if p == nil {
		return
	}
	total, height := m.paneMetrics(id)
	p.ClampOffset(total, height)
}
