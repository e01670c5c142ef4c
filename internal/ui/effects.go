package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/effect"
	"github.com/atomicstack/termfolio/internal/logging/events"
)

const (
	matrixEffect = "matrix"
	snakeEffect  = "snake"
)

type matrixTickMsg struct {
	gen uint64
}

type snakeTickMsg struct {
	gen uint64
}

// startMatrix runs the rain over pane, replacing any rain already running.
func (m *Model) startMatrix(pane int) tea.Cmd {
	if owner := m.session.Matrix.Owner(); m.session.Matrix.Active() {
		events.Effect.Stop(matrixEffect, owner)
	}
	cols, rows := m.outputSize(pane)
	gen := m.session.Matrix.Start(pane, effect.NewRain(cols, rows, m.rng))
	events.Effect.Start(matrixEffect, pane, gen)
	return matrixTick(gen)
}

func (m *Model) stopMatrix() {
	owner := m.session.Matrix.Owner()
	if m.session.Matrix.Stop() {
		events.Effect.Stop(matrixEffect, owner)
	}
}

func matrixTick(gen uint64) tea.Cmd {
	return tea.Tick(effect.RainInterval, func(time.Time) tea.Msg {
		return matrixTickMsg{gen: gen}
	})
}

func (m *Model) handleMatrixTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(matrixTickMsg)
	if !ok {
		return nil
	}
	if !m.session.Matrix.Accept(tick.gen) {
		events.Effect.Stale(matrixEffect, tick.gen)
		return nil
	}
	owner := m.session.Matrix.Owner()
	rain := m.session.RainFor(owner)
	if rain == nil {
		return nil
	}
	rain.Resize(m.outputSize(owner))
	rain.Tick()
	return matrixTick(tick.gen)
}

// startSnake starts a new game in pane. Only one game runs at a time.
func (m *Model) startSnake(pane int) tea.Cmd {
	if owner := m.session.Snake.Owner(); m.session.Snake.Active() {
		events.Effect.Stop(snakeEffect, owner)
	}
	game := effect.NewSnake(m.rng)
	gen := m.session.Snake.Start(pane, game)
	events.Effect.Start(snakeEffect, pane, gen)
	return snakeTick(gen, game.Interval())
}

func (m *Model) stopSnake() {
	owner := m.session.Snake.Owner()
	if m.session.Snake.Stop() {
		events.Effect.Stop(snakeEffect, owner)
	}
}

func snakeTick(gen uint64, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return snakeTickMsg{gen: gen}
	})
}

func (m *Model) handleSnakeTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(snakeTickMsg)
	if !ok {
		return nil
	}
	if !m.session.Snake.Accept(tick.gen) {
		events.Effect.Stale(snakeEffect, tick.gen)
		return nil
	}
	game := m.session.SnakeFor(m.session.Snake.Owner())
	if game == nil {
		return nil
	}
	before, score := game.State(), game.Score()
	game.Tick()
	if game.State() != before || game.Score() != score {
		events.Effect.Snake(game.State().String(), game.Score())
	}
	return snakeTick(tick.gen, game.Interval())
}

// handleSnakeKey steers the game when the focused pane hosts it. Only the
// arrows, p, space and esc belong to the game; p and space are passed on
// when they do nothing in the current state, so commands stay typeable.
func (m *Model) handleSnakeKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	game := m.session.SnakeFor(m.session.ActiveID())
	if game == nil || msg.Alt {
		return false, nil
	}
	switch {
	case msg.Type == tea.KeyUp:
		game.Turn(effect.Up)
	case msg.Type == tea.KeyDown:
		game.Turn(effect.Down)
	case msg.Type == tea.KeyLeft:
		game.Turn(effect.Left)
	case msg.Type == tea.KeyRight:
		game.Turn(effect.Right)
	case msg.Type == tea.KeyEsc:
		p := m.session.Active()
		res := m.registry.Run(m.commandContext(), "exit-game")
		return true, m.applyResult(p, res)
	case isRune(msg, 'p', 'P'):
		if !game.TogglePause() {
			return false, nil
		}
		events.Effect.Snake(game.State().String(), game.Score())
	case msg.Type == tea.KeySpace || isRune(msg, ' '):
		if !game.Restart() {
			return false, nil
		}
		events.Effect.Snake(game.State().String(), game.Score())
	default:
		return false, nil
	}
	return true, nil
}

// isRune reports whether msg is a single plain rune among want.
func isRune(msg tea.KeyMsg, want ...rune) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return false
	}
	for _, r := range want {
		if msg.Runes[0] == r {
			return true
		}
	}
	return false
}

// outputSize is the scrollback area of pane, excluding the prompt row.
func (m *Model) outputSize(pane int) (int, int) {
	rect := m.arrange().Panes[pane]
	rows := rect.H - promptRows
	if rows < 0 {
		rows = 0
	}
	return rect.W, rows
}
