// Package session is the explicit owner of everything that is shared across
// panes: the layout tree, the pane registry, focus, the context menu, the
// resize gesture and the effect slots.
package session

import (
	"errors"
	"fmt"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/effect"
	"github.com/atomicstack/termfolio/internal/layout"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/ui/state"
)

var (
	ErrCloseOriginal    = errors.New("session: the original pane cannot be closed")
	ErrResizeInProgress = errors.New("session: a resize is already in progress")
)

// Options configure a new Session.
type Options struct {
	Limits layout.Limits
	Theme  string
	// Banner produces the content a fresh or cleared pane starts with.
	Banner func() content.Block
}

type Session struct {
	Theme string

	// Matrix and Snake each hold at most one running effect.
	Matrix effect.Slot
	Snake  effect.Slot

	tree     *layout.Tree
	panes    map[int]*state.Pane
	order    []int
	active   int
	original int
	nextID   int
	banner   func() content.Block
	menu     *Menu
	resize   *Gesture
}

// New creates a session holding the original pane.
func New(opts Options) *Session {
	banner := opts.Banner
	if banner == nil {
		banner = func() content.Block { return content.Block{Kind: content.KindBanner} }
	}
	s := &Session{
		Theme:  opts.Theme,
		panes:  make(map[int]*state.Pane),
		banner: banner,
	}
	id := s.addPane()
	s.original = id
	s.active = id
	s.tree = layout.New(id, opts.Limits)
	return s
}

func (s *Session) addPane() int {
	s.nextID++
	id := s.nextID
	s.panes[id] = state.NewPane(id, s.banner())
	s.order = append(s.order, id)
	events.Pane.Create(id)
	return id
}

func (s *Session) Tree() *layout.Tree {
	return s.tree
}

// Pane returns the pane with id, or nil.
func (s *Session) Pane(id int) *state.Pane {
	return s.panes[id]
}

// Active returns the focused pane. It is never nil.
func (s *Session) Active() *state.Pane {
	return s.panes[s.active]
}

func (s *Session) ActiveID() int {
	return s.active
}

func (s *Session) Original() int {
	return s.original
}

// Panes returns pane IDs in creation order.
func (s *Session) Panes() []int {
	return append([]int(nil), s.order...)
}

func (s *Session) PaneCount() int {
	return len(s.order)
}

// Banner builds a fresh welcome banner.
func (s *Session) Banner() content.Block {
	return s.banner()
}

// Split divides the active pane. The new pane starts with the banner and
// takes focus.
func (s *Session) Split(o layout.Orientation) (int, error) {
	target := s.active
	s.cancelResize()
	id := s.nextID + 1
	if err := s.tree.Split(target, o, id); err != nil {
		return 0, fmt.Errorf("split pane %d: %w", target, err)
	}
	s.addPane()
	s.active = id
	events.Layout.Split(target, id, o.String(), s.tree.Shape())
	return id, nil
}

// Close removes pane id. Effects hosted by it are stopped, and focus moves
// to the pane now at its position in creation order, or the last one.
func (s *Session) Close(id int) error {
	if id == s.original {
		return ErrCloseOriginal
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("close pane %d: %w", id, layout.ErrPaneNotFound)
	}
	s.cancelResize()
	if err := s.tree.Close(id); err != nil {
		return fmt.Errorf("close pane %d: %w", id, err)
	}
	s.StopEffects(id)
	delete(s.panes, id)
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	if idx > len(s.order)-1 {
		idx = len(s.order) - 1
	}
	s.active = s.order[idx]
	if s.menu != nil && s.menu.Pane == id {
		s.menu = nil
	}
	events.Layout.Collapse(id, s.tree.Shape())
	events.Pane.Close(id, s.active)
	return nil
}

// Focus makes id the active pane.
func (s *Session) Focus(id int) error {
	if _, ok := s.panes[id]; !ok {
		return fmt.Errorf("focus pane %d: %w", id, layout.ErrPaneNotFound)
	}
	s.active = id
	return nil
}

// FocusNext cycles focus through panes in creation order.
func (s *Session) FocusNext() int {
	idx := s.indexOf(s.active)
	s.active = s.order[(idx+1)%len(s.order)]
	return s.active
}

// StopEffects stops any effect hosted by pane id.
func (s *Session) StopEffects(id int) {
	if s.Matrix.Active() && s.Matrix.Owner() == id {
		s.Matrix.Stop()
		events.Effect.Stop("matrix", id)
	}
	if s.Snake.Active() && s.Snake.Owner() == id {
		s.Snake.Stop()
		events.Effect.Stop("snake", id)
	}
}

// SnakeFor returns the running game when pane id hosts it.
func (s *Session) SnakeFor(id int) *effect.Snake {
	if !s.Snake.Active() || s.Snake.Owner() != id {
		return nil
	}
	game, _ := s.Snake.Task().(*effect.Snake)
	return game
}

// RainFor returns the running rain when pane id hosts it.
func (s *Session) RainFor(id int) *effect.Rain {
	if !s.Matrix.Active() || s.Matrix.Owner() != id {
		return nil
	}
	rain, _ := s.Matrix.Task().(*effect.Rain)
	return rain
}

func (s *Session) indexOf(id int) int {
	for i, p := range s.order {
		if p == id {
			return i
		}
	}
	return -1
}
