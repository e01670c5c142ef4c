package session

import (
	"fmt"

	"github.com/atomicstack/termfolio/internal/layout"
)

type Action int

const (
	ActionSplitHorizontal Action = iota
	ActionSplitVertical
	ActionClose
)

type MenuItem struct {
	Label  string
	Action Action
}

// Menu is the per-pane context menu.
type Menu struct {
	Pane   int
	Items  []MenuItem
	Cursor int
}

// Selected returns the highlighted item.
func (m *Menu) Selected() MenuItem {
	return m.Items[m.Cursor]
}

// OpenMenu shows the context menu for pane, replacing any open menu. The
// original pane gets no close entry.
func (s *Session) OpenMenu(pane int) error {
	if _, ok := s.panes[pane]; !ok {
		return fmt.Errorf("menu for pane %d: %w", pane, layout.ErrPaneNotFound)
	}
	items := []MenuItem{
		{Label: "Split Horizontally", Action: ActionSplitHorizontal},
		{Label: "Split Vertically", Action: ActionSplitVertical},
	}
	if pane != s.original {
		items = append(items, MenuItem{Label: "Close Split", Action: ActionClose})
	}
	s.menu = &Menu{Pane: pane, Items: items}
	return nil
}

// Menu returns the open menu, or nil.
func (s *Session) Menu() *Menu {
	return s.menu
}

// MenuMove moves the highlight, wrapping at either end.
func (s *Session) MenuMove(delta int) {
	if s.menu == nil {
		return
	}
	n := len(s.menu.Items)
	s.menu.Cursor = ((s.menu.Cursor+delta)%n + n) % n
}

// MenuSelect runs the highlighted action against the menu's pane and closes
// the menu. It returns the action taken and, for splits, the new pane.
func (s *Session) MenuSelect() (Action, int, error) {
	m := s.menu
	if m == nil {
		return 0, 0, fmt.Errorf("menu select: no menu open")
	}
	s.menu = nil
	item := m.Selected()
	if err := s.Focus(m.Pane); err != nil {
		return item.Action, 0, err
	}
	switch item.Action {
	case ActionSplitHorizontal:
		id, err := s.Split(layout.Horizontal)
		return item.Action, id, err
	case ActionSplitVertical:
		id, err := s.Split(layout.Vertical)
		return item.Action, id, err
	default:
		return item.Action, 0, s.Close(m.Pane)
	}
}

func (s *Session) CloseMenu() bool {
	if s.menu == nil {
		return false
	}
	s.menu = nil
	return true
}
