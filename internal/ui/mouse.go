package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

const wheelStep = 3

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.session.Resizing() {
		switch mouse.Action {
		case tea.MouseActionMotion:
			if m.session.DragResize(mouse.X, mouse.Y) {
				m.clampAll()
			}
		case tea.MouseActionRelease:
			m.session.EndResize()
		}
		return nil
	}

	arr := m.arrange()
	switch mouse.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		id := arr.HitPane(mouse.X, mouse.Y)
		p := m.session.Pane(id)
		if p == nil {
			return nil
		}
		delta := wheelStep
		if mouse.Button == tea.MouseButtonWheelUp {
			delta = -wheelStep
		}
		m.scrollPane(p, delta)
	case tea.MouseButtonLeft:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
		if m.session.Menu() != nil {
			m.session.CloseMenu()
		}
		if h, ok := arr.HitHandle(mouse.X, mouse.Y); ok {
			if err := m.session.BeginResize(h, mouse.X, mouse.Y); err != nil {
				m.status = err.Error()
			}
			return nil
		}
		m.focusAt(arr.HitPane(mouse.X, mouse.Y))
	case tea.MouseButtonRight:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
		id := arr.HitPane(mouse.X, mouse.Y)
		if id == 0 {
			return nil
		}
		m.focusAt(id)
		if err := m.session.OpenMenu(id); err != nil {
			m.status = err.Error()
		}
	}
	return nil
}

func (m *Model) focusAt(id int) {
	if id == 0 || id == m.session.ActiveID() {
		return
	}
	if err := m.session.Focus(id); err != nil {
		return
	}
	m.caretDirty = true
	events.Pane.Focus(id, events.PaneReasonMouse)
}

func (m *Model) clampAll() {
	for _, id := range m.session.Panes() {
		m.clampPane(id)
	}
}
