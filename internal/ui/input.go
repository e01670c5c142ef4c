package ui

import (
	"errors"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/layout"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/session"
	uistate "github.com/atomicstack/termfolio/internal/ui/state"
)

const (
	resizeStepCols = 2
	resizeStepRows = 1
)

func (m *Model) updateCaret(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return cmd
}

// noteCaretChange restarts the caret blink after the input moved.
func (m *Model) noteCaretChange(p *uistate.Pane, before int) {
	if p != nil && before != p.InputCursorPos() {
		m.caretDirty = true
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.status = ""
	if m.session.Menu() != nil {
		return m.handleMenuKey(keyMsg)
	}
	if handled, cmd := m.handleSnakeKey(keyMsg); handled {
		return cmd
	}
	if handled, cmd := m.handleGlobalKey(keyMsg); handled {
		return cmd
	}
	return m.handlePaneKey(keyMsg)
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.StopEffects(m.session.ActiveID())
		for _, id := range m.session.Panes() {
			m.session.StopEffects(id)
		}
		return true, tea.Quit
	case key.Matches(msg, m.keys.Clear):
		m.clearPane(m.session.Active(), events.PaneReasonShortcut)
		return true, nil
	case key.Matches(msg, m.keys.SplitHorizontal):
		m.split(layout.Horizontal, events.PaneReasonShortcut)
		return true, nil
	case key.Matches(msg, m.keys.SplitVertical):
		m.split(layout.Vertical, events.PaneReasonShortcut)
		return true, nil
	case key.Matches(msg, m.keys.ClosePane):
		m.closePane(m.session.ActiveID())
		return true, nil
	case key.Matches(msg, m.keys.FocusNext):
		id := m.session.FocusNext()
		m.caretDirty = true
		events.Pane.Focus(id, events.PaneReasonShortcut)
		return true, nil
	case key.Matches(msg, m.keys.ResizeLeft):
		m.resizeActive(layout.Horizontal, -resizeStepCols)
		return true, nil
	case key.Matches(msg, m.keys.ResizeRight):
		m.resizeActive(layout.Horizontal, resizeStepCols)
		return true, nil
	case key.Matches(msg, m.keys.ResizeUp):
		m.resizeActive(layout.Vertical, -resizeStepRows)
		return true, nil
	case key.Matches(msg, m.keys.ResizeDown):
		m.resizeActive(layout.Vertical, resizeStepRows)
		return true, nil
	case key.Matches(msg, m.keys.Menu):
		if err := m.session.OpenMenu(m.session.ActiveID()); err != nil {
			m.status = err.Error()
		}
		return true, nil
	}
	return false, nil
}

func (m *Model) handlePaneKey(msg tea.KeyMsg) tea.Cmd {
	p := m.session.Active()
	if p == nil {
		return nil
	}
	before := p.InputCursorPos()
	defer m.noteCaretChange(p, before)

	switch msg.String() {
	case "enter":
		return m.submit(p)
	case "up":
		p.NavigateHistory(uistate.Older)
		events.Pane.History(p.ID, p.HistoryCursor)
		return nil
	case "down":
		p.NavigateHistory(uistate.Newer)
		events.Pane.History(p.ID, p.HistoryCursor)
		return nil
	case "tab":
		m.complete(p)
		return nil
	case "pgup":
		m.scrollPane(p, -m.pageSize(p.ID))
		return nil
	case "pgdown":
		m.scrollPane(p, m.pageSize(p.ID))
		return nil
	case "ctrl+u":
		p.ClearLine()
		return nil
	case "ctrl+w", "alt+backspace":
		p.DeleteWordBackward()
		return nil
	case "ctrl+a", "home":
		p.MoveCursorStart()
		return nil
	case "ctrl+e", "end":
		p.MoveCursorEnd()
		return nil
	case "alt+b", "ctrl+left":
		p.MoveCursorWordBackward()
		return nil
	case "alt+f":
		p.MoveCursorWordForward()
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		p.DeleteRuneBackward()
	case tea.KeyDelete:
		p.DeleteRuneForward()
	case tea.KeyLeft:
		p.MoveCursorRuneBackward()
	case tea.KeyRight:
		p.MoveCursorRuneForward()
	case tea.KeySpace:
		p.InsertText(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		p.InsertText(string(msg.Runes))
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k", "shift+tab":
		m.session.MenuMove(-1)
	case "down", "j", "tab":
		m.session.MenuMove(1)
	case "enter":
		m.selectMenuItem()
	case "esc", "q", "alt+m":
		m.session.CloseMenu()
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *Model) selectMenuItem() {
	menu := m.session.Menu()
	if menu == nil {
		return
	}
	action, created, err := m.session.MenuSelect()
	if err != nil {
		m.reportSessionError(err)
		return
	}
	switch action {
	case session.ActionClose:
		events.Pane.Focus(m.session.ActiveID(), events.PaneReasonClose)
	default:
		events.Pane.Focus(created, events.PaneReasonMenu)
		m.followPane(created)
	}
	m.caretDirty = true
}

func (m *Model) split(o layout.Orientation, reason events.PaneReason) {
	id, err := m.session.Split(o)
	if err != nil {
		m.reportSessionError(err)
		return
	}
	m.caretDirty = true
	events.Pane.Focus(id, reason)
	m.followPane(id)
}

func (m *Model) closePane(id int) {
	if err := m.session.Close(id); err != nil {
		m.reportSessionError(err)
		return
	}
	m.caretDirty = true
	events.Pane.Focus(m.session.ActiveID(), events.PaneReasonClose)
}

func (m *Model) reportSessionError(err error) {
	switch {
	case errors.Is(err, session.ErrCloseOriginal):
		m.status = "The original pane cannot be closed."
	case errors.Is(err, layout.ErrPaneNotFound):
		m.status = "That pane no longer exists."
	default:
		m.status = err.Error()
	}
}

func (m *Model) resizeActive(o layout.Orientation, delta int) {
	arr := m.arrange()
	if m.session.ResizeActive(o, delta, arr.Extents) {
		m.clampAll()
	}
}

func (m *Model) complete(p *uistate.Pane) {
	prefix := strings.TrimSpace(p.Input)
	matches := m.registry.Complete(prefix)
	events.Pane.Complete(p.ID, prefix, matches)
	switch {
	case len(matches) == 1:
		p.SetInput(matches[0])
	case len(matches) > 1:
		p.Append(content.Possible(matches))
		m.followPane(p.ID)
	}
}

func (m *Model) scrollPane(p *uistate.Pane, delta int) {
	total, height := m.paneMetrics(p.ID)
	if p.Scroll(delta, total, height) {
		events.Pane.Scroll(p.ID, p.Offset)
	}
}

func (m *Model) pageSize(id int) int {
	_, height := m.paneMetrics(id)
	if height < 2 {
		return 1
	}
	return height - 1
}
