package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and returns the resulting command
// without running it. Most commands are timers, so tests deliver the
// messages they care about directly.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

// Type sends text one key at a time.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a named key such as "enter", "ctrl+l" or "alt+h".
func (h *Harness) Press(name string) tea.Cmd {
	return h.Send(KeyMsg(name))
}

// Submit types line and presses enter.
func (h *Harness) Submit(line string) tea.Cmd {
	h.Type(line)
	return h.Press("enter")
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":      tea.KeyEnter,
	"tab":        tea.KeyTab,
	"esc":        tea.KeyEsc,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"home":       tea.KeyHome,
	"end":        tea.KeyEnd,
	"pgup":       tea.KeyPgUp,
	"pgdown":     tea.KeyPgDown,
	"backspace":  tea.KeyBackspace,
	"delete":     tea.KeyDelete,
	"space":      tea.KeySpace,
	"ctrl+a":     tea.KeyCtrlA,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+e":     tea.KeyCtrlE,
	"ctrl+l":     tea.KeyCtrlL,
	"ctrl+u":     tea.KeyCtrlU,
	"ctrl+w":     tea.KeyCtrlW,
	"ctrl+right": tea.KeyCtrlRight,
}

// KeyMsg builds the key message bubbletea reports for name. An "alt+"
// prefix sets the Alt flag; anything else unknown is sent as runes.
func KeyMsg(name string) tea.KeyMsg {
	alt := false
	if len(name) > 4 && name[:4] == "alt+" {
		alt = true
		name = name[4:]
	}
	if t, ok := namedKeys[name]; ok {
		msg := tea.KeyMsg{Type: t, Alt: alt}
		if t == tea.KeySpace {
			msg.Runes = []rune{' '}
		}
		return msg
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name), Alt: alt}
}
