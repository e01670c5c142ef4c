package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/termfolio/internal/content"
)

// keyMap holds the global shortcuts. Most terminals cannot report
// ctrl+shift combinations, so every such binding has an alt alternative.
type keyMap struct {
	Quit            key.Binding
	Clear           key.Binding
	SplitHorizontal key.Binding
	SplitVertical   key.Binding
	ClosePane       key.Binding
	FocusNext       key.Binding
	ResizeLeft      key.Binding
	ResizeRight     key.Binding
	ResizeUp        key.Binding
	ResizeDown      key.Binding
	Menu            key.Binding

	// Pane-local bindings, listed for help only.
	History  key.Binding
	Complete key.Binding
	Scroll   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "Quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "Clear the screen"),
		),
		SplitHorizontal: key.NewBinding(
			key.WithKeys("ctrl+shift+h", "alt+h"),
			key.WithHelp("Ctrl+Shift+H", "Split horizontally (Alt+H)"),
		),
		SplitVertical: key.NewBinding(
			key.WithKeys("ctrl+shift+v", "alt+v"),
			key.WithHelp("Ctrl+Shift+V", "Split vertically (Alt+V)"),
		),
		ClosePane: key.NewBinding(
			key.WithKeys("alt+w"),
			key.WithHelp("Alt+W", "Close split"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("ctrl+right", "alt+o"),
			key.WithHelp("Alt+O", "Focus next pane"),
		),
		ResizeLeft: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("Alt+←/→", "Resize pane width"),
		),
		ResizeRight: key.NewBinding(
			key.WithKeys("alt+right"),
		),
		ResizeUp: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("Alt+↑/↓", "Resize pane height"),
		),
		ResizeDown: key.NewBinding(
			key.WithKeys("alt+down"),
		),
		Menu: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("Alt+M", "Pane menu (or right click)"),
		),
		History: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "Navigate command history"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Auto-complete commands"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("PgUp/PgDn", "Scroll output"),
		),
	}
}

func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.History, k.Complete, k.Clear, k.SplitHorizontal, k.SplitVertical,
		k.ClosePane, k.FocusNext, k.ResizeLeft, k.ResizeUp, k.Menu, k.Scroll, k.Quit,
	}
}

// Shortcuts lists the bindings for the help command.
func (k keyMap) Shortcuts() []content.Shortcut {
	bindings := k.helpBindings()
	out := make([]content.Shortcut, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, content.Shortcut{Keys: h.Key, Description: h.Desc})
	}
	return out
}

type hint struct {
	key  string
	desc string
}

// footerHints is the short form shown in the status bar, using the last
// (most portable) key of each binding.
func (k keyMap) footerHints() []hint {
	last := func(b key.Binding) string {
		keys := b.Keys()
		return keys[len(keys)-1]
	}
	return []hint{
		{last(k.SplitHorizontal), "split h"},
		{last(k.SplitVertical), "split v"},
		{last(k.ClosePane), "close"},
		{last(k.FocusNext), "focus"},
		{last(k.Menu), "menu"},
	}
}

// Shortcuts returns the default key help, for callers without a Model.
func Shortcuts() []content.Shortcut {
	return defaultKeyMap().Shortcuts()
}
