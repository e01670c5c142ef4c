// Package theme maps semantic content tones and UI chrome to Lip Gloss
// styles, one style set per named theme.
package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/termfolio/internal/content"
)

const DefaultName = "default"

// Palette is the colour set a theme is built from.
type Palette struct {
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Dim        lipgloss.Color
	Heading    lipgloss.Color
	Subheading lipgloss.Color
	Accent     lipgloss.Color
	Command    lipgloss.Color
	Link       lipgloss.Color
	Highlight  lipgloss.Color
	Success    lipgloss.Color
	Info       lipgloss.Color
	Error      lipgloss.Color
	// Primary drives the banner, prompt, matrix rain and focused borders.
	Primary lipgloss.Color
	Border  lipgloss.Color
	Footer  lipgloss.Color
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Name    string
	Palette Palette

	Tones map[content.Tone]*lipgloss.Style

	Prompt         *lipgloss.Style
	PromptInactive *lipgloss.Style
	Input          *lipgloss.Style
	InputInactive  *lipgloss.Style
	Separator      *lipgloss.Style
	SeparatorDrag  *lipgloss.Style
	Frame          *lipgloss.Style
	Footer         *lipgloss.Style
	FooterKey      *lipgloss.Style
	Menu           *lipgloss.Style
	MenuSelected   *lipgloss.Style
	MatrixHead     *lipgloss.Style
	Matrix         *lipgloss.Style
	MatrixFaded    *lipgloss.Style
	SnakeHead      *lipgloss.Style
	SnakeBody      *lipgloss.Style
	Food           *lipgloss.Style
	Board          *lipgloss.Style
	Status         *lipgloss.Style
}

var palettes = map[string]Palette{
	DefaultName: {
		Text:       "#ffffff",
		Muted:      "#aaaaaa",
		Dim:        "#666666",
		Heading:    "#ffff00",
		Subheading: "#00ffff",
		Accent:     "#00bfff",
		Command:    "#98fb98",
		Link:       "#87cefa",
		Highlight:  "#ffa500",
		Success:    "#98fb98",
		Info:       "#00bfff",
		Error:      "#ff5555",
		Primary:    "#00ff00",
		Border:     "#333333",
		Footer:     "#888888",
	},
	"dracula": {
		Text:       "#f8f8f2",
		Muted:      "#bfbfbf",
		Dim:        "#6272a4",
		Heading:    "#f1fa8c",
		Subheading: "#8be9fd",
		Accent:     "#bd93f9",
		Command:    "#50fa7b",
		Link:       "#8be9fd",
		Highlight:  "#ffb86c",
		Success:    "#50fa7b",
		Info:       "#8be9fd",
		Error:      "#ff5555",
		Primary:    "#50fa7b",
		Border:     "#44475a",
		Footer:     "#6272a4",
	},
	"solarized": {
		Text:       "#eee8d5",
		Muted:      "#93a1a1",
		Dim:        "#586e75",
		Heading:    "#b58900",
		Subheading: "#2aa198",
		Accent:     "#268bd2",
		Command:    "#859900",
		Link:       "#268bd2",
		Highlight:  "#cb4b16",
		Success:    "#859900",
		Info:       "#2aa198",
		Error:      "#dc322f",
		Primary:    "#859900",
		Border:     "#073642",
		Footer:     "#657b83",
	},
	"nord": {
		Text:       "#eceff4",
		Muted:      "#d8dee9",
		Dim:        "#4c566a",
		Heading:    "#ebcb8b",
		Subheading: "#88c0d0",
		Accent:     "#81a1c1",
		Command:    "#a3be8c",
		Link:       "#88c0d0",
		Highlight:  "#d08770",
		Success:    "#a3be8c",
		Info:       "#88c0d0",
		Error:      "#bf616a",
		Primary:    "#a3be8c",
		Border:     "#3b4252",
		Footer:     "#616e88",
	},
}

// Names lists the themes with the default first.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultName}, names...)
}

// Valid reports whether name is a known theme, ignoring case.
func Valid(name string) bool {
	_, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Get builds the style set for name.
func Get(name string) (*Styles, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := palettes[key]
	if !ok {
		return nil, false
	}
	return build(key, p), true
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	s, _ := Get(DefaultName)
	return s
}

// Resolve returns the named theme, falling back to the default.
func Resolve(name string) *Styles {
	if s, ok := Get(name); ok {
		return s
	}
	return Default()
}

func build(name string, p Palette) *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	tones := map[content.Tone]*lipgloss.Style{
		content.ToneText:       ptr(fg(p.Text)),
		content.ToneMuted:      ptr(fg(p.Muted)),
		content.ToneDim:        ptr(fg(p.Dim)),
		content.ToneHeading:    ptr(fg(p.Heading).Bold(true)),
		content.ToneSubheading: ptr(fg(p.Subheading)),
		content.ToneAccent:     ptr(fg(p.Accent)),
		content.ToneCommand:    ptr(fg(p.Command)),
		content.ToneLink:       ptr(fg(p.Link).Underline(true)),
		content.ToneHighlight:  ptr(fg(p.Highlight)),
		content.ToneSuccess:    ptr(fg(p.Success)),
		content.ToneInfo:       ptr(fg(p.Info)),
		content.ToneError:      ptr(fg(p.Error)),
		content.ToneBanner:     ptr(fg(p.Primary)),
		content.TonePrompt:     ptr(fg(p.Primary).Bold(true)),
	}
	return &Styles{
		Name:           name,
		Palette:        p,
		Tones:          tones,
		Prompt:         ptr(fg(p.Primary).Bold(true)),
		PromptInactive: ptr(fg(p.Dim)),
		Input:          ptr(fg(p.Text)),
		InputInactive:  ptr(fg(p.Dim)),
		Separator:      ptr(fg(p.Border)),
		SeparatorDrag:  ptr(fg(p.Primary)),
		Frame:          ptr(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 1)),
		Footer:         ptr(fg(p.Footer)),
		FooterKey:      ptr(fg(p.Primary).Bold(true)),
		Menu:           ptr(fg(p.Text)),
		MenuSelected:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(p.Primary).Bold(true)),
		MatrixHead:     ptr(fg(p.Text).Bold(true)),
		Matrix:         ptr(fg(p.Primary)),
		MatrixFaded:    ptr(fg(p.Primary).Faint(true)),
		SnakeHead:      ptr(fg(p.Primary).Bold(true)),
		SnakeBody:      ptr(fg(p.Primary)),
		Food:           ptr(fg(p.Error)),
		Board:          ptr(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Border)),
		Status:         ptr(fg(p.Muted)),
	}
}

// Tone returns the style for a content tone.
func (s *Styles) Tone(t content.Tone) lipgloss.Style {
	if style, ok := s.Tones[t]; ok {
		return *style
	}
	return *s.Tones[content.ToneText]
}

// Span renders one span of content.
func (s *Styles) Span(span content.Span) string {
	style := s.Tone(span.Tone)
	if span.Bold {
		style = style.Bold(true)
	}
	return style.Render(span.Text)
}

// Line renders the spans of a line without a trailing newline. Bar lines are
// left to the caller.
func (s *Styles) Line(line content.Line) string {
	var b strings.Builder
	for _, span := range line.Spans {
		b.WriteString(s.Span(span))
	}
	return b.String()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
