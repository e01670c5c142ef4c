// Package content holds the canned portfolio data and the pure builders that
// turn it into structured output blocks. Nothing here knows about terminals;
// the ui package maps tones to theme colours when attaching a block to a pane.
package content

import (
	"strconv"
	"strings"
)

// Tone names the semantic colour role of a span.
type Tone int

const (
	ToneText Tone = iota
	ToneMuted
	ToneDim
	ToneHeading
	ToneSubheading
	ToneAccent
	ToneCommand
	ToneLink
	ToneHighlight
	ToneSuccess
	ToneInfo
	ToneError
	ToneBanner
	TonePrompt
)

// Kind classifies a block for rendering and reveal decisions.
type Kind int

const (
	KindOutput Kind = iota
	KindEcho
	KindInfo
	KindError
	KindBanner
)

func (k Kind) String() string {
	switch k {
	case KindEcho:
		return "echo"
	case KindInfo:
		return "info"
	case KindError:
		return "error"
	case KindBanner:
		return "banner"
	default:
		return "output"
	}
}

// Span is a run of text sharing one tone.
type Span struct {
	Text string
	Tone Tone
	Bold bool
}

// Bar is a labelled percentage rendered as a progress bar.
type Bar struct {
	Label   string
	Percent int
}

// Line is a single output row: either spans or a bar.
type Line struct {
	Spans []Span
	Bar   *Bar
}

// Block is one unit of output appended to a pane.
type Block struct {
	Kind   Kind
	Title  string
	Framed bool
	// Reveal marks blocks eligible for the typewriter renderer.
	Reveal bool
	Lines  []Line
}

// Text returns a single-span line.
func Text(tone Tone, text string) Line {
	return Line{Spans: []Span{{Text: text, Tone: tone}}}
}

// Bold returns a single bold span line.
func Bold(tone Tone, text string) Line {
	return Line{Spans: []Span{{Text: text, Tone: tone, Bold: true}}}
}

// Join builds a line from spans.
func Join(spans ...Span) Line {
	return Line{Spans: spans}
}

// Blank is an empty line.
func Blank() Line {
	return Line{}
}

// S is shorthand for a span.
func S(tone Tone, text string) Span {
	return Span{Text: text, Tone: tone}
}

// Plain returns the text of the line without styling.
func (l Line) Plain() string {
	if l.Bar != nil {
		return barText(*l.Bar)
	}
	var b strings.Builder
	for _, span := range l.Spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// RuneCount is the number of runes the line contributes to a reveal.
func (l Line) RuneCount() int {
	if l.Bar != nil {
		return 1
	}
	n := 0
	for _, span := range l.Spans {
		n += len([]rune(span.Text))
	}
	return n
}

// Truncate keeps the first n runes of the line.
func (l Line) Truncate(n int) Line {
	if l.Bar != nil {
		if n <= 0 {
			return Line{}
		}
		return l
	}
	out := Line{Spans: make([]Span, 0, len(l.Spans))}
	for _, span := range l.Spans {
		if n <= 0 {
			break
		}
		runes := []rune(span.Text)
		if len(runes) > n {
			span.Text = string(runes[:n])
		}
		n -= len(runes)
		out.Spans = append(out.Spans, span)
	}
	return out
}

// RuneCount totals the reveal length of a block.
func (b Block) RuneCount() int {
	n := 0
	for _, line := range b.Lines {
		n += line.RuneCount()
	}
	return n
}

// Truncate keeps the first n runes of the block, dropping later lines.
func (b Block) Truncate(n int) Block {
	out := b
	out.Lines = make([]Line, 0, len(b.Lines))
	for _, line := range b.Lines {
		if n <= 0 {
			break
		}
		out.Lines = append(out.Lines, line.Truncate(n))
		n -= line.RuneCount()
	}
	return out
}

// PlainLines flattens a block to unstyled rows.
func PlainLines(b Block) []string {
	lines := make([]string, 0, len(b.Lines)+1)
	if b.Title != "" {
		lines = append(lines, b.Title)
	}
	for _, line := range b.Lines {
		lines = append(lines, line.Plain())
	}
	return lines
}

// PlainText flattens a block to a newline separated string.
func PlainText(b Block) string {
	return strings.Join(PlainLines(b), "\n")
}

func barText(bar Bar) string {
	const width = 20
	filled := bar.Percent * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return bar.Label + " " + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + " " + strconv.Itoa(bar.Percent) + "%"
}
