package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/effect"
	"github.com/atomicstack/termfolio/internal/layout"
	uistate "github.com/atomicstack/termfolio/internal/ui/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// promptRows is the input line at the bottom of every pane.
	promptRows = 1
	promptText = "➜ "

	// matrixKeepRows scrollback rows stay visible under the rain.
	matrixKeepRows = 2
	minBarWidth    = 5
)

// View implements tea.Model.
func (m *Model) View() string {
	area := m.canvas()
	arr := m.session.Tree().Arrange(area)
	body := m.renderNode(m.session.Tree().Root(), arr)
	return body + "\n" + m.renderFooter(area.W)
}

func (m *Model) renderNode(n *layout.Node, arr layout.Arrangement) string {
	rect := arr.Nodes[n]
	if n.IsLeaf() {
		return m.renderPane(n.Pane, rect)
	}
	parts := make([]string, 0, 2*len(n.Children)-1)
	for i, child := range n.Children {
		if i > 0 {
			parts = append(parts, m.renderSeparator(n, i, rect))
		}
		if n.Orientation == layout.Vertical && arr.Nodes[child].H == 0 {
			continue
		}
		parts = append(parts, m.renderNode(child, arr))
	}
	if n.Orientation == layout.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderSeparator(n *layout.Node, idx int, rect layout.Rect) string {
	style := m.styles.Separator
	if g := m.session.Gesture(); g != nil && g.Handle.Container == n && g.Handle.Index == idx {
		style = m.styles.SeparatorDrag
	}
	if n.Orientation == layout.Vertical {
		return style.Render(strings.Repeat("─", rect.W))
	}
	rows := make([]string, rect.H)
	for i := range rows {
		rows[i] = "│"
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderPane(id int, rect layout.Rect) string {
	p := m.session.Pane(id)
	if p == nil || rect.H <= 0 {
		return ""
	}
	outH := rect.H - promptRows
	if outH < 0 {
		outH = 0
	}
	var rows []string
	if game := m.session.SnakeFor(id); game != nil {
		rows = m.renderSnake(game, outH)
	} else {
		lines := m.renderScrollback(p, rect.W)
		rows = window(lines, p.Offset, outH)
		if rain := m.session.RainFor(id); rain != nil {
			rows = m.overlayRain(rain, lines, outH)
		}
	}
	for len(rows) < outH {
		rows = append(rows, "")
	}
	rows = rows[:outH]
	if rect.H > outH {
		rows = append(rows, m.renderPrompt(p, id == m.session.ActiveID()))
	}
	for i, row := range rows {
		rows[i] = fit(row, rect.W)
	}
	return strings.Join(rows, "\n")
}

// window returns height lines starting at offset.
func window(lines []string, offset, height int) []string {
	if offset > len(lines) {
		offset = len(lines)
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return append([]string(nil), lines[offset:end]...)
}

// renderScrollback renders every visible block of p at width. Blocks other
// than command echoes are followed by a blank row.
func (m *Model) renderScrollback(p *uistate.Pane, width int) []string {
	var rows []string
	for _, b := range p.Visible() {
		rows = append(rows, m.renderBlock(b, width)...)
		if b.Kind != content.KindEcho {
			rows = append(rows, "")
		}
	}
	return rows
}

func (m *Model) renderBlock(b content.Block, width int) []string {
	inner := width
	if b.Framed {
		// border plus one column of padding on each side
		inner = width - 4
	}
	var rows []string
	if b.Title != "" {
		rows = append(rows, wrapText(m.styles.Tone(content.ToneHeading).Render(b.Title), inner)...)
	}
	for _, line := range b.Lines {
		if line.Bar != nil {
			rows = append(rows, m.renderBar(*line.Bar, inner))
			continue
		}
		rows = append(rows, wrapText(m.styles.Line(line), inner)...)
	}
	if !b.Framed || inner <= 0 || len(rows) == 0 {
		return rows
	}
	framed := m.styles.Frame.Width(inner + 2).Render(strings.Join(rows, "\n"))
	return strings.Split(framed, "\n")
}

func (m *Model) renderBar(bar content.Bar, width int) string {
	label := m.styles.Tone(content.ToneText).Render(bar.Label)
	pct := fmt.Sprintf(" %3d%%", bar.Percent)
	barWidth := width - lipgloss.Width(label) - len(pct)
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	m.bar.Width = barWidth
	return label + m.bar.ViewAs(float64(bar.Percent)/100) + m.styles.Tone(content.ToneMuted).Render(pct)
}

func wrapText(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	return strings.Split(wrap.String(wordwrap.String(s, width), width), "\n")
}

func (m *Model) renderPrompt(p *uistate.Pane, active bool) string {
	if !active {
		return m.styles.PromptInactive.Render(promptText) + m.styles.InputInactive.Render(p.Input)
	}
	runes := []rune(p.Input)
	pos := p.InputCursorPos()
	under := " "
	after := ""
	if pos < len(runes) {
		under = string(runes[pos])
		after = string(runes[pos+1:])
	}
	m.caret.SetChar(under)
	return m.styles.Prompt.Render(promptText) +
		m.styles.Input.Render(string(runes[:pos])) +
		m.caret.View() +
		m.styles.Input.Render(after)
}

// overlayRain draws the rain over the output rows, keeping the newest
// scrollback rows visible beneath it.
func (m *Model) overlayRain(rain *effect.Rain, lines []string, height int) []string {
	keep := matrixKeepRows
	if keep > height {
		keep = height
	}
	if keep > len(lines) {
		keep = len(lines)
	}
	cells := rain.Rows()
	rows := make([]string, 0, height)
	for y := 0; y < height-keep; y++ {
		if y >= len(cells) {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, m.renderRainRow(cells[y]))
	}
	for len(rows) < height-keep {
		rows = append(rows, "")
	}
	return append(rows, lines[len(lines)-keep:]...)
}

func (m *Model) renderRainRow(cells []effect.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		switch {
		case c.Empty():
			b.WriteByte(' ')
		case c.Age == 0:
			b.WriteString(m.styles.MatrixHead.Render(string(c.Glyph)))
		case c.Brightness() > 0.5:
			b.WriteString(m.styles.Matrix.Render(string(c.Glyph)))
		default:
			b.WriteString(m.styles.MatrixFaded.Render(string(c.Glyph)))
		}
	}
	return b.String()
}

func (m *Model) renderSnake(game *effect.Snake, height int) []string {
	w, h := game.Size()
	body := game.Body()
	occupied := make(map[effect.Point]bool, len(body))
	for _, pt := range body[1:] {
		occupied[pt] = true
	}
	head, food := body[0], game.Food()

	grid := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			pt := effect.Point{X: x, Y: y}
			switch {
			case pt == head:
				b.WriteString(m.styles.SnakeHead.Render("██"))
			case occupied[pt]:
				b.WriteString(m.styles.SnakeBody.Render("██"))
			case pt == food:
				b.WriteString(m.styles.Food.Render("● "))
			default:
				b.WriteString("  ")
			}
		}
		grid[y] = b.String()
	}
	rows := []string{m.styles.Status.Render(snakeStatus(game))}
	rows = append(rows, strings.Split(m.styles.Board.Render(strings.Join(grid, "\n")), "\n")...)
	if len(rows) > height {
		rows = rows[:height]
	}
	return rows
}

func snakeStatus(game *effect.Snake) string {
	switch game.State() {
	case effect.GameOver:
		return fmt.Sprintf("Game over! Score: %d · space restart · esc exit", game.Score())
	case effect.Paused:
		return fmt.Sprintf("Paused. Score: %d · p resume · esc exit", game.Score())
	default:
		return fmt.Sprintf("Score: %d · arrows steer · p pause · esc exit", game.Score())
	}
}

func (m *Model) renderFooter(width int) string {
	if menu := m.session.Menu(); menu != nil {
		parts := make([]string, 0, len(menu.Items)+2)
		parts = append(parts, m.styles.Footer.Render(fmt.Sprintf("pane %d:", menu.Pane)))
		for i, item := range menu.Items {
			label := " " + item.Label + " "
			if i == menu.Cursor {
				parts = append(parts, m.styles.MenuSelected.Render(label))
			} else {
				parts = append(parts, m.styles.Menu.Render(label))
			}
		}
		parts = append(parts, m.styles.Footer.Render("↑/↓ enter esc"))
		return fit(strings.Join(parts, " "), width)
	}
	if m.status != "" {
		return fit(m.styles.Status.Render(m.status), width)
	}
	parts := []string{
		m.styles.Footer.Render(fmt.Sprintf("theme: %s", m.session.Theme)),
		m.styles.Footer.Render(fmt.Sprintf("panes: %d", m.session.PaneCount())),
	}
	for _, h := range m.keys.footerHints() {
		parts = append(parts, m.styles.FooterKey.Render(h.key)+" "+m.styles.Footer.Render(h.desc))
	}
	return fit(strings.Join(parts, m.styles.Footer.Render(" · ")), width)
}

// fit pads or truncates an ANSI string to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		s = truncate.String(s, uint(width))
		w = ansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
