package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/termfolio/internal/format/table"
)

const divider = "─────────────────────────────────────────────────"

// Group splits commands in the help listing.
type Group int

const (
	GroupMain Group = iota
	GroupUtility
)

func (g Group) String() string {
	if g == GroupUtility {
		return "utility"
	}
	return "main"
}

// HelpEntry describes one command for help style listings.
type HelpEntry struct {
	Name    string
	Summary string
	Group   Group
}

// Shortcut describes a key binding for the help listing.
type Shortcut struct {
	Keys        string
	Description string
}

// Forecast is the weather data shown by the weather command.
type Forecast struct {
	Name      string
	Country   string
	Temp      float64
	FeelsLike float64
	Humidity  int
	Condition string
	WindKmh   float64
}

// Welcome is the banner printed on pane creation and after clear.
func Welcome(r *Resume) Block {
	lines := make([]Line, 0, 16)
	for _, row := range strings.Split(r.Banner, "\n") {
		lines = append(lines, Text(ToneBanner, row))
	}
	lines = append(lines,
		Text(ToneDim, divider),
		Text(ToneMuted, center(r.Profile.Headline, len([]rune(divider)))),
		Text(ToneDim, center(strings.Join(r.Profile.Roles, " • "), len([]rune(divider)))),
		Text(ToneDim, divider),
		Blank(),
		Join(S(ToneDim, "Type "), S(ToneCommand, "'help'"), S(ToneDim, " to see available commands")),
		Join(S(ToneDim, "Press "), S(ToneCommand, "'tab'"), S(ToneDim, " to auto-complete commands")),
	)
	return Block{Kind: KindBanner, Lines: lines}
}

// Help lists commands by group followed by the shortcuts.
func Help(entries []HelpEntry, shortcuts []Shortcut) Block {
	lines := []Line{Bold(ToneHeading, "🚀 Available Commands"), Blank()}
	for _, group := range []Group{GroupMain, GroupUtility} {
		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			if entry.Group == group {
				rows = append(rows, []string{"• " + entry.Name, entry.Summary})
			}
		}
		if len(rows) == 0 {
			continue
		}
		title := "Main Commands:"
		if group == GroupUtility {
			title = "Utility Commands:"
		}
		lines = append(lines, Text(ToneSubheading, title))
		for _, cells := range table.Columns(rows) {
			lines = append(lines, Join(S(ToneSuccess, cells[0]), S(ToneText, "  "+cells[1])))
		}
		lines = append(lines, Blank())
	}
	if len(shortcuts) > 0 {
		lines = append(lines, Text(ToneMuted, "Shortcuts:"))
		rows := make([][]string, len(shortcuts))
		for i, sc := range shortcuts {
			rows[i] = []string{"• " + sc.Keys, sc.Description}
		}
		for _, cells := range table.Columns(rows) {
			lines = append(lines, Join(S(ToneMuted, cells[0]), S(ToneDim, "  "+cells[1])))
		}
	}
	return Block{Lines: trimTrailingBlank(lines)}
}

func About(r *Resume) Block {
	const width = 57
	lines := []Line{Bold(ToneHeading, "✨ About Me"), Blank()}
	lines = append(lines, Text(ToneAccent, "┌"+strings.Repeat("─", width)+"┐"))
	for _, row := range r.About.Summary {
		lines = append(lines, Join(S(ToneAccent, "│ "), S(ToneText, row)))
	}
	lines = append(lines, Text(ToneAccent, "└"+strings.Repeat("─", width)+"┘"), Blank())
	for _, section := range r.About.Sections {
		lines = append(lines, Text(ToneAccent, "⚡ "+section.Title))
		for _, row := range section.Lines {
			lines = append(lines, Text(ToneText, "   "+row))
		}
		if section.Highlight != "" {
			lines = append(lines, Text(ToneAccent, "   "+section.Highlight))
		}
		lines = append(lines, Blank())
	}
	if r.About.Closing != "" {
		inner := len([]rune(r.About.Closing)) + 2
		lines = append(lines,
			Text(ToneAccent, "╭"+strings.Repeat("─", inner)+"╮"),
			Join(S(ToneAccent, "│ "), S(ToneText, r.About.Closing), S(ToneAccent, " │")),
			Text(ToneAccent, "╰"+strings.Repeat("─", inner)+"╯"),
		)
	}
	return Block{Lines: trimTrailingBlank(lines)}
}

func Skills(r *Resume) Block {
	lines := []Line{Bold(ToneHeading, "🛠️ PROGRAMMING"), Blank()}
	for _, skill := range r.Skills {
		lines = append(lines, Join(S(ToneAccent, "• "), S(ToneText, skill)))
	}
	return Block{Lines: lines}
}

func Experience(r *Resume) Block {
	lines := []Line{Bold(ToneHeading, "💼 Professional Experience"), Blank()}
	for i, job := range r.Experience {
		if i > 0 {
			lines = append(lines, Blank())
		}
		lines = append(lines,
			Join(Span{Text: job.Company, Tone: ToneAccent, Bold: true}, S(ToneMuted, " | "), S(ToneHighlight, job.Role)),
			Text(ToneText, strings.Join(nonEmpty(job.Period, job.Location, job.Size), " | ")),
		)
		if job.Tagline != "" {
			lines = append(lines, Text(ToneSuccess, job.Tagline))
		}
		lines = append(lines, Blank())
		for _, h := range job.Highlights {
			lines = append(lines, Join(S(ToneText, "• "), S(ToneHighlight, h.Title), S(ToneText, " - "+h.Detail)))
		}
		if len(job.Technologies) > 0 {
			lines = append(lines, Blank(), Join(S(ToneSubheading, "Technologies used: "), S(ToneLink, strings.Join(job.Technologies, ", "))))
		}
	}
	return Block{Lines: lines}
}

func Education(r *Resume) Block {
	lines := []Line{Bold(ToneHeading, "🎓 Education"), Blank()}
	for i, d := range r.Education {
		if i > 0 {
			lines = append(lines, Blank())
		}
		inner := len([]rune(d.Degree)) + 2
		lines = append(lines,
			Text(ToneAccent, "┌"+strings.Repeat("─", inner)+"┐"),
			Join(S(ToneAccent, "│"), S(ToneText, " "+d.Degree+" "), S(ToneAccent, "│")),
			Text(ToneAccent, "└"+strings.Repeat("─", inner)+"┘"),
			Blank(),
		)
		rows := table.Columns([][]string{
			{"🏛️ Institution:", d.Institution},
			{"📅 Duration:", d.Period},
			{"📍 Location:", d.Location},
		})
		for _, cells := range rows {
			lines = append(lines, Join(S(ToneAccent, cells[0]), S(ToneText, " "+cells[1])))
		}
		if d.Note != "" {
			lines = append(lines, Blank(), Text(ToneMuted, d.Note))
		}
	}
	return Block{Lines: lines}
}

func Contact(r *Resume) Block {
	p := r.Profile
	lines := []Line{
		Bold(ToneHeading, "📫 Contact Information"),
		Blank(),
		Text(ToneText, "Let's connect and create something great!"),
		Blank(),
	}
	rows := table.Columns([][]string{
		{"✉  Email:", p.Email},
		{"🌐 Website:", p.Website},
		{"⚡ Github:", p.GitHub},
		{"💼 LinkedIn:", p.LinkedIn},
	})
	for _, cells := range rows {
		lines = append(lines, Join(S(ToneAccent, cells[0]), S(ToneLink, " "+cells[1])))
	}
	lines = append(lines, Blank(), Text(ToneMuted, "Feel free to reach out for opportunities!"))
	return Block{Lines: lines}
}

func Projects(r *Resume) Block {
	lines := []Line{}
	for i, project := range r.Projects {
		if i > 0 {
			lines = append(lines, Blank())
		}
		lines = append(lines,
			Bold(ToneHighlight, project.Title),
			Text(ToneText, project.Description),
			Join(S(ToneSubheading, "Tech: "), S(ToneLink, strings.Join(project.Technologies, " · "))),
		)
		if project.Demo != "" {
			lines = append(lines, Join(S(ToneMuted, "Demo: "), S(ToneLink, project.Demo)))
		}
		if project.Repo != "" {
			lines = append(lines, Join(S(ToneMuted, "Code: "), S(ToneLink, project.Repo)))
		}
	}
	return Block{Title: "Project Showcase", Framed: true, Lines: lines}
}

func SkillsVisual(r *Resume) Block {
	lines := []Line{Bold(ToneHeading, "📊 Skills Visualization")}
	for _, category := range r.SkillLevels {
		lines = append(lines, Blank(), Text(ToneSubheading, titleCase(category.Category)))
		lines = append(lines, bars(skillLabels(category.Skills), skillValues(category.Skills))...)
	}
	return Block{Lines: lines}
}

// Dashboard renders the dashboard datasets as bar charts.
func Dashboard(r *Resume) Block {
	perf := r.Dashboard.Performance
	lines := []Line{Bold(ToneHeading, "📈 Dashboard"), Blank(), Text(ToneSubheading, perf.Title)}
	lines = append(lines, bars(perf.Labels, perf.Values)...)
	for _, chart := range r.Dashboard.Charts {
		lines = append(lines, Blank(), Text(ToneSubheading, chart.Title))
		lines = append(lines, bars(chart.Labels, chart.Values)...)
	}
	return Block{Lines: lines}
}

// LinkedInCover renders the cover card: a terminal window preview with the
// banner and a short command listing.
func LinkedInCover(r *Resume, entries []HelpEntry) Block {
	lines := []Line{Join(S(ToneError, "● "), S(ToneHighlight, "● "), S(ToneSuccess, "● "), S(ToneMuted, r.Profile.Handle+": ~/interactive-resume"))}
	lines = append(lines, Blank())
	for _, row := range strings.Split(r.Banner, "\n") {
		lines = append(lines, Text(ToneBanner, row))
	}
	lines = append(lines,
		Text(ToneMuted, r.Profile.Headline),
		Text(ToneDim, strings.Join(r.Profile.Roles, " • ")),
		Blank(),
		Join(S(TonePrompt, "➜ "), S(ToneCommand, "help")),
		Bold(ToneHeading, "🚀 Available Commands"),
	)
	rows := make([][]string, 0, 5)
	for _, entry := range entries {
		rows = append(rows, []string{"• " + entry.Name, entry.Summary})
		if len(rows) == 5 {
			break
		}
	}
	for _, cells := range table.Columns(rows) {
		lines = append(lines, Join(S(ToneSuccess, cells[0]), S(ToneText, "  "+cells[1])))
	}
	lines = append(lines, Blank(), Text(ToneLink, r.Profile.Website))
	return Block{Title: "LinkedIn Cover", Framed: true, Lines: lines}
}

// Echo is the prompt line repeated above a command's output.
func Echo(line string) Block {
	return Block{Kind: KindEcho, Lines: []Line{Join(S(TonePrompt, "➜ "), S(ToneCommand, line))}}
}

func Info(text string) Block {
	return Block{Kind: KindInfo, Reveal: true, Lines: splitLines(ToneInfo, text)}
}

func Error(text string) Block {
	return Block{Kind: KindError, Reveal: true, Lines: splitLines(ToneError, text)}
}

// Possible lists completion candidates.
func Possible(matches []string) Block {
	return Block{Kind: KindInfo, Lines: []Line{
		Text(ToneInfo, "Possible commands:"),
		Text(ToneCommand, strings.Join(matches, "  ")),
	}}
}

// Unknown reports an unrecognised command with an optional suggestion.
func Unknown(name, suggestion string) Block {
	b := Error(fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", name))
	if suggestion != "" {
		b.Lines = append(b.Lines, Join(S(ToneMuted, "Did you mean "), S(ToneCommand, "'"+suggestion+"'"), S(ToneMuted, "?")))
	}
	return b
}

func Weather(f Forecast) Block {
	title := f.Name
	if f.Country != "" {
		title += ", " + f.Country
	}
	return Block{Lines: []Line{
		Bold(ToneHeading, "🌤️ Weather for "+title),
		Join(Span{Text: fmt.Sprintf("%.0f°C", math.Round(f.Temp)), Tone: ToneHighlight, Bold: true}, S(ToneMuted, "  "+f.Condition)),
		Text(ToneText, fmt.Sprintf("Feels like: %.0f°C", math.Round(f.FeelsLike))),
		Text(ToneText, fmt.Sprintf("Humidity: %d%%", f.Humidity)),
		Text(ToneText, fmt.Sprintf("Wind: %.0f km/h", math.Round(f.WindKmh))),
	}}
}

// Calculation shows the expression as typed and its result.
func Calculation(expr, result string) Block {
	return Block{Lines: []Line{
		Text(ToneLink, expr),
		Text(ToneSuccess, "= "+result),
	}}
}

// Themes lists the available themes and marks the current one.
func Themes(current string, names []string) Block {
	lines := []Line{Text(ToneSubheading, "Themes:")}
	for _, name := range names {
		marker := "  "
		tone := ToneText
		if name == current {
			marker = "▸ "
			tone = ToneHighlight
		}
		lines = append(lines, Join(S(ToneAccent, marker), S(tone, name)))
	}
	lines = append(lines, Join(S(ToneMuted, "Usage: "), S(ToneCommand, "theme [name]")))
	return Block{Lines: lines}
}

// SnakeIntro is printed when the game starts.
func SnakeIntro() Block {
	return Block{Kind: KindInfo, Lines: []Line{
		Text(ToneInfo, "Snake Game: Use arrow keys to move."),
		Text(ToneInfo, "Press P to pause, SPACE to restart, ESC to exit."),
	}}
}

func bars(labels []string, values []int) []Line {
	rows := make([][]string, len(labels))
	for i, label := range labels {
		rows[i] = []string{label}
	}
	padded := table.Columns(rows)
	lines := make([]Line, 0, len(labels))
	for i := range labels {
		v := 0
		if i < len(values) {
			v = values[i]
		}
		lines = append(lines, Line{Bar: &Bar{Label: padded[i][0], Percent: v}})
	}
	return lines
}

func skillLabels(skills []SkillLevel) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Name
	}
	return out
}

func skillValues(skills []SkillLevel) []int {
	out := make([]int, len(skills))
	for i, s := range skills {
		out[i] = s.Level
	}
	return out
}

func splitLines(tone Tone, text string) []Line {
	rows := strings.Split(text, "\n")
	lines := make([]Line, len(rows))
	for i, row := range rows {
		lines[i] = Text(tone, row)
	}
	return lines
}

func trimTrailingBlank(lines []Line) []Line {
	for len(lines) > 0 && len(lines[len(lines)-1].Spans) == 0 && lines[len(lines)-1].Bar == nil {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func center(text string, width int) string {
	pad := (width - len([]rune(text))) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
