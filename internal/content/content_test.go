package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultResumeParses(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Marjo Ballabani", r.Profile.Name)
	assert.Len(t, r.Experience, 4)
	assert.Contains(t, r.Skills, "Kubernetes")
	assert.Equal(t, []int{65, 78, 82, 87, 91, 95}, r.Dashboard.Performance.Values)
}

func TestAboutAndDashboardBuildersUseResumeData(t *testing.T) {
	r := &Resume{
		About: AboutData{Summary: []string{"Builds platforms."}},
		Dashboard: DashboardData{
			Performance: Series{Title: "Throughput", Labels: []string{"Q1"}, Values: []int{70}},
		},
	}
	assert.Contains(t, PlainText(About(r)), "Builds platforms.")
	assert.Contains(t, PlainText(Dashboard(r)), "Throughput")
}

func TestParseRejectsMismatchedSeries(t *testing.T) {
	_, err := Parse([]byte(`
profile: {name: x}
banner: x
dashboard:
  performance: {title: p, labels: [a, b], values: [1]}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 labels and 1 values")
}

func TestWelcomeIncludesHints(t *testing.T) {
	text := PlainText(Welcome(MustDefault()))
	assert.Contains(t, text, "Interactive Terminal Resume")
	assert.Contains(t, text, "Software Engineer • Cloud Architect • Tech Lead")
	assert.Contains(t, text, "Type 'help' to see available commands")
	assert.Contains(t, text, "Press 'tab' to auto-complete commands")
}

func TestHelpGroupsCommands(t *testing.T) {
	block := Help([]HelpEntry{
		{Name: "help", Summary: "Show this help message", Group: GroupMain},
		{Name: "weather", Summary: "Check weather for a location", Group: GroupUtility},
	}, []Shortcut{{Keys: "Tab", Description: "Auto-complete commands"}})
	lines := PlainLines(block)
	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "Main Commands:")
	assert.Contains(t, text, "Utility Commands:")
	assert.Contains(t, text, "• help  Show this help message")
	assert.Contains(t, text, "• Tab  Auto-complete commands")
	assert.Less(t, strings.Index(text, "help"), strings.Index(text, "weather"))
}

func TestUnknownWithSuggestion(t *testing.T) {
	block := Unknown("hlep", "help")
	require.Len(t, block.Lines, 2)
	assert.Equal(t, KindError, block.Kind)
	assert.Equal(t, "Command not found: hlep. Type 'help' for available commands.", block.Lines[0].Plain())
	assert.Equal(t, "Did you mean 'help'?", block.Lines[1].Plain())
}

func TestWeatherRoundsValues(t *testing.T) {
	text := PlainText(Weather(Forecast{
		Name: "Berlin", Country: "DE", Temp: 12.6, FeelsLike: 10.2,
		Humidity: 71, Condition: "Clouds", WindKmh: 14.76,
	}))
	assert.Contains(t, text, "Weather for Berlin, DE")
	assert.Contains(t, text, "13°C  Clouds")
	assert.Contains(t, text, "Feels like: 10°C")
	assert.Contains(t, text, "Humidity: 71%")
	assert.Contains(t, text, "Wind: 15 km/h")
}

func TestBlockTruncateByRunes(t *testing.T) {
	block := Block{Lines: []Line{
		Join(S(ToneText, "ab"), S(ToneMuted, "cd")),
		Text(ToneText, "ef"),
	}}
	assert.Equal(t, 6, block.RuneCount())
	cut := block.Truncate(3)
	require.Len(t, cut.Lines, 1)
	assert.Equal(t, "abc", cut.Lines[0].Plain())
	assert.Equal(t, "abcd\nef", PlainText(block.Truncate(10)))
}

func TestSkillsVisualUsesBars(t *testing.T) {
	block := SkillsVisual(MustDefault())
	count := 0
	for _, line := range block.Lines {
		if line.Bar != nil {
			count++
		}
	}
	assert.Equal(t, 10, count)
	assert.Contains(t, PlainText(block), "95%")
}
