package theme

import (
	"testing"

	"github.com/atomicstack/termfolio/internal/content"
)

func TestNamesDefaultFirst(t *testing.T) {
	names := Names()
	want := []string{"default", "dracula", "nord", "solarized"}
	if len(names) != len(want) {
		t.Fatalf("expected %d themes, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	s, ok := Get(" Dracula ")
	if !ok {
		t.Fatalf("expected dracula to resolve")
	}
	if s.Name != "dracula" || s.Palette.Primary != "#50fa7b" {
		t.Fatalf("unexpected theme %q/%s", s.Name, s.Palette.Primary)
	}
	if _, ok := Get("neon"); ok {
		t.Fatalf("expected unknown theme to fail")
	}
	if Resolve("neon").Name != DefaultName {
		t.Fatalf("expected fallback to default")
	}
	if !Valid("NORD") || Valid("") {
		t.Fatalf("unexpected validity results")
	}
}

func TestMatrixColours(t *testing.T) {
	want := map[string]string{
		"default":   "#00ff00",
		"dracula":   "#50fa7b",
		"solarized": "#859900",
		"nord":      "#a3be8c",
	}
	for name, colour := range want {
		s, _ := Get(name)
		if string(s.Palette.Primary) != colour {
			t.Fatalf("theme %s: expected %s, got %s", name, colour, s.Palette.Primary)
		}
	}
}

func TestEveryToneStyled(t *testing.T) {
	s := Default()
	for tone := content.ToneText; tone <= content.TonePrompt; tone++ {
		if _, ok := s.Tones[tone]; !ok {
			t.Fatalf("tone %d has no style", tone)
		}
	}
	line := content.Join(content.S(content.ToneCommand, "help"), content.S(content.ToneText, " me"))
	if got := s.Line(line); got == "" {
		t.Fatalf("expected rendered line")
	}
}
