package state

import (
	"testing"

	"github.com/atomicstack/termfolio/internal/content"
)

func TestRevealAdvancesToCompletion(t *testing.T) {
	p := newTestPane()
	idx := p.Append(content.Info("abc"))
	tok, ok := p.StartReveal(idx)
	if !ok {
		t.Fatal("expected reveal to start")
	}
	if got := content.PlainText(p.Visible()[idx]); got != "" {
		t.Fatalf("expected nothing shown yet, got %q", got)
	}
	live, more := p.AdvanceReveal(tok)
	if !live || !more {
		t.Fatalf("expected live reveal with more to show")
	}
	if got := content.PlainText(p.Visible()[idx]); got != "a" {
		t.Fatalf("expected %q, got %q", "a", got)
	}
	p.AdvanceReveal(tok)
	live, more = p.AdvanceReveal(tok)
	if !live || more {
		t.Fatalf("expected final rune to finish reveal")
	}
	if p.Reveal != nil {
		t.Fatalf("expected reveal cleared")
	}
	if got := content.PlainText(p.Visible()[idx]); got != "abc" {
		t.Fatalf("expected full text, got %q", got)
	}
}

func TestRevealCancelledByClear(t *testing.T) {
	p := newTestPane()
	idx := p.Append(content.Info("hello"))
	tok, _ := p.StartReveal(idx)
	p.Clear(content.Block{Kind: content.KindBanner})
	if live, _ := p.AdvanceReveal(tok); live {
		t.Fatalf("expected stale token after clear")
	}
}

func TestNewRevealSupersedesOld(t *testing.T) {
	p := newTestPane()
	first := p.Append(content.Info("first"))
	old, _ := p.StartReveal(first)
	second := p.Append(content.Info("second"))
	tok, ok := p.StartReveal(second)
	if !ok {
		t.Fatal("expected second reveal to start")
	}
	if live, _ := p.AdvanceReveal(old); live {
		t.Fatalf("expected superseded token to be stale")
	}
	if got := content.PlainText(p.Visible()[first]); got != "first" {
		t.Fatalf("expected first block shown in full, got %q", got)
	}
	if live, _ := p.AdvanceReveal(tok); !live {
		t.Fatalf("expected current token to be live")
	}
}
