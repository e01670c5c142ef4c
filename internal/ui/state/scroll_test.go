package state

import "testing"

func TestScrollToBottomIsIdempotent(t *testing.T) {
	p := newTestPane()
	if p.ScrollToBottom(5, 10) {
		t.Fatalf("expected no scroll when content fits")
	}
	if !p.ScrollToBottom(30, 10) {
		t.Fatalf("expected scroll when content overflows")
	}
	if p.Offset != 20 {
		t.Fatalf("expected offset 20, got %d", p.Offset)
	}
	if p.ScrollToBottom(30, 10) {
		t.Fatalf("expected no scroll when already pinned")
	}
}

func TestScrollClamps(t *testing.T) {
	p := newTestPane()
	if !p.Scroll(100, 30, 10) || p.Offset != 20 {
		t.Fatalf("expected clamp to 20, got %d", p.Offset)
	}
	if !p.Scroll(-5, 30, 10) || p.Offset != 15 {
		t.Fatalf("expected 15, got %d", p.Offset)
	}
	if p.AtBottom(30, 10) {
		t.Fatalf("expected not at bottom")
	}
	p.Scroll(-100, 30, 10)
	if p.Offset != 0 {
		t.Fatalf("expected clamp to 0, got %d", p.Offset)
	}
	if p.Scroll(-1, 30, 10) {
		t.Fatalf("expected no movement at top")
	}
	p.Offset = 25
	p.ClampOffset(30, 10)
	if p.Offset != 20 {
		t.Fatalf("expected clamp to 20, got %d", p.Offset)
	}
}
