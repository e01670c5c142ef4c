package state

import "github.com/atomicstack/termfolio/internal/content"

// Reveal tracks a block being typed out one rune at a time.
type Reveal struct {
	Block int
	Shown int
	Total int
	Seq   uint64
}

// RevealToken identifies a reveal across ticks.
type RevealToken struct {
	Generation uint64
	Seq        uint64
}

// StartReveal begins typing out the block at idx. A reveal already in
// progress completes immediately. ok is false when the block has nothing to
// reveal.
func (p *Pane) StartReveal(idx int) (RevealToken, bool) {
	p.Reveal = nil
	if idx < 0 || idx >= len(p.Blocks) {
		return RevealToken{}, false
	}
	total := p.Blocks[idx].RuneCount()
	if total == 0 {
		return RevealToken{}, false
	}
	p.revealSeq++
	p.Reveal = &Reveal{Block: idx, Total: total, Seq: p.revealSeq}
	return RevealToken{Generation: p.Generation, Seq: p.revealSeq}, true
}

// AdvanceReveal shows one more rune. It reports whether the token is still
// live and, if so, whether more runes remain.
func (p *Pane) AdvanceReveal(tok RevealToken) (live, more bool) {
	if p.Reveal == nil || tok.Generation != p.Generation || tok.Seq != p.Reveal.Seq {
		return false, false
	}
	p.Reveal.Shown++
	if p.Reveal.Shown >= p.Reveal.Total {
		p.Reveal = nil
		return true, false
	}
	return true, true
}

// Visible returns the scrollback as it should currently be shown, with any
// in-progress reveal truncated.
func (p *Pane) Visible() []content.Block {
	if p.Reveal == nil {
		return p.Blocks
	}
	out := make([]content.Block, len(p.Blocks))
	copy(out, p.Blocks)
	idx := p.Reveal.Block
	if idx < len(out) {
		out[idx] = out[idx].Truncate(p.Reveal.Shown)
	}
	return out
}
