package state

// maxOffset is the offset that pins the last line to the bottom of a
// viewport of height lines.
func maxOffset(total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	return total - height
}

// ScrollToBottom pins the view to the last line. It only moves when the
// content overflows and the view is not already pinned, and reports whether
// it moved.
func (p *Pane) ScrollToBottom(total, height int) bool {
	bottom := maxOffset(total, height)
	if p.Offset == bottom {
		return false
	}
	p.Offset = bottom
	return true
}

// Scroll moves the view by delta lines, clamped to the content.
func (p *Pane) Scroll(delta, total, height int) bool {
	old := p.Offset
	p.Offset += delta
	if bottom := maxOffset(total, height); p.Offset > bottom {
		p.Offset = bottom
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p.Offset != old
}

// ClampOffset keeps the offset valid after the viewport changes size.
func (p *Pane) ClampOffset(total, height int) {
	if bottom := maxOffset(total, height); p.Offset > bottom {
		p.Offset = bottom
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// AtBottom reports whether the last line is visible.
func (p *Pane) AtBottom(total, height int) bool {
	return p.Offset >= maxOffset(total, height)
}
