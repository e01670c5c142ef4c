package state

import "unicode"

// SetInput replaces the input line and moves the cursor to its end.
func (p *Pane) SetInput(text string) {
	p.Input = text
	p.InputCursor = len([]rune(text))
}

// InputCursorPos returns the rune offset of the input cursor.
func (p *Pane) InputCursorPos() int {
	runes := []rune(p.Input)
	if p.InputCursor < 0 {
		return 0
	}
	if p.InputCursor > len(runes) {
		return len(runes)
	}
	return p.InputCursor
}

// InsertText inserts text at the cursor.
func (p *Pane) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Input)
	pos := p.InputCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.Input = string(updated)
	p.InputCursor = pos + len(insert)
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (p *Pane) DeleteRuneBackward() bool {
	runes := []rune(p.Input)
	pos := p.InputCursorPos()
	if pos == 0 {
		return false
	}
	p.Input = string(append(runes[:pos-1], runes[pos:]...))
	p.InputCursor = pos - 1
	return true
}

// DeleteRuneForward deletes the rune under the cursor.
func (p *Pane) DeleteRuneForward() bool {
	runes := []rune(p.Input)
	pos := p.InputCursorPos()
	if pos >= len(runes) {
		return false
	}
	p.Input = string(append(runes[:pos], runes[pos+1:]...))
	p.InputCursor = pos
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (p *Pane) DeleteWordBackward() bool {
	runes := []rune(p.Input)
	pos := p.InputCursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	p.Input = string(append(runes[:i], runes[pos:]...))
	p.InputCursor = i
	return true
}

// ClearLine empties the input.
func (p *Pane) ClearLine() bool {
	if p.Input == "" {
		return false
	}
	p.SetInput("")
	return true
}

func (p *Pane) MoveCursorStart() bool {
	if p.InputCursorPos() == 0 {
		return false
	}
	p.InputCursor = 0
	return true
}

func (p *Pane) MoveCursorEnd() bool {
	end := len([]rune(p.Input))
	if p.InputCursorPos() == end {
		return false
	}
	p.InputCursor = end
	return true
}

// MoveCursorWordBackward moves to the start of the previous word.
func (p *Pane) MoveCursorWordBackward() bool {
	pos := p.InputCursorPos()
	i := wordStart([]rune(p.Input), pos)
	if i == pos {
		return false
	}
	p.InputCursor = i
	return true
}

// MoveCursorWordForward moves past the next word and its trailing space.
func (p *Pane) MoveCursorWordForward() bool {
	runes := []rune(p.Input)
	pos := p.InputCursorPos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.InputCursor = i
	return true
}

func (p *Pane) MoveCursorRuneBackward() bool {
	if p.InputCursorPos() == 0 {
		return false
	}
	p.InputCursor = p.InputCursorPos() - 1
	return true
}

func (p *Pane) MoveCursorRuneForward() bool {
	pos := p.InputCursorPos()
	if pos >= len([]rune(p.Input)) {
		return false
	}
	p.InputCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
