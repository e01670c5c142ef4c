package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Columns pads every cell to the widest entry of its column and returns the
// padded cells, so callers can style columns independently. Short rows are
// treated as having empty trailing cells.
func Columns(rows [][]string, alignments ...Alignment) [][]string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(widths))
		for c := range widths {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			cells[c] = pad(cell, widths[c], alignmentFor(alignments, c))
		}
		out[i] = cells
	}
	return out
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	padded := Columns(rows, alignments...)
	out := make([]string, len(padded))
	for i, cells := range padded {
		out[i] = strings.TrimRight(strings.Join(cells, "  "), " ")
	}
	return out
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func alignmentFor(alignments []Alignment, c int) Alignment {
	if c < len(alignments) {
		return alignments[c]
	}
	return AlignLeft
}

func pad(cell string, width int, align Alignment) string {
	gap := width - cellWidth(cell)
	if gap <= 0 {
		return cell
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}
