package table

import "testing"

func TestColumnsPadsToWidestCell(t *testing.T) {
	rows := Columns([][]string{
		{"• help", "Show this help message"},
		{"• experience", "Show my work history"},
	})
	if rows[0][0] != "• help      " {
		t.Fatalf("expected padded first cell, got %q", rows[0][0])
	}
	if rows[1][0] != "• experience" {
		t.Fatalf("expected widest cell unchanged, got %q", rows[1][0])
	}
}

func TestColumnsHandlesShortRows(t *testing.T) {
	rows := Columns([][]string{{"a", "bb"}, {"ccc"}})
	if len(rows[1]) != 2 {
		t.Fatalf("expected short row to be filled, got %d cells", len(rows[1]))
	}
	if rows[1][1] != "  " {
		t.Fatalf("expected blank padded cell, got %q", rows[1][1])
	}
}

func TestFormatRightAlignment(t *testing.T) {
	out := Format([][]string{{"x", "1"}, {"yy", "100"}}, []Alignment{AlignLeft, AlignRight})
	if out[0] != "x     1" {
		t.Fatalf("expected right aligned number, got %q", out[0])
	}
	if out[1] != "yy  100" {
		t.Fatalf("expected widest row intact, got %q", out[1])
	}
}
