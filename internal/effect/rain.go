package effect

import (
	"math/rand"
	"time"
)

const (
	// RainInterval is the repaint period of the matrix rain.
	RainInterval = 50 * time.Millisecond

	rainGlyphs    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789$+-*/=%\"'#&_(),.;:?!\\|{}<>[]^~"
	restartChance = 0.025
	// maxStagger is how far above the top a new column's drop may start.
	maxStagger = 20
	// fadeTicks is how many repaints a glyph survives before it disappears.
	fadeTicks = 12
)

// Cell is one glyph of the rain. Age counts repaints since it was drawn.
type Cell struct {
	Glyph rune
	Age   int
}

// Empty reports whether nothing is drawn in the cell.
func (c Cell) Empty() bool {
	return c.Glyph == 0
}

// Brightness is 1 for a fresh glyph, falling towards 0 as it fades.
func (c Cell) Brightness() float64 {
	if c.Empty() {
		return 0
	}
	return 1 - float64(c.Age)/float64(fadeTicks+1)
}

// Rain is the falling glyph animation. Each column has a drop position that
// advances one row per tick; once past the bottom, a column restarts at the
// top with a small probability per tick, so columns drift out of phase.
type Rain struct {
	cols, rows int
	drops      []int
	cells      [][]Cell
	glyphs     []rune
	rng        *rand.Rand
	stopped    bool
}

// NewRain sizes the rain to cols x rows. A nil rng is seeded from the clock.
func NewRain(cols, rows int, rng *rand.Rand) *Rain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Rain{glyphs: []rune(rainGlyphs), rng: rng}
	r.Resize(cols, rows)
	return r
}

// Resize keeps existing drops for surviving columns.
func (r *Rain) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	drops := make([]int, cols)
	copy(drops, r.drops)
	for x := len(r.drops); x < cols; x++ {
		drops[x] = -1 - r.rng.Intn(maxStagger)
	}
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
		if y < len(r.cells) {
			copy(cells[y], r.cells[y])
		}
	}
	r.cols, r.rows = cols, rows
	r.drops = drops
	r.cells = cells
}

// Tick fades every glyph, draws one new glyph per column at its drop
// position and advances the drops. Drops above the top draw nothing.
func (r *Rain) Tick() {
	if r.stopped {
		return
	}
	for y := range r.cells {
		for x := range r.cells[y] {
			c := &r.cells[y][x]
			if c.Empty() {
				continue
			}
			c.Age++
			if c.Age > fadeTicks {
				*c = Cell{}
			}
		}
	}
	for x := range r.drops {
		y := r.drops[x]
		if y >= 0 && y < r.rows {
			r.cells[y][x] = Cell{Glyph: r.glyphs[r.rng.Intn(len(r.glyphs))]}
		}
		if y >= r.rows && r.rng.Float64() > 1-restartChance {
			r.drops[x] = 0
			continue
		}
		r.drops[x]++
	}
}

func (r *Rain) Stop() {
	r.stopped = true
}

func (r *Rain) Stopped() bool {
	return r.stopped
}

// Size returns columns and rows.
func (r *Rain) Size() (int, int) {
	return r.cols, r.rows
}

// Drops exposes the drop row of every column.
func (r *Rain) Drops() []int {
	return append([]int(nil), r.drops...)
}

// Rows returns the current frame, row-major.
func (r *Rain) Rows() [][]Cell {
	return r.cells
}
