package effect

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTask struct {
	ticks   int
	stopped bool
}

func (f *fakeTask) Tick() { f.ticks++ }
func (f *fakeTask) Stop() { f.stopped = true }

func TestSlotStartTwiceLeavesOneLiveLoop(t *testing.T) {
	var slot Slot
	first := &fakeTask{}
	second := &fakeTask{}

	g1 := slot.Start(1, first)
	g2 := slot.Start(1, second)

	assert.True(t, first.stopped, "previous task must be stopped")
	assert.False(t, second.stopped)
	assert.False(t, slot.Accept(g1), "stale generation still accepted")
	assert.True(t, slot.Accept(g2))
	assert.Equal(t, Task(second), slot.Task())
	assert.Equal(t, 1, slot.Owner())
}

func TestSlotStop(t *testing.T) {
	var slot Slot
	assert.False(t, slot.Stop())

	task := &fakeTask{}
	gen := slot.Start(3, task)
	require.True(t, slot.Active())
	assert.True(t, slot.Stop())
	assert.True(t, task.stopped)
	assert.False(t, slot.Accept(gen))
	assert.False(t, slot.Active())
	assert.Equal(t, 0, slot.Owner())
}

func TestRainDrawsOneGlyphPerColumn(t *testing.T) {
	r := NewRain(8, 5, rand.New(rand.NewSource(1)))
	for _, d := range r.Drops() {
		assert.Less(t, d, 0, "new columns start above the top")
		assert.GreaterOrEqual(t, d, -maxStagger)
	}
	for x := range r.drops {
		r.drops[x] = 0
	}
	r.Tick()

	frame := r.Rows()
	for x := 0; x < 8; x++ {
		assert.False(t, frame[0][x].Empty(), "column %d", x)
		assert.Equal(t, 0, frame[0][x].Age)
	}
	for x := 0; x < 8; x++ {
		assert.True(t, frame[1][x].Empty())
	}
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1}, r.Drops())

	r.Tick()
	assert.Equal(t, 1, r.Rows()[0][0].Age)
	assert.False(t, r.Rows()[1][0].Empty())
}

func TestRainFadesAndRestarts(t *testing.T) {
	r := NewRain(4, 3, rand.New(rand.NewSource(7)))
	restarted := false
	for i := 0; i < 2000; i++ {
		r.Tick()
		for _, d := range r.Drops() {
			if i > 2*maxStagger && d == 1 {
				restarted = true
			}
		}
	}
	assert.True(t, restarted, "drops never restarted")

	r2 := NewRain(1, 1, rand.New(rand.NewSource(3)))
	r2.drops[0] = 0
	r2.Tick()
	require.False(t, r2.Rows()[0][0].Empty())
	for i := 0; i < fadeTicks+1; i++ {
		r2.drops[0] = 5
		r2.Tick()
	}
	assert.True(t, r2.Rows()[0][0].Empty(), "glyph should have faded")
}

func TestRainStopAndResize(t *testing.T) {
	r := NewRain(3, 3, rand.New(rand.NewSource(1)))
	r.drops = []int{0, 0, 0}
	r.Tick()
	r.Resize(5, 2)
	cols, rows := r.Size()
	assert.Equal(t, 5, cols)
	assert.Equal(t, 2, rows)
	assert.Len(t, r.Drops(), 5)
	assert.Equal(t, 1, r.Drops()[0])
	assert.Less(t, r.Drops()[4], 0)

	r.Stop()
	before := r.Drops()
	r.Tick()
	assert.Equal(t, before, r.Drops())
}

func TestSnakeStartsHeadingRight(t *testing.T) {
	s := NewSnake(rand.New(rand.NewSource(1)))
	assert.Equal(t, []Point{{5, 5}, {4, 5}, {3, 5}}, s.Body())
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, 100*time.Millisecond, s.Interval())
	for _, p := range s.Body() {
		assert.NotEqual(t, p, s.Food())
	}

	s.food = Point{0, 0}
	s.Tick()
	assert.Equal(t, []Point{{6, 5}, {5, 5}, {4, 5}}, s.Body())
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(rand.New(rand.NewSource(1)))
	s.food = Point{0, 0}
	assert.False(t, s.Turn(Left))
	assert.True(t, s.Turn(Up))
	// Left is still a reversal until the Up turn is applied.
	assert.False(t, s.Turn(Left))
	s.Tick()
	assert.Equal(t, Point{5, 4}, s.Body()[0])
	assert.True(t, s.Turn(Left))
}

func TestSnakeWrapsAtEdges(t *testing.T) {
	s := NewSnake(rand.New(rand.NewSource(1)))
	s.food = Point{19, 14}
	s.body = []Point{{19, 2}, {18, 2}, {17, 2}}
	s.Tick()
	assert.Equal(t, Point{0, 2}, s.Body()[0])

	s.Turn(Up)
	s.body = []Point{{4, 0}, {4, 1}, {4, 2}}
	s.dir = Up
	s.Tick()
	assert.Equal(t, Point{4, 14}, s.Body()[0])
}

func TestSnakeEatsAndSpeedsUp(t *testing.T) {
	s := NewSnake(rand.New(rand.NewSource(1)))
	s.food = Point{6, 5}
	s.Tick()
	assert.Equal(t, 10, s.Score())
	assert.Len(t, s.Body(), 4)
	assert.InDelta(t, 10.5, s.rate, 1e-9)
	for _, p := range s.Body() {
		assert.NotEqual(t, p, s.Food())
	}

	s.rate = maxRate
	s.food = Point{7, 5}
	s.Tick()
	assert.Equal(t, 20, s.Score())
	assert.InDelta(t, maxRate, s.rate, 1e-9)
	assert.Equal(t, 50*time.Millisecond, s.Interval())
}

func TestSnakeSelfCollisionEndsGame(t *testing.T) {
	s := NewSnake(rand.New(rand.NewSource(1)))
	s.food = Point{0, 0}
	s.body = []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}, {4, 5}}
	s.dir, s.next = Up, Down
	s.Tick()
	assert.Equal(t, GameOver, s.State())

	assert.False(t, s.TogglePause())
	assert.False(t, s.Turn(Left))
	assert.True(t, s.Restart())
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Len(t, s.Body(), 3)
}

func TestSnakePause(t *testing.T) {
	s := NewSnake(rand.New(rand.NewSource(1)))
	s.food = Point{0, 0}
	assert.True(t, s.TogglePause())
	assert.Equal(t, Paused, s.State())
	before := s.Body()
	s.Tick()
	assert.Equal(t, before, s.Body())
	assert.False(t, s.Restart())
	assert.True(t, s.TogglePause())
	s.Tick()
	assert.NotEqual(t, before, s.Body())
}
