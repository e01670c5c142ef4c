package effect

import (
	"math/rand"
	"time"
)

const (
	GridWidth  = 20
	GridHeight = 15

	baseRate  = 10.0
	maxRate   = 20.0
	rateStep  = 0.5
	foodScore = 10
)

type Point struct {
	X, Y int
}

type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) delta() Point {
	switch d {
	case Right:
		return Point{X: 1}
	case Left:
		return Point{X: -1}
	case Up:
		return Point{Y: -1}
	default:
		return Point{Y: 1}
	}
}

type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "playing"
	}
}

// Snake is the mini game. The board wraps at every edge; the only way to
// lose is running into yourself.
type Snake struct {
	width, height int
	body          []Point
	dir, next     Direction
	food          Point
	score         int
	rate          float64
	state         State
	rng           *rand.Rand
	stopped       bool
}

// NewSnake starts a game on the standard board. A nil rng is seeded from the
// clock.
func NewSnake(rng *rand.Rand) *Snake {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Snake{width: GridWidth, height: GridHeight, rng: rng}
	s.reset()
	return s
}

func (s *Snake) reset() {
	s.body = []Point{{5, 5}, {4, 5}, {3, 5}}
	s.dir, s.next = Right, Right
	s.score = 0
	s.rate = baseRate
	s.state = Playing
	s.placeFood()
}

// Tick applies the buffered direction and moves one cell.
func (s *Snake) Tick() {
	if s.stopped || s.state != Playing {
		return
	}
	s.dir = s.next
	head := s.body[0]
	d := s.dir.delta()
	head = Point{X: wrap(head.X+d.X, s.width), Y: wrap(head.Y+d.Y, s.height)}

	body := make([]Point, 0, len(s.body)+1)
	body = append(body, head)
	body = append(body, s.body...)
	ate := head == s.food
	if !ate {
		body = body[:len(body)-1]
	}
	s.body = body
	for _, p := range s.body[1:] {
		if p == head {
			s.state = GameOver
			return
		}
	}
	if ate {
		s.score += foodScore
		if s.rate < maxRate {
			s.rate += rateStep
		}
		s.placeFood()
	}
}

// Turn buffers d for the next tick. Reversing onto the body is refused.
func (s *Snake) Turn(d Direction) bool {
	if s.state != Playing || d == s.dir.opposite() {
		return false
	}
	s.next = d
	return true
}

// TogglePause switches between Playing and Paused.
func (s *Snake) TogglePause() bool {
	switch s.state {
	case Playing:
		s.state = Paused
	case Paused:
		s.state = Playing
	default:
		return false
	}
	return true
}

// Restart begins a new game after a game over.
func (s *Snake) Restart() bool {
	if s.state != GameOver {
		return false
	}
	s.reset()
	return true
}

func (s *Snake) Stop() {
	s.stopped = true
}

func (s *Snake) Stopped() bool {
	return s.stopped
}

// Interval is the current tick period.
func (s *Snake) Interval() time.Duration {
	return time.Duration(float64(time.Second) / s.rate)
}

func (s *Snake) State() State {
	return s.state
}

func (s *Snake) Score() int {
	return s.score
}

func (s *Snake) Body() []Point {
	return append([]Point(nil), s.body...)
}

func (s *Snake) Food() Point {
	return s.food
}

func (s *Snake) Size() (int, int) {
	return s.width, s.height
}

func (s *Snake) placeFood() {
	occupied := make(map[Point]struct{}, len(s.body))
	for _, p := range s.body {
		occupied[p] = struct{}{}
	}
	free := make([]Point, 0, s.width*s.height-len(s.body))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		s.state = GameOver
		return
	}
	s.food = free[s.rng.Intn(len(free))]
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
