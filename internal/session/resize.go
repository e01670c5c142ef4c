package session

import (
	"github.com/atomicstack/termfolio/internal/layout"
	"github.com/atomicstack/termfolio/internal/logging/events"
)

// Gesture is an in-progress handle drag. Sizes are recomputed from the
// starting sizes on every drag so the pane tracks the pointer exactly.
type Gesture struct {
	Handle  layout.Handle
	X, Y    int
	Initial []float64
}

// BeginResize starts dragging h from (x, y).
func (s *Session) BeginResize(h layout.Handle, x, y int) error {
	if s.resize != nil {
		return ErrResizeInProgress
	}
	s.resize = &Gesture{Handle: h, X: x, Y: y, Initial: layout.SizesOf(h.Container)}
	events.Layout.ResizeStart(h.Index, h.Orientation().String())
	return nil
}

// DragResize applies the cumulative pointer movement since BeginResize.
func (s *Session) DragResize(x, y int) bool {
	g := s.resize
	if g == nil {
		return false
	}
	delta := x - g.X
	if g.Handle.Orientation() == layout.Vertical {
		delta = y - g.Y
	}
	c := g.Handle.Container
	before := layout.SizesOf(c)
	layout.SetSizes(c, g.Initial)
	s.tree.Resize(c, g.Handle.Index, float64(delta), float64(g.Handle.Extent))
	after := layout.SizesOf(c)
	changed := !equalSizes(before, after)
	if changed {
		events.Layout.Resize(g.Handle.Index, float64(delta), after)
	}
	return changed
}

// EndResize releases the gesture.
func (s *Session) EndResize() bool {
	if s.resize == nil {
		return false
	}
	s.resize = nil
	events.Layout.ResizeEnd()
	return true
}

// Gesture returns the drag in progress, or nil.
func (s *Session) Gesture() *Gesture {
	return s.resize
}

func (s *Session) Resizing() bool {
	return s.resize != nil
}

func (s *Session) cancelResize() {
	if s.resize != nil {
		s.EndResize()
	}
}

// ResizeActive moves an edge of the active pane along o by delta cells,
// positive towards the right or bottom. The trailing edge moves unless the
// pane is last in its split, in which case the leading edge does. extents
// gives the usable length of each split, as produced by layout.Tree.Arrange.
func (s *Session) ResizeActive(o layout.Orientation, delta int, extents map[*layout.Node]int) bool {
	container, idx := s.tree.Enclosing(s.active, o)
	if container == nil {
		return false
	}
	handle := idx + 1
	if handle == len(container.Children) {
		handle = idx
	}
	return s.tree.Resize(container, handle, float64(delta), float64(extents[container]))
}

func equalSizes(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
