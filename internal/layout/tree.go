// Package layout arranges panes in a tree of horizontal and vertical splits.
//
// A node is either a leaf holding a pane ID or a split holding two or more
// children with fractional sizes along the split axis. Horizontal splits lay
// children out left to right, vertical splits top to bottom.
package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Orientation is the axis a split lays its children along. Horizontal
// places them side by side; Vertical stacks them.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

var (
	ErrPaneNotFound  = errors.New("layout: pane not found")
	ErrLastPane      = errors.New("layout: cannot close the last pane")
	ErrDuplicatePane = errors.New("layout: pane already present")
)

// Limits are the minimum extents a child may be resized to, per axis.
type Limits struct {
	Horizontal float64
	Vertical   float64
}

// DefaultLimits are expressed in logical units.
var DefaultLimits = Limits{Horizontal: 150, Vertical: 100}

// For returns the limit along the axis of o.
func (l Limits) For(o Orientation) float64 {
	if o == Vertical {
		return l.Vertical
	}
	return l.Horizontal
}

// Node is a leaf (Pane > 0, no children) or a split.
type Node struct {
	Pane        int
	Orientation Orientation
	Children    []*Node
	Sizes       []float64

	parent *Node
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Tree owns the root node. The zero value is not usable; call New.
type Tree struct {
	root   *Node
	limits Limits
}

// New returns a tree holding a single pane.
func New(pane int, limits Limits) *Tree {
	return &Tree{root: &Node{Pane: pane}, limits: limits}
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Limits() Limits {
	return t.limits
}

// Walk visits nodes depth first, parents before children. Returning false
// stops the walk.
func (t *Tree) Walk(fn func(*Node) bool) {
	var visit func(*Node) bool
	visit = func(n *Node) bool {
		if !fn(n) {
			return false
		}
		for _, c := range n.Children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	visit(t.root)
}

// Find returns the leaf holding pane, or nil.
func (t *Tree) Find(pane int) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() && n.Pane == pane {
			found = n
			return false
		}
		return true
	})
	return found
}

// Leaves returns pane IDs in left-to-right, top-to-bottom order.
func (t *Tree) Leaves() []int {
	var out []int
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			out = append(out, n.Pane)
		}
		return true
	})
	return out
}

func (t *Tree) LeafCount() int {
	return len(t.Leaves())
}

// Shape renders the structure, e.g. "H[1,V[2,3]]". Sizes are not included.
func (t *Tree) Shape() string {
	var b strings.Builder
	var write func(*Node)
	write = func(n *Node) {
		if n.IsLeaf() {
			b.WriteString(strconv.Itoa(n.Pane))
			return
		}
		if n.Orientation == Vertical {
			b.WriteString("V[")
		} else {
			b.WriteString("H[")
		}
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			write(c)
		}
		b.WriteByte(']')
	}
	write(t.root)
	return b.String()
}

// Split adds pane next to target. When target's container already splits
// along o, pane joins it as one more child; otherwise target is wrapped in a
// new split with pane as its second child.
func (t *Tree) Split(target int, o Orientation, pane int) error {
	leaf := t.Find(target)
	if leaf == nil {
		return fmt.Errorf("split %d: %w", target, ErrPaneNotFound)
	}
	if t.Find(pane) != nil {
		return fmt.Errorf("split %d: pane %d: %w", target, pane, ErrDuplicatePane)
	}
	added := &Node{Pane: pane}
	parent := leaf.parent
	if parent != nil && parent.Orientation == o {
		parent.appendChild(added)
		return nil
	}
	wrapper := &Node{
		Orientation: o,
		Children:    []*Node{leaf, added},
		Sizes:       []float64{0.5, 0.5},
		parent:      parent,
	}
	if parent == nil {
		t.root = wrapper
	} else {
		parent.Children[parent.indexOf(leaf)] = wrapper
	}
	leaf.parent = wrapper
	added.parent = wrapper
	return nil
}

// Close removes pane and collapses any split left with a single child.
func (t *Tree) Close(pane int) error {
	leaf := t.Find(pane)
	if leaf == nil {
		return fmt.Errorf("close %d: %w", pane, ErrPaneNotFound)
	}
	parent := leaf.parent
	if parent == nil {
		return fmt.Errorf("close %d: %w", pane, ErrLastPane)
	}
	parent.removeChild(parent.indexOf(leaf))
	leaf.parent = nil
	for n := parent; n != nil && len(n.Children) == 1; {
		next := n.parent
		t.promote(n)
		n = next
	}
	return nil
}

func (t *Tree) promote(container *Node) {
	only := container.Children[0]
	grand := container.parent
	only.parent = grand
	if grand == nil {
		t.root = only
	} else {
		grand.Children[grand.indexOf(container)] = only
	}
	container.Children = nil
	container.Sizes = nil
	container.parent = nil
}

// Resize moves handle (the boundary before child index handle) by delta
// along the container axis. extent is the container's usable length in the
// same units as the limits. The child before the handle and the child after
// it trade space, and neither drops below the axis minimum. It reports
// whether any size changed.
func (t *Tree) Resize(container *Node, handle int, delta, extent float64) bool {
	if container == nil || container.IsLeaf() || handle <= 0 || handle >= len(container.Children) || extent <= 0 {
		return false
	}
	floor := t.limits.For(container.Orientation)
	prev := container.Sizes[handle-1] * extent
	next := container.Sizes[handle] * extent
	pair := prev + next
	lo := floor
	hi := pair - floor
	if limit := extent - floor; hi > limit {
		hi = limit
	}
	if hi < lo {
		return false
	}
	want := prev + delta
	if want < lo {
		want = lo
	}
	if want > hi {
		want = hi
	}
	if want == prev {
		return false
	}
	container.Sizes[handle-1] = want / extent
	container.Sizes[handle] = (pair - want) / extent
	return true
}

// SizesOf returns a copy of the container's sizes.
func SizesOf(container *Node) []float64 {
	if container == nil {
		return nil
	}
	return append([]float64(nil), container.Sizes...)
}

// SetSizes restores sizes captured with SizesOf.
func SetSizes(container *Node, sizes []float64) {
	if container == nil || len(sizes) != len(container.Sizes) {
		return
	}
	copy(container.Sizes, sizes)
}

// Enclosing returns the nearest ancestor split along o that contains pane,
// and the index of the child leading to pane.
func (t *Tree) Enclosing(pane int, o Orientation) (*Node, int) {
	n := t.Find(pane)
	for n != nil && n.parent != nil {
		if n.parent.Orientation == o {
			return n.parent, n.parent.indexOf(n)
		}
		n = n.parent
	}
	return nil, -1
}

func (n *Node) appendChild(child *Node) {
	count := float64(len(n.Children) + 1)
	for i := range n.Sizes {
		n.Sizes[i] *= (count - 1) / count
	}
	n.Children = append(n.Children, child)
	n.Sizes = append(n.Sizes, 1/count)
	child.parent = n
}

func (n *Node) removeChild(idx int) {
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	n.Sizes = append(n.Sizes[:idx], n.Sizes[idx+1:]...)
	total := 0.0
	for _, s := range n.Sizes {
		total += s
	}
	if total <= 0 {
		for i := range n.Sizes {
			n.Sizes[i] = 1 / float64(len(n.Sizes))
		}
		return
	}
	for i := range n.Sizes {
		n.Sizes[i] /= total
	}
}
