package layout

import "math"

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Handle is the one-cell separator before child Index of Container.
type Handle struct {
	Container *Node
	Index     int
	Rect      Rect
	// Extent is the container's length along its axis minus separators.
	Extent int
}

// Orientation of the container the handle belongs to.
func (h Handle) Orientation() Orientation {
	return h.Container.Orientation
}

// Arrangement maps a tree onto a screen area.
type Arrangement struct {
	Panes   map[int]Rect
	Handles []Handle
	Extents map[*Node]int
	// Nodes holds the area of every node, splits included.
	Nodes map[*Node]Rect
}

// Arrange lays the tree out inside area. Consecutive children are separated
// by a one-cell handle.
func (t *Tree) Arrange(area Rect) Arrangement {
	arr := Arrangement{
		Panes:   make(map[int]Rect),
		Extents: make(map[*Node]int),
		Nodes:   make(map[*Node]Rect),
	}
	arrangeNode(t.root, area, &arr)
	return arr
}

func arrangeNode(n *Node, area Rect, arr *Arrangement) {
	arr.Nodes[n] = area
	if n.IsLeaf() {
		arr.Panes[n.Pane] = area
		return
	}
	count := len(n.Children)
	length := area.W
	if n.Orientation == Vertical {
		length = area.H
	}
	avail := length - (count - 1)
	if avail < 0 {
		avail = 0
	}
	arr.Extents[n] = avail
	spans := distribute(n.Sizes, avail)
	pos := area.X
	if n.Orientation == Vertical {
		pos = area.Y
	}
	for i, child := range n.Children {
		var rect Rect
		if n.Orientation == Vertical {
			rect = Rect{X: area.X, Y: pos, W: area.W, H: spans[i]}
		} else {
			rect = Rect{X: pos, Y: area.Y, W: spans[i], H: area.H}
		}
		arrangeNode(child, rect, arr)
		pos += spans[i]
		if i == count-1 {
			break
		}
		var sep Rect
		if n.Orientation == Vertical {
			sep = Rect{X: area.X, Y: pos, W: area.W, H: 1}
		} else {
			sep = Rect{X: pos, Y: area.Y, W: 1, H: area.H}
		}
		arr.Handles = append(arr.Handles, Handle{Container: n, Index: i + 1, Rect: sep, Extent: avail})
		pos++
	}
}

// distribute splits total cells by fractional sizes. Every child keeps at
// least one cell when total allows it, and the spans always sum to total.
func distribute(sizes []float64, total int) []int {
	spans := make([]int, len(sizes))
	if total <= 0 || len(sizes) == 0 {
		return spans
	}
	cumulative := 0.0
	prevEdge := 0
	for i, s := range sizes {
		cumulative += s
		edge := int(math.Round(cumulative * float64(total)))
		if i == len(sizes)-1 {
			edge = total
		}
		if edge < prevEdge {
			edge = prevEdge
		}
		spans[i] = edge - prevEdge
		prevEdge = edge
	}
	if total < len(sizes) {
		return spans
	}
	for i := range spans {
		if spans[i] > 0 {
			continue
		}
		widest := 0
		for j := range spans {
			if spans[j] > spans[widest] {
				widest = j
			}
		}
		spans[widest]--
		spans[i]++
	}
	return spans
}

// HitPane returns the pane under (x, y), or 0.
func (a Arrangement) HitPane(x, y int) int {
	for pane, rect := range a.Panes {
		if rect.Contains(x, y) {
			return pane
		}
	}
	return 0
}

// HitHandle returns the handle under (x, y).
func (a Arrangement) HitHandle(x, y int) (Handle, bool) {
	for _, h := range a.Handles {
		if h.Rect.Contains(x, y) {
			return h, true
		}
	}
	return Handle{}, false
}
