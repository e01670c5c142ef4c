package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/effect"
	"github.com/atomicstack/termfolio/internal/layout"
)

func newTestSession() *Session {
	return New(Options{
		Limits: layout.Limits{Horizontal: 10, Vertical: 3},
		Theme:  "default",
		Banner: func() content.Block {
			return content.Block{Kind: content.KindBanner, Lines: []content.Line{content.Text(content.ToneBanner, "welcome")}}
		},
	})
}

func TestNewSessionHasOriginalPane(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, 1, s.ActiveID())
	assert.Equal(t, 1, s.Original())
	assert.Equal(t, []int{1}, s.Panes())
	require.NotNil(t, s.Active())
	assert.Equal(t, content.KindBanner, s.Active().Blocks[0].Kind)
}

func TestSplitFocusesNewPane(t *testing.T) {
	s := newTestSession()
	id, err := s.Split(layout.Horizontal)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, s.ActiveID())
	assert.Equal(t, "H[1,2]", s.Tree().Shape())
	require.NotNil(t, s.Pane(2))
	assert.Equal(t, "welcome", content.PlainText(s.Pane(2).Blocks[0]))
	assert.Empty(t, s.Pane(2).History)

	_, err = s.Split(layout.Vertical)
	require.NoError(t, err)
	assert.Equal(t, "H[1,V[2,3]]", s.Tree().Shape())
	assert.Equal(t, []int{1, 2, 3}, s.Panes())
}

func TestCloseMovesFocus(t *testing.T) {
	s := newTestSession()
	_, _ = s.Split(layout.Horizontal)
	_, _ = s.Split(layout.Horizontal)
	_, _ = s.Split(layout.Horizontal)

	require.NoError(t, s.Close(2))
	assert.Equal(t, 3, s.ActiveID(), "focus moves to the pane now at the removed index")
	require.NoError(t, s.Close(4))
	assert.Equal(t, 3, s.ActiveID(), "focus clamps to the last pane")
	assert.Nil(t, s.Pane(4))
	assert.Equal(t, "H[1,3]", s.Tree().Shape())
}

func TestCloseOriginalRefused(t *testing.T) {
	s := newTestSession()
	_, _ = s.Split(layout.Vertical)
	assert.ErrorIs(t, s.Close(1), ErrCloseOriginal)
	assert.ErrorIs(t, s.Close(42), layout.ErrPaneNotFound)
	assert.Equal(t, 2, s.PaneCount())
}

func TestSplitCloseRestoresShape(t *testing.T) {
	s := newTestSession()
	_, _ = s.Split(layout.Horizontal)
	_, _ = s.Split(layout.Vertical)
	before := s.Tree().Shape()
	id, err := s.Split(layout.Horizontal)
	require.NoError(t, err)
	require.NoError(t, s.Close(id))
	assert.Equal(t, before, s.Tree().Shape())
}

func TestCloseStopsOwnedEffects(t *testing.T) {
	s := newTestSession()
	id, _ := s.Split(layout.Horizontal)
	rain := effect.NewRain(4, 4, rand.New(rand.NewSource(1)))
	gen := s.Matrix.Start(id, rain)
	game := effect.NewSnake(rand.New(rand.NewSource(1)))
	s.Snake.Start(1, game)

	require.Same(t, rain, s.RainFor(id))
	assert.Nil(t, s.RainFor(1))
	require.NoError(t, s.Close(id))
	assert.True(t, rain.Stopped())
	assert.False(t, s.Matrix.Accept(gen))
	assert.False(t, game.Stopped(), "effects in other panes keep running")
	assert.Same(t, game, s.SnakeFor(1))
}

func TestFocus(t *testing.T) {
	s := newTestSession()
	_, _ = s.Split(layout.Horizontal)
	_, _ = s.Split(layout.Vertical)
	require.NoError(t, s.Focus(1))
	assert.Equal(t, 1, s.ActiveID())
	assert.ErrorIs(t, s.Focus(9), layout.ErrPaneNotFound)
	assert.Equal(t, 2, s.FocusNext())
	assert.Equal(t, 3, s.FocusNext())
	assert.Equal(t, 1, s.FocusNext())
}

func TestMenuHidesCloseForOriginal(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.OpenMenu(1))
	require.NotNil(t, s.Menu())
	assert.Len(t, s.Menu().Items, 2)
	for _, item := range s.Menu().Items {
		assert.NotEqual(t, ActionClose, item.Action)
	}

	id, _ := s.Split(layout.Horizontal)
	require.NoError(t, s.OpenMenu(id))
	assert.Len(t, s.Menu().Items, 3)
}

func TestMenuSelect(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.OpenMenu(1))
	s.MenuMove(1)
	action, id, err := s.MenuSelect()
	require.NoError(t, err)
	assert.Equal(t, ActionSplitVertical, action)
	assert.Equal(t, 2, id)
	assert.Nil(t, s.Menu())
	assert.Equal(t, "V[1,2]", s.Tree().Shape())

	require.NoError(t, s.OpenMenu(2))
	s.MenuMove(-1)
	assert.Equal(t, ActionClose, s.Menu().Selected().Action)
	action, _, err = s.MenuSelect()
	require.NoError(t, err)
	assert.Equal(t, ActionClose, action)
	assert.Equal(t, "1", s.Tree().Shape())
	assert.Equal(t, 1, s.ActiveID())

	_, _, err = s.MenuSelect()
	assert.Error(t, err)
	assert.False(t, s.CloseMenu())
}

func TestResizeGesture(t *testing.T) {
	s := newTestSession()
	_, _ = s.Split(layout.Horizontal)
	arr := s.Tree().Arrange(layout.Rect{W: 81, H: 20})
	require.Len(t, arr.Handles, 1)
	h := arr.Handles[0]

	require.NoError(t, s.BeginResize(h, 40, 5))
	assert.ErrorIs(t, s.BeginResize(h, 40, 5), ErrResizeInProgress)

	assert.True(t, s.DragResize(50, 5))
	root := s.Tree().Root()
	assert.InDelta(t, 50.0/80, root.Sizes[0], 1e-9)
	assert.True(t, s.DragResize(45, 9))
	assert.InDelta(t, 45.0/80, root.Sizes[0], 1e-9, "drag is measured from the start point")

	assert.True(t, s.DragResize(-1000, 5))
	assert.InDelta(t, 10.0/80, root.Sizes[0], 1e-9)
	assert.InDelta(t, 70.0/80, root.Sizes[1], 1e-9)

	assert.True(t, s.EndResize())
	assert.False(t, s.Resizing())
	assert.False(t, s.DragResize(60, 5))
	assert.False(t, s.EndResize())
}

func TestResizeActive(t *testing.T) {
	s := newTestSession()
	_, _ = s.Split(layout.Horizontal)
	arr := s.Tree().Arrange(layout.Rect{W: 81, H: 20})
	root := s.Tree().Root()

	// Pane 2 is the last child, so its leading edge moves.
	assert.True(t, s.ResizeActive(layout.Horizontal, 4, arr.Extents))
	assert.InDelta(t, 44.0/80, root.Sizes[0], 1e-9)
	assert.InDelta(t, 36.0/80, root.Sizes[1], 1e-9)

	require.NoError(t, s.Focus(1))
	assert.True(t, s.ResizeActive(layout.Horizontal, -6, arr.Extents))
	assert.InDelta(t, 38.0/80, root.Sizes[0], 1e-9)

	assert.False(t, s.ResizeActive(layout.Vertical, 2, arr.Extents), "no vertical split encloses the pane")
}
