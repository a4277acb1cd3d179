package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := core.NewGrid(4, 3)

	assert.Equal(t, 4, g.W)
	assert.Equal(t, 3, g.H)
	assert.Equal(t, 0, g.OccupiedCount())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			_, ok := g.At(core.C(x, y))
			assert.False(t, ok, "cell (%d,%d) should be empty", x, y)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := core.NewGrid(5, 5)

	tests := []struct {
		c    core.Coord
		want bool
	}{
		{core.C(0, 0), true},
		{core.C(4, 4), true},
		{core.C(2, 3), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(5, 0), false},
		{core.C(0, 5), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.InBounds(tt.c), "InBounds(%v)", tt.c)
	}
}

func TestGridOccupyAndVacate(t *testing.T) {
	g := core.NewGrid(5, 3)
	span := core.Span{At: core.C(1, 1), Width: 3}

	require.True(t, g.IsFree(span.Cells()))
	g.Occupy(7, span.Cells())

	id, ok := g.At(core.C(2, 1))
	require.True(t, ok)
	assert.Equal(t, core.BrickID(7), id)
	assert.Equal(t, 3, g.OccupiedCount())
	assert.False(t, g.IsFree([]core.Coord{core.C(3, 1)}))
	assert.True(t, g.IsFree([]core.Coord{core.C(4, 1)}))

	g.Vacate(7, span.Cells())
	assert.Equal(t, 0, g.OccupiedCount())
	assert.True(t, g.IsFree(span.Cells()))
}

func TestGridIsFreeOutOfBounds(t *testing.T) {
	g := core.NewGrid(3, 3)

	assert.False(t, g.IsFree(core.Span{At: core.C(2, 0), Width: 2}.Cells()))
	assert.False(t, g.IsFree([]core.Coord{core.C(0, -1)}))
	assert.True(t, g.IsFree(nil))
}

func TestGridOccupyTakenCellPanics(t *testing.T) {
	g := core.NewGrid(4, 1)
	g.Occupy(0, core.Span{At: core.C(0, 0), Width: 2}.Cells())

	derr := expectDesync(t, func() {
		g.Occupy(1, core.Span{At: core.C(1, 0), Width: 2}.Cells())
	})
	assert.Equal(t, "occupy", derr.Op)
	assert.Equal(t, core.C(1, 0), derr.Cell)
	assert.Equal(t, core.BrickID(1), derr.Want)
	assert.Equal(t, core.BrickID(0), derr.Got)

	// A failed occupy leaves the grid untouched.
	_, ok := g.At(core.C(2, 0))
	assert.False(t, ok)
}

func TestGridVacateForeignCellPanics(t *testing.T) {
	g := core.NewGrid(4, 1)
	g.Occupy(0, []core.Coord{core.C(0, 0)})

	derr := expectDesync(t, func() {
		g.Vacate(3, []core.Coord{core.C(0, 0)})
	})
	assert.Equal(t, "vacate", derr.Op)
	assert.Contains(t, derr.Error(), "desync")
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Occupy(0, []core.Coord{core.C(0, 0)})

	clone := g.Clone()
	require.True(t, g.Equal(clone))

	clone.Occupy(1, []core.Coord{core.C(2, 1)})
	assert.False(t, g.Equal(clone))
	_, ok := g.At(core.C(2, 1))
	assert.False(t, ok)
}

func TestSpanNeighbourRows(t *testing.T) {
	s := core.Span{At: core.C(2, 3), Width: 2}

	assert.Equal(t, []core.Coord{core.C(2, 3), core.C(3, 3)}, s.Cells())
	assert.Equal(t, []core.Coord{core.C(2, 2), core.C(3, 2)}, s.Above().Cells())
	assert.Equal(t, []core.Coord{core.C(2, 4), core.C(3, 4)}, s.Below().Cells())
	assert.True(t, s.Contains(core.C(3, 3)))
	assert.False(t, s.Contains(core.C(4, 3)))
	assert.False(t, s.Contains(core.C(2, 2)))
	assert.Equal(t, core.Span{At: core.C(3, 1), Width: 2}, s.Shift(core.C(1, -2)))
}

func TestCoordOperations(t *testing.T) {
	c := core.C(3, 4)

	assert.Equal(t, core.C(4, 6), c.Add(1, 2))
	assert.Equal(t, core.C(5, 3), c.AddCoord(core.C(2, -1)))
	assert.Equal(t, core.C(1, 2), c.Sub(core.C(2, 2)))
	assert.Equal(t, "(3,4)", c.String())
}

func TestBoardRejectsBadBricks(t *testing.T) {
	b := core.NewBoard(4, 2)

	_, err := b.AddBrick(core.C(0, 0), 0, core.KindMovable, core.ColorRed)
	assert.Error(t, err)

	_, err = b.AddBrick(core.C(3, 0), 2, core.KindMovable, core.ColorRed)
	assert.Error(t, err, "footprint past the right edge")

	id, err := b.AddBrick(core.C(0, 1), 2, core.KindAnchor, core.ColorBlue)
	require.NoError(t, err)
	assert.Equal(t, core.ColorGrey, b.Bricks[id].Color, "anchors are always grey")

	_, err = b.AddBrick(core.C(1, 1), 2, core.KindMovable, core.ColorRed)
	assert.Error(t, err, "overlap")

	_, err = b.AddActor("hero", core.C(0, 0), 1, 2)
	assert.Error(t, err, "actor overlapping an anchor")
}

func TestBoardMoveActor(t *testing.T) {
	b := core.NewBoard(4, 3)
	_, err := b.AddBrick(core.C(0, 2), 4, core.KindAnchor, core.ColorGrey)
	require.NoError(t, err)
	idx, err := b.AddActor("hero", core.C(0, 0), 1, 2)
	require.NoError(t, err)

	require.NoError(t, b.MoveActor(idx, core.C(2, 0)))
	_, ok := b.Grid.ActorAt(core.C(0, 0))
	assert.False(t, ok)
	_, ok = b.Grid.ActorAt(core.C(2, 1))
	assert.True(t, ok)

	assert.Error(t, b.MoveActor(idx, core.C(2, 1)), "would overlap the floor")
	assert.Equal(t, core.C(2, 0), b.Actors[idx].Pos)
	assert.ErrorIs(t, b.MoveActor(5, core.C(0, 0)), core.ErrInvalidArgument)
}

func TestBoardVerifyDetectsDesync(t *testing.T) {
	f := loadFixture(t, "stairs")
	s2 := f.id("s2")

	// Wipe the brick from the grid behind the board's back.
	f.board.Grid.Vacate(s2, f.board.Bricks[s2].Span().Cells())

	derr := expectDesync(t, func() {
		core.NewPicker(f.board)
	})
	assert.Equal(t, "verify", derr.Op)
	assert.Equal(t, s2, derr.Want)
	assert.Equal(t, core.NoBrick, derr.Got)
}

func TestBoardVerifyDetectsStrayCell(t *testing.T) {
	f := loadFixture(t, "stairs")
	f.board.Grid.Occupy(f.id("s1"), []core.Coord{core.C(7, 0)})

	derr := expectDesync(t, func() {
		f.picker.Rebuild()
	})
	assert.Equal(t, core.C(7, 0), derr.Cell)
}

func TestBoardCoversGoal(t *testing.T) {
	f := loadFixture(t, "ledge")

	assert.False(t, f.board.CoversGoal(nil))
	assert.False(t, f.board.CoversGoal(f.level.Goal))
	assert.True(t, f.board.CoversGoal([]core.Coord{core.C(0, 3), core.C(6, 3)}))
	assert.False(t, f.board.CoversGoal([]core.Coord{core.C(0, 4)}), "anchors do not count")
}
