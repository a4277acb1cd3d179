package bricks

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickyard/internal/config"
	platformcore "github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
)

// Builtin levels sort as both_sides, bridge, ledge, looped, stairs, tower.
const (
	bridgeIndex = 1
	ledgeIndex  = 2
)

func newTestGame(t *testing.T, start int) *Game {
	t.Helper()
	loader := levels.NewLoader(levels.Builtin())
	loader.Logger = log.New(io.Discard)
	all, err := loader.LoadAll()
	require.NoError(t, err)

	g, err := New(all, start, config.DefaultBricksConfig(), log.New(io.Discard))
	require.NoError(t, err)
	g.Reset(platformcore.DefaultConfig())
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func mouse(g *Game, x, y int, down, pressed, released bool) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	in.Pointer = platformcore.Pointer{X: x, Y: y, Down: down, Pressed: pressed, Released: released, Valid: true}
	return g.Step(in)
}

// screenOf returns the screen position of a cell's first column.
func screenOf(g *Game, c core.Coord) (int, int) {
	return g.mapper.CellToScreen(c)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(nil, 0, config.DefaultBricksConfig(), nil)
	assert.ErrorIs(t, err, ErrNoLevels)

	all, err := levels.NewLoader(levels.Builtin()).LoadAll()
	require.NoError(t, err)
	_, err = New(all, len(all), config.DefaultBricksConfig(), nil)
	assert.Error(t, err)
}

func TestLayoutCentersBoard(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	assert.Equal(t, "ledge", g.ID())
	assert.Equal(t, "Ledge", g.Title())
	assert.Equal(t, core.OrthoMapper{OriginX: 32, OriginY: 11, CellW: 2, CellH: 1, GridW: 8, GridH: 5}, g.mapper)
	assert.Equal(t, core.C(4, 2), g.Cursor())
}

func TestKeyboardSolveLedge(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	step(g, platformcore.ActionRight)
	step(g, platformcore.ActionRight)
	step(g, platformcore.ActionDown)
	require.Equal(t, core.C(6, 3), g.Cursor())

	res := step(g, platformcore.ActionGrab)
	require.Equal(t, core.StateHolding, g.Controller().State())
	assert.Equal(t, "Holding 1 brick(s)", res.Description)
	assert.False(t, res.JustSolved)

	step(g, platformcore.ActionRight)
	_, valid := g.Controller().Target()
	require.True(t, valid)

	res = step(g, platformcore.ActionGrab)
	assert.True(t, res.JustSolved)
	assert.True(t, res.State.Solved)
	assert.Equal(t, 1, res.State.Moves)
	assert.Equal(t, "Solved in 1 moves", res.Description)

	// Input is ignored once solved.
	res = step(g, platformcore.ActionLeft)
	assert.False(t, res.JustSolved)
	assert.Equal(t, core.C(7, 3), g.Cursor())
}

func TestBlockedBrickIsRejected(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	step(g, platformcore.ActionLeft)
	step(g, platformcore.ActionLeft)
	step(g, platformcore.ActionLeft)
	require.Equal(t, core.C(1, 2), g.Cursor())

	res := step(g, platformcore.ActionGrab)
	assert.Equal(t, "That brick is stuck", res.Description)
	assert.Equal(t, core.StateIdle, g.Controller().State())
	assert.False(t, g.Picker().Holding())
}

func TestKeyboardDragChoosesSide(t *testing.T) {
	g := newTestGame(t, bridgeIndex)

	// The cursor starts on the bridge, which can be pulled either way.
	require.Equal(t, core.C(4, 2), g.Cursor())
	res := step(g, platformcore.ActionGrab)
	require.Equal(t, core.StateDragging, g.Controller().State())
	assert.Equal(t, "Drag up or down to choose a side", res.Description)

	step(g, platformcore.ActionDown)
	require.Equal(t, core.StateHolding, g.Controller().State())
	assert.Equal(t, 3, g.Picker().Hand().Len())

	res = step(g, platformcore.ActionCancel)
	assert.Equal(t, "Cancelled", res.Description)
	assert.Equal(t, core.StateIdle, g.Controller().State())
	assert.False(t, g.Picker().Holding())
	assert.Equal(t, 0, res.State.Moves)
}

func TestMouseSolveLedge(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	x, y := screenOf(g, core.C(6, 3))
	mouse(g, x, y, true, true, false)
	require.Equal(t, core.StateHolding, g.Controller().State())
	assert.Equal(t, core.C(6, 3), g.Cursor())

	mouse(g, x+2, y, true, false, false)
	sprites := g.Controller().HeldSprites()
	require.Len(t, sprites, 1)
	cx, _ := screenOf(g, core.C(5, 3))
	assert.Equal(t, cx+2, sprites[0].X)
	assert.Equal(t, y, sprites[0].Y)
	assert.InDelta(t, 0.9, sprites[0].Alpha, 1e-9)

	mouse(g, x+2, y, false, false, true)
	require.Equal(t, core.StateHolding, g.Controller().State(), "release does not place")

	res := mouse(g, x+2, y, true, true, false)
	assert.True(t, res.JustSolved)
	assert.Equal(t, 1, res.State.Moves)
}

func TestRestartAndNext(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	step(g, platformcore.ActionNext)
	assert.Equal(t, "ledge", g.ID(), "next is ignored until solved")

	x, y := screenOf(g, core.C(6, 3))
	mouse(g, x, y, true, true, false)
	res := mouse(g, x+2, y, true, true, false)
	require.True(t, res.State.Solved)

	res = step(g, platformcore.ActionRestart)
	assert.False(t, res.State.Solved)
	assert.Equal(t, 0, res.State.Moves)
	lvl := g.Level()
	c, ok := lvl.Brick("c")
	require.True(t, ok)
	assert.Equal(t, core.C(5, 3), g.Picker().Board().Bricks[c].Pos)

	x, y = screenOf(g, core.C(6, 3))
	mouse(g, x, y, true, true, false)
	mouse(g, x+2, y, true, true, false)
	step(g, platformcore.ActionNext)
	assert.Equal(t, "looped", g.ID())
	assert.Equal(t, 0, g.State().Moves)
}

func TestResizeKeepsHand(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	x, y := screenOf(g, core.C(6, 3))
	mouse(g, x, y, true, true, false)
	require.True(t, g.Picker().Holding())

	g.Resize(100, 30)
	assert.True(t, g.Picker().Holding())
	assert.Equal(t, 42, g.mapper.OriginX)
	assert.Equal(t, 14, g.mapper.OriginY)
}

func TestTooSmallIgnoresInput(t *testing.T) {
	g := newTestGame(t, ledgeIndex)
	g.Resize(10, 5)

	res := step(g, platformcore.ActionGrab)
	assert.False(t, g.Picker().Holding())
	assert.Equal(t, 0, res.State.Moves)

	screen := platformcore.NewScreen(10, 5)
	g.Render(screen)
	assert.NotEmpty(t, strings.TrimSpace(screen.String()))
}

func TestRenderLedge(t *testing.T) {
	g := newTestGame(t, ledgeIndex)
	screen := platformcore.NewScreen(80, 24)
	step(g)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Ledge (3/6)")
	assert.Contains(t, screen.Row(0), "Moves: 0")

	// Floor anchor on row 4 of the board.
	fx, fy := screenOf(g, core.C(0, 4))
	assert.Equal(t, platformcore.Cell{Rune: glyphAnchor, Color: platformcore.ColorGray}, screen.GetCell(fx, fy))
	assert.Equal(t, platformcore.Cell{Rune: glyphAnchor, Color: platformcore.ColorGray}, screen.GetCell(fx+15, fy))

	ax, ay := screenOf(g, core.C(1, 0))
	assert.Equal(t, glyphActor, screen.Get(ax, ay))

	gx, gy := screenOf(g, core.C(7, 3))
	assert.Equal(t, platformcore.Cell{Rune: glyphGoal, Color: platformcore.ColorYellow}, screen.GetCell(gx, gy))

	cx, cy := screenOf(g, core.C(5, 3))
	assert.Equal(t, platformcore.Cell{Rune: glyphBrick, Color: platformcore.ColorYellow}, screen.GetCell(cx, cy))

	kx, ky := screenOf(g, g.Cursor())
	assert.Equal(t, glyphCursor, screen.Get(kx, ky))

	assert.Equal(t, '┌', screen.Get(g.mapper.OriginX-1, g.mapper.OriginY-1))
}

func TestRenderHeldSpritesFaintWhenInvalid(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	x, y := screenOf(g, core.C(6, 3))
	mouse(g, x, y, true, true, false)
	// Two rows up over empty space: floating, so invalid.
	mouse(g, x, y-2, true, false, false)
	_, valid := g.Controller().Target()
	require.False(t, valid)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	sx, sy := screenOf(g, core.C(5, 1))
	got := screen.GetCell(sx, sy)
	assert.Equal(t, glyphBrick, got.Rune)
	assert.Equal(t, platformcore.ColorYellow, got.Color)
	assert.True(t, got.Faint)

	// The lifted brick's old cells are empty.
	ox, oy := screenOf(g, core.C(5, 3))
	assert.Equal(t, glyphEmpty, screen.Get(ox, oy))
}

func TestRenderSolvedOverlay(t *testing.T) {
	g := newTestGame(t, ledgeIndex)

	x, y := screenOf(g, core.C(6, 3))
	mouse(g, x, y, true, true, false)
	mouse(g, x+2, y, true, true, false)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Solved in 1 moves!")
	assert.Contains(t, screen.String(), "N: next level")
}

func TestBrickColorMapping(t *testing.T) {
	tests := []struct {
		in   core.Color
		want platformcore.Color
	}{
		{core.ColorGrey, platformcore.ColorGray},
		{core.ColorRed, platformcore.ColorRed},
		{core.ColorGreen, platformcore.ColorGreen},
		{core.ColorBlue, platformcore.ColorBlue},
		{core.ColorYellow, platformcore.ColorYellow},
		{core.ColorPurple, platformcore.ColorMagenta},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, brickColor(tt.in))
		})
	}
}
