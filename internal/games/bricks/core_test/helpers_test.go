package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
)

var fixtureIDs = []string{"both_sides", "bridge", "ledge", "looped", "stairs", "tower"}

// fixture is a builtin level loaded onto a fresh board.
type fixture struct {
	t      *testing.T
	level  levels.Level
	board  *core.Board
	picker *core.Picker
}

func loadFixture(t *testing.T, id string) *fixture {
	t.Helper()
	lvl, err := levels.NewLoader(levels.Builtin()).LoadByID(id)
	require.NoError(t, err)
	b, err := lvl.NewBoard()
	require.NoError(t, err)
	return &fixture{t: t, level: lvl, board: b, picker: core.NewPicker(b)}
}

// id resolves a brick label from the level file.
func (f *fixture) id(label string) core.BrickID {
	f.t.Helper()
	id, ok := f.level.Brick(label)
	require.True(f.t, ok, "no brick labelled %q in %s", label, f.level.ID)
	return id
}

func (f *fixture) ids(labels ...string) []core.BrickID {
	out := make([]core.BrickID, len(labels))
	for i, l := range labels {
		out[i] = f.id(l)
	}
	return out
}

func (f *fixture) pos(label string) core.Coord {
	return f.board.Bricks[f.id(label)].Pos
}

func (f *fixture) path(label string) core.AnchorPath {
	return f.picker.Graph().Path(f.id(label))
}

// expectDesync runs fn and returns the *DesyncError it panics with.
func expectDesync(t *testing.T, fn func()) (derr *core.DesyncError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a desync panic")
		err, ok := r.(*core.DesyncError)
		require.True(t, ok, "panic value %v is not a *DesyncError", r)
		derr = err
	}()
	fn()
	return nil
}
