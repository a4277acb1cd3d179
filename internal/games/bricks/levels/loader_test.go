package levels_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
)

const tinyLevel = `
id: tiny
name: Tiny
size: { w: 4, h: 3 }
bricks:
  - { id: floor, x: 0, y: 2, w: 4, kind: anchor }
  - { id: top, x: 1, y: 1, w: 2, color: blue }
goal:
  - { x: 0, y: 1 }
`

func TestBuiltinLevels(t *testing.T) {
	loader := levels.NewLoader(levels.Builtin())

	ids, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"both_sides", "bridge", "ledge", "looped", "stairs", "tower"}, ids)

	lvls, err := loader.LoadAll()
	require.NoError(t, err)
	for _, lvl := range lvls {
		_, err := lvl.NewBoard()
		assert.NoError(t, err, lvl.ID)
		assert.NotEmpty(t, lvl.Goal, lvl.ID)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	fsys := fstest.MapFS{"tiny.yaml": {Data: []byte(tinyLevel)}}
	loader := levels.NewLoader(fsys)

	lvl, err := loader.LoadFile("tiny.yaml")
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.ID)
	assert.Equal(t, "Tiny", lvl.Name)
	assert.Equal(t, 4, lvl.Width)
	assert.Equal(t, 3, lvl.Height)
	require.Len(t, lvl.Bricks, 2)
	assert.Equal(t, core.KindAnchor, lvl.Bricks[0].Kind)
	assert.Equal(t, core.ColorGrey, lvl.Bricks[0].Color)
	assert.Equal(t, core.ColorBlue, lvl.Bricks[1].Color)
	assert.Equal(t, []core.Coord{core.C(0, 1)}, lvl.Goal)
	assert.Equal(t, "tiny.yaml", lvl.FilePath)

	b, err := lvl.NewBoard()
	require.NoError(t, err)
	top, ok := lvl.Brick("top")
	require.True(t, ok)
	assert.Equal(t, core.BrickID(1), top)
	id, ok := b.Grid.At(core.C(2, 1))
	require.True(t, ok)
	assert.Equal(t, top, id)

	_, ok = lvl.Brick("missing")
	assert.False(t, ok)
}

func TestLoaderDefaultsIDFromFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"pack/nameless.yml": {Data: []byte("size: { w: 2, h: 2 }\nbricks:\n  - { x: 0, y: 1, w: 2, kind: anchor }\n")},
	}

	lvl, err := levels.NewLoader(fsys).LoadFile("pack/nameless.yml")
	require.NoError(t, err)
	assert.Equal(t, "nameless", lvl.ID)
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a_tiny.yaml":   {Data: []byte(tinyLevel)},
		"b_broken.yaml": {Data: []byte("size: [not, a, map")},
		"c_overlap.yaml": {Data: []byte(`
id: overlap
size: { w: 3, h: 1 }
bricks:
  - { x: 0, y: 0, w: 2 }
  - { x: 1, y: 0, w: 2 }
`)},
		"notes.txt": {Data: []byte("ignored")},
	}

	lvls, err := levels.NewLoader(fsys).LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 1)
	assert.Equal(t, "tiny", lvls[0].ID)
}

func TestLoaderLoadByIDNotFound(t *testing.T) {
	_, err := levels.NewLoader(levels.Builtin()).LoadByID("nonexistent")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"zero size", "size: { w: 0, h: 3 }", "BAD_SIZE"},
		{"huge", "size: { w: 65, h: 3 }", "BAD_SIZE"},
		{"out of bounds", "size: { w: 3, h: 3 }\nbricks:\n  - { x: 2, y: 0, w: 2 }", "OUT_OF_BOUNDS"},
		{"overlap", "size: { w: 3, h: 3 }\nbricks:\n  - { x: 0, y: 0, w: 2 }\n  - { x: 1, y: 0, w: 1 }", "OVERLAP"},
		{"bad width", "size: { w: 3, h: 3 }\nbricks:\n  - { x: 0, y: 0, w: 0 }", "BAD_WIDTH"},
		{"duplicate label", "size: { w: 3, h: 3 }\nbricks:\n  - { id: a, x: 0, y: 0, w: 1 }\n  - { id: a, x: 0, y: 1, w: 1 }", "DUPLICATE_ID"},
		{"goal under anchor", "size: { w: 3, h: 3 }\nbricks:\n  - { x: 0, y: 2, w: 3, kind: anchor }\ngoal:\n  - { x: 1, y: 2 }", "BAD_GOAL"},
		{"goal outside", "size: { w: 3, h: 3 }\ngoal:\n  - { x: 3, y: 0 }", "BAD_GOAL"},
		{"actor on brick", "size: { w: 3, h: 3 }\nbricks:\n  - { x: 0, y: 2, w: 3, kind: anchor }\nactors:\n  - { name: hero, x: 0, y: 1 }", "OVERLAP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"l.yaml": {Data: []byte("id: l\n" + tt.yaml + "\n")}}
			_, err := levels.NewLoader(fsys).LoadFile("l.yaml")
			require.Error(t, err)

			var verr levels.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.code, verr.Code)
		})
	}
}
