package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
)

func TestParseYAMLDefaults(t *testing.T) {
	data := []byte(`
id: defaults
size: { w: 5, h: 5 }
bricks:
  - { x: 0, y: 4, w: 5, kind: grey, color: blue }
  - { x: 1, y: 3, w: 2 }
actors:
  - { name: hero, x: 4, y: 2 }
`)

	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "defaults", lvl.Name)
	assert.Equal(t, core.ColorGrey, lvl.Bricks[0].Color, "anchors ignore their color")
	assert.Equal(t, core.KindMovable, lvl.Bricks[1].Kind)
	assert.Equal(t, core.ColorRed, lvl.Bricks[1].Color)
	require.Len(t, lvl.Actors, 1)
	assert.Equal(t, 1, lvl.Actors[0].Width)
	assert.Equal(t, 2, lvl.Actors[0].Height)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"syntax": "size: {",
		"kind":   "bricks:\n  - { x: 0, y: 0, w: 1, kind: glass }",
		"color":  "bricks:\n  - { x: 0, y: 0, w: 1, color: teal }",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(data))
			assert.Error(t, err)
		})
	}
}
