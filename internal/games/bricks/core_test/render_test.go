package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
)

func TestRenderASCII(t *testing.T) {
	f := loadFixture(t, "ledge")

	expected := "" +
		".@......\n" +
		".@......\n" +
		".GG.....\n" +
		"BBB..YY.\n" +
		"########\n"

	assert.Equal(t, expected, core.RenderASCII(f.board))
}

func TestRenderPaths(t *testing.T) {
	f := loadFixture(t, "bridge")

	expected := "" +
		"...##....\n" +
		"...XX....\n" +
		".XXXXXX..\n" +
		".XX..XX..\n" +
		"#########\n"

	assert.Equal(t, expected, core.RenderPaths(f.board, f.picker.Graph()))
}

func TestRenderPathsAfterDetach(t *testing.T) {
	f := loadFixture(t, "tower")

	ok, err := f.picker.DetachAt(f.pos("P"), core.DirUp)
	if err != nil || !ok {
		t.Fatalf("DetachAt failed: ok=%v err=%v", ok, err)
	}

	expected := "" +
		"........\n" +
		"........\n" +
		"....vv..\n" +
		"..ooov..\n" +
		"#....#.#\n"

	assert.Equal(t, expected, core.RenderPaths(f.board, f.picker.Graph()))
}

func TestColorParsing(t *testing.T) {
	tests := []struct {
		input string
		want  core.Color
		ok    bool
	}{
		{"red", core.ColorRed, true},
		{"R", core.ColorRed, true},
		{"Green", core.ColorGreen, true},
		{"gray", core.ColorGrey, true},
		{"purple", core.ColorPurple, true},
		{"teal", core.ColorRed, false},
	}

	for _, tt := range tests {
		got, ok := core.ParseColor(tt.input)
		assert.Equal(t, tt.want, got, "ParseColor(%q)", tt.input)
		assert.Equal(t, tt.ok, ok, "ParseColor(%q)", tt.input)
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "Either", core.PathEither.String())
	assert.Equal(t, "Down", core.DirDown.String())
	assert.Equal(t, core.DirUp, core.DirDown.Opposite())
	assert.Equal(t, "holding", core.StateHolding.String())
	assert.Equal(t, "drag-started", core.EventDragStarted.String())
	assert.Equal(t, "anchor", core.KindAnchor.String())
}
