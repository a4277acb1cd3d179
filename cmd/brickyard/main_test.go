package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickyard/internal/config"
)

const tinyLevel = `id: tiny
name: Tiny
size: {w: 4, h: 3}
bricks:
  - {x: 0, y: 2, w: 4, kind: anchor}
  - {x: 1, y: 1, w: 2, color: red}
goal:
  - {x: 0, y: 1}
`

func TestLevelSourceDefaultsToBuiltin(t *testing.T) {
	flagLevelsDir = ""
	_, name, err := levelSource(config.DefaultBricksConfig())
	require.NoError(t, err)
	assert.Equal(t, "built-in", name)
}

func TestLevelSourceRejectsMissingDir(t *testing.T) {
	flagLevelsDir = filepath.Join(t.TempDir(), "nope")
	t.Cleanup(func() { flagLevelsDir = "" })

	_, _, err := levelSource(config.DefaultBricksConfig())
	assert.Error(t, err)
}

func TestLoadLevelsFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(tinyLevel), 0o600))

	cfg := config.DefaultBricksConfig()
	cfg.Levels.Dir = dir
	all, err := loadLevels(cfg, log.New(io.Discard))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Tiny", levelTitle(all[0]))

	idx, ok := levelIndex(all, "tiny")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	_, ok = levelIndex(all, "missing")
	assert.False(t, ok)
}
