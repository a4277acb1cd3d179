package tui

import (
	"github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks"
)

// Game is the interface the platform drives each tick.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the identifier used for solve storage (the level ID).
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to a new screen size without restarting.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

var _ Game = (*bricks.Game)(nil)
