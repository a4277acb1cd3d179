package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves  int  // Committed placements
	Solved bool // Every goal cell is covered
	Ticks  int  // Ticks since the level started
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State       GameState
	JustSolved  bool   // The level became solved during this tick
	Description string // Short status line for the HUD, may be empty
}
