// Package bricks provides the Brickyard puzzle game for the terminal platform.
package bricks

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickyard/internal/config"
	platformcore "github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
)

// ErrNoLevels is returned when a game is created without any level.
var ErrNoLevels = errors.New("bricks: no levels")

// Game implements the brick puzzle on top of the platform screen and input.
type Game struct {
	cfg    config.BricksConfig
	logger *log.Logger

	all   []levels.Level
	index int
	level levels.Level

	picker *core.Picker
	ctrl   *core.Controller
	mapper core.OrthoMapper
	err    error // Set when the current level cannot be built

	// Screen dimensions
	screenW int
	screenH int

	// Pointer fed to the controller each tick
	ptr       core.PointerState
	cursor    core.Coord
	keyboard  bool // The cursor was last moved by keys
	mouseSeen bool
	mouseX    int
	mouseY    int

	ticks      int
	solved     bool
	tooSmall   bool
	status     string
	statusHold int // Ticks left before hover info replaces status
}

// Rendering config
const (
	hudHeight   = 3
	margin      = 1
	statusTicks = 45
)

// New creates a game over the given levels, starting at index start.
func New(all []levels.Level, start int, cfg config.BricksConfig, logger *log.Logger) (*Game, error) {
	if len(all) == 0 {
		return nil, ErrNoLevels
	}
	if start < 0 || start >= len(all) {
		return nil, fmt.Errorf("bricks: level index %d out of range [0, %d)", start, len(all))
	}
	if logger == nil {
		logger = log.Default()
	}
	cfg.Validate()
	return &Game{cfg: cfg, logger: logger, all: all, index: start, keyboard: true}, nil
}

// ID returns the current level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the current level's display name.
func (g *Game) Title() string {
	if g.level.Name != "" {
		return g.level.Name
	}
	return g.level.ID
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Picker returns the rules engine for the current level.
func (g *Game) Picker() *core.Picker {
	return g.picker
}

// Controller returns the pointer controller for the current level.
func (g *Game) Controller() *core.Controller {
	return g.ctrl
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// Reset reloads the current level for the given screen.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.loadLevel(g.index)
}

// Resize recomputes the layout without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.layout()
	if g.ctrl != nil {
		g.ctrl.SetMapper(g.mapper)
		g.syncPointerToCursor()
	}
}

// loadLevel builds a fresh board, picker and controller for level i.
func (g *Game) loadLevel(i int) {
	g.index = i
	g.level = g.all[i]
	g.ticks = 0
	g.solved = false
	g.status, g.statusHold = "", 0
	g.picker, g.ctrl, g.err = nil, nil, nil

	board, err := g.level.NewBoard()
	if err != nil {
		g.err = err
		g.logger.Error("cannot build level", "level", g.level.ID, "error", err)
		return
	}
	g.picker = core.NewPicker(board)
	g.layout()
	g.ctrl = core.NewController(g.picker, g.mapper, core.ControllerConfig{
		DragThreshold:   g.cfg.Picker.DragThreshold,
		ReevaluateTicks: g.cfg.Picker.ReevaluateTicks,
		ValidAlpha:      g.cfg.Render.ValidAlpha,
		InvalidAlpha:    g.cfg.Render.InvalidAlpha,
	})

	g.cursor = core.C(g.level.Width/2, g.level.Height/2)
	g.keyboard = true
	g.ptr = core.PointerState{}
	g.syncPointerToCursor()
	g.logger.Debug("level loaded", "level", g.level.ID, "bricks", len(board.Bricks))
}

// layout centers the board below the HUD.
func (g *Game) layout() {
	cw := g.cfg.Render.CellWidth
	needW := g.level.Width*cw + 2*margin
	needH := g.level.Height + 2*margin + hudHeight
	g.tooSmall = g.screenW < needW || g.screenH < needH
	g.mapper = core.OrthoMapper{
		OriginX: (g.screenW - g.level.Width*cw) / 2,
		OriginY: hudHeight + margin + (g.screenH-needH)/2,
		CellW:   cw,
		CellH:   1,
		GridW:   g.level.Width,
		GridH:   g.level.Height,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.ticks++

	if in.Has(platformcore.ActionRestart) {
		g.loadLevel(g.index)
		g.setStatus("Level restarted")
		return g.result(false)
	}
	if in.Has(platformcore.ActionNext) && g.solved {
		if g.index+1 < len(g.all) {
			g.loadLevel(g.index + 1)
		} else {
			g.setStatus("All levels solved")
		}
		return g.result(false)
	}

	if g.solved || g.tooSmall || g.picker == nil {
		return g.result(false)
	}

	g.readPointer(in.Pointer)
	g.moveCursor(in)
	if in.Has(platformcore.ActionGrab) {
		g.ptr.Pressed = true
	}

	var ev core.Event
	if in.Has(platformcore.ActionCancel) {
		ev = g.ctrl.Cancel()
	} else {
		ev = g.ctrl.Step(g.ptr)
	}
	g.ptr.Pressed, g.ptr.Released = false, false

	return g.result(g.handleEvent(ev))
}

// readPointer adopts mouse input when the mouse moved or clicked.
func (g *Game) readPointer(p platformcore.Pointer) {
	if !p.Valid {
		return
	}
	moved := !g.mouseSeen || p.X != g.mouseX || p.Y != g.mouseY
	if !moved && !p.Pressed && !p.Released {
		return
	}
	g.mouseSeen = true
	g.mouseX, g.mouseY = p.X, p.Y
	g.keyboard = false

	g.ptr.X, g.ptr.Y = p.X, p.Y
	g.ptr.Down = p.Down
	g.ptr.Pressed = g.ptr.Pressed || p.Pressed
	g.ptr.Released = g.ptr.Released || p.Released
	if cell, ok := g.mapper.ScreenToCell(p.X, p.Y); ok {
		g.cursor = cell
	}
}

// moveCursor applies arrow actions. While a drag is waiting for a direction
// the pointer itself is nudged so Up and Down pick the pull direction.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	dx, dy := 0, 0
	if in.Has(platformcore.ActionLeft) {
		dx--
	}
	if in.Has(platformcore.ActionRight) {
		dx++
	}
	if in.Has(platformcore.ActionUp) {
		dy--
	}
	if in.Has(platformcore.ActionDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	g.keyboard = true

	if g.ctrl.State() == core.StateDragging {
		g.ptr.Y += dy * g.cfg.Picker.DragThreshold
		return
	}

	g.cursor = core.C(
		platformcore.Clamp(g.cursor.X+dx, 0, g.level.Width-1),
		platformcore.Clamp(g.cursor.Y+dy, 0, g.level.Height-1),
	)
	g.syncPointerToCursor()
}

// syncPointerToCursor moves the pointer onto the cursor cell.
func (g *Game) syncPointerToCursor() {
	g.ptr.X, g.ptr.Y = g.mapper.CellToScreen(g.cursor)
}

// handleEvent updates the status line and reports whether the level was
// solved by this event.
func (g *Game) handleEvent(ev core.Event) bool {
	switch ev {
	case core.EventDragStarted:
		g.setStatus("Drag up or down to choose a side")
	case core.EventDetached:
		hand := g.picker.Hand()
		g.setStatus(fmt.Sprintf("Holding %d brick(s)", hand.Len()))
		g.logger.Debug("detached", "level", g.level.ID, "at", hand.PickupAt, "bricks", hand.Len())
	case core.EventPlaced:
		g.setStatus("Placed")
		g.logger.Debug("placed", "level", g.level.ID, "moves", g.picker.Moves())
		if g.picker.Board().CoversGoal(g.level.Goal) {
			g.solved = true
			g.setStatus(fmt.Sprintf("Solved in %d moves", g.picker.Moves()))
			g.logger.Debug("solved", "level", g.level.ID, "moves", g.picker.Moves(), "ticks", g.ticks)
			return true
		}
	case core.EventCancelled:
		g.setStatus("Cancelled")
	case core.EventRejected:
		if g.ctrl.State() == core.StateHolding {
			g.setStatus("Can't place here")
		} else {
			g.setStatus("That brick is stuck")
		}
	case core.EventNone:
		if g.statusHold > 0 {
			g.statusHold--
		} else {
			g.status = g.hoverStatus()
		}
	}
	return false
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusHold = statusTicks
}

// hoverStatus describes what a press would do right now.
func (g *Game) hoverStatus() string {
	switch g.ctrl.State() {
	case core.StateHolding:
		if _, ok := g.ctrl.Target(); ok {
			return "Press to place"
		}
		return "Move to a spot that touches exactly one side"
	case core.StateDragging:
		return g.status
	}
	h := g.ctrl.Hover()
	switch {
	case !h.OnBrick:
		return ""
	case !h.Pickable:
		return "Blocked"
	case h.Direction == core.DirEither:
		return "Press and drag to pick up"
	default:
		return "Press to pull " + h.Direction.String()
	}
}

func (g *Game) result(justSolved bool) platformcore.StepResult {
	return platformcore.StepResult{
		State:       g.State(),
		JustSolved:  justSolved,
		Description: g.status,
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	moves := 0
	if g.picker != nil {
		moves = g.picker.Moves()
	}
	return platformcore.GameState{
		Moves:  moves,
		Solved: g.solved,
		Ticks:  g.ticks,
	}
}
