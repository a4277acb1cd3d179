package core

// PointerState is the pointer sample for one tick.
// Pressed and Released are edges; Down is the held level.
type PointerState struct {
	X, Y     int
	Down     bool
	Pressed  bool
	Released bool
}

// ControlState is the interaction state of a Controller.
type ControlState uint8

const (
	StateIdle     ControlState = iota
	StateDragging              // Pressed on a brick that needs a direction
	StateHolding               // Bricks are in the hand
)

// String returns the string representation of a control state.
func (s ControlState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateHolding:
		return "holding"
	default:
		return "unknown"
	}
}

// Event is what a controller step did.
type Event uint8

const (
	EventNone Event = iota
	EventDragStarted
	EventDetached
	EventPlaced
	EventCancelled
	EventRejected // The press could not detach or place
)

// String returns the string representation of an event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventDragStarted:
		return "drag-started"
	case EventDetached:
		return "detached"
	case EventPlaced:
		return "placed"
	case EventCancelled:
		return "cancelled"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ControllerConfig tunes pointer handling.
type ControllerConfig struct {
	DragThreshold   int     // Vertical screen distance that resolves a drag
	ReevaluateTicks int     // Max ticks between hit-test refreshes while still
	ValidAlpha      float64 // Held brick opacity over a valid placement
	InvalidAlpha    float64 // Held brick opacity elsewhere
}

// DefaultControllerConfig returns the terminal defaults.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		DragThreshold:   1,
		ReevaluateTicks: 6,
		ValidAlpha:      0.9,
		InvalidAlpha:    0.4,
	}
}

// Hover describes the brick under the pointer while idle.
type Hover struct {
	OnBrick   bool
	Brick     BrickID
	Pickable  bool
	Direction Direction
}

// HeldSprite is the render data for one held brick.
type HeldSprite struct {
	Brick Brick
	X, Y  int // Screen position of the brick's top-left corner
	Alpha float64
}

// Controller turns continuous pointer input into detach and place calls.
type Controller struct {
	picker *Picker
	mapper Mapper
	cfg    ControllerConfig
	state  ControlState

	pointer   PointerState
	pressX    int
	pressY    int
	pressCell Coord

	lastCell   Coord
	lastOnGrid bool
	sinceEval  int
	dirty      bool

	hover      Hover
	target     Coord
	placeValid bool
}

// NewController creates a controller driving the picker.
func NewController(p *Picker, m Mapper, cfg ControllerConfig) *Controller {
	if cfg.DragThreshold < 1 {
		cfg.DragThreshold = 1
	}
	if cfg.ReevaluateTicks < 1 {
		cfg.ReevaluateTicks = 1
	}
	return &Controller{picker: p, mapper: m, cfg: cfg, dirty: true}
}

// SetMapper replaces the screen mapping, e.g. after a resize.
func (c *Controller) SetMapper(m Mapper) {
	c.mapper = m
	c.dirty = true
}

// State returns the interaction state.
func (c *Controller) State() ControlState {
	return c.state
}

// Hover returns the last evaluated hover info.
func (c *Controller) Hover() Hover {
	return c.hover
}

// Target returns the last evaluated placement cell and whether the hand
// can be placed there.
func (c *Controller) Target() (Coord, bool) {
	return c.target, c.placeValid
}

// Step feeds one pointer sample and performs at most one action.
func (c *Controller) Step(in PointerState) Event {
	c.pointer = in
	c.reevaluate()

	switch c.state {
	case StateIdle:
		if in.Pressed {
			return c.press()
		}

	case StateDragging:
		dy := in.Y - c.pressY
		if dy <= -c.cfg.DragThreshold || dy >= c.cfg.DragThreshold {
			dir := DirDown
			if dy < 0 {
				dir = DirUp
			}
			ok, err := c.picker.DetachAt(c.pressCell, dir)
			if err != nil || !ok {
				c.reset()
				return EventRejected
			}
			c.hold()
			return EventDetached
		}
		if in.Pressed {
			c.reset()
			return c.press()
		}
		if in.Released {
			c.reset()
			return EventCancelled
		}

	case StateHolding:
		if in.Pressed {
			c.dirty = true
			c.reevaluate()
			if !c.placeValid {
				return EventRejected
			}
			ok, err := c.picker.PlaceAt(c.target)
			if err != nil || !ok {
				return EventRejected
			}
			c.reset()
			return EventPlaced
		}
	}
	return EventNone
}

// Cancel abandons a drag or returns held bricks to where they came from.
func (c *Controller) Cancel() Event {
	switch c.state {
	case StateDragging:
		c.reset()
		return EventCancelled
	case StateHolding:
		ok, err := c.picker.ReturnHand()
		if err != nil || !ok {
			return EventRejected
		}
		c.reset()
		return EventCancelled
	default:
		return EventNone
	}
}

// HeldSprites returns where each held brick should be drawn this frame,
// following the pointer, with an opacity reflecting placement validity.
func (c *Controller) HeldSprites() []HeldSprite {
	if c.state != StateHolding {
		return nil
	}
	alpha := c.cfg.InvalidAlpha
	if c.placeValid {
		alpha = c.cfg.ValidAlpha
	}
	dx, dy := c.pointer.X-c.pressX, c.pointer.Y-c.pressY
	hand := c.picker.Hand()
	sprites := make([]HeldSprite, 0, hand.Len())
	for _, id := range hand.Bricks {
		br := c.picker.Board().Bricks[id]
		x, y := c.mapper.CellToScreen(br.Pos)
		sprites = append(sprites, HeldSprite{Brick: br, X: x + dx, Y: y + dy, Alpha: alpha})
	}
	return sprites
}

// press handles a press edge while idle.
func (c *Controller) press() Event {
	cell, onGrid := c.mapper.ScreenToCell(c.pointer.X, c.pointer.Y)
	if !onGrid {
		return EventNone
	}
	id, ok := c.picker.Board().Grid.At(cell)
	if !ok || c.picker.Board().Bricks[id].IsAnchor() {
		return EventNone
	}
	res, err := c.picker.WhatIfDetach(id, DirEither)
	if err != nil || !res.OK {
		return EventRejected
	}

	c.pressX, c.pressY = c.pointer.X, c.pointer.Y
	c.pressCell = cell
	if res.NeedsDirection {
		c.state = StateDragging
		return EventDragStarted
	}
	ok, err = c.picker.DetachAt(cell, res.Direction)
	if err != nil || !ok {
		return EventRejected
	}
	c.hold()
	return EventDetached
}

func (c *Controller) hold() {
	c.state = StateHolding
	c.dirty = true
	c.reevaluate()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.dirty = true
	c.reevaluate()
}

// reevaluate refreshes hover and placement info when the pointer changed
// cell, the board changed, or the refresh interval ran out.
func (c *Controller) reevaluate() {
	cell, onGrid := c.mapper.ScreenToCell(c.pointer.X, c.pointer.Y)
	c.sinceEval++
	if !c.dirty && cell == c.lastCell && onGrid == c.lastOnGrid && c.sinceEval < c.cfg.ReevaluateTicks {
		return
	}
	c.dirty = false
	c.sinceEval = 0
	c.lastCell, c.lastOnGrid = cell, onGrid

	if c.state == StateHolding {
		c.hover = Hover{}
		c.target = cell
		c.placeValid = false
		if onGrid {
			ok, err := c.picker.CanPlaceHand(cell)
			c.placeValid = err == nil && ok
		}
		return
	}

	c.placeValid = false
	c.hover = Hover{}
	if !onGrid {
		return
	}
	id, ok := c.picker.Board().Grid.At(cell)
	if !ok || c.picker.Board().Bricks[id].IsAnchor() {
		return
	}
	c.hover = Hover{OnBrick: true, Brick: id}
	if res, err := c.picker.WhatIfDetach(id, DirEither); err == nil && res.OK {
		c.hover.Pickable = true
		c.hover.Direction = res.Direction
	}
}
