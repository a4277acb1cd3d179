package core

import "fmt"

// Brick is a one-cell-tall rectangle on the playfield.
type Brick struct {
	ID    BrickID
	Pos   Coord // Top-left cell
	Width int
	Kind  Kind
	Color Color
}

// Span returns the footprint of the brick.
func (b Brick) Span() Span {
	return Span{At: b.Pos, Width: b.Width}
}

// IsAnchor returns true for bricks that never move.
func (b Brick) IsAnchor() bool {
	return b.Kind == KindAnchor
}

// Actor is a non-brick mobile occupant, such as the player avatar.
// A brick with an actor standing on it cannot be lifted.
type Actor struct {
	Name   string
	Pos    Coord // Top-left cell
	Width  int
	Height int
}

// Cells expands the actor's footprint into cell coordinates.
func (a Actor) Cells() []Coord {
	cells := make([]Coord, 0, a.Width*a.Height)
	for dy := 0; dy < a.Height; dy++ {
		for dx := 0; dx < a.Width; dx++ {
			cells = append(cells, a.Pos.Add(dx, dy))
		}
	}
	return cells
}

// Board owns the brick table, the actors and the occupancy grid.
// Bricks are never created or destroyed after load; lifting a brick only
// takes it off the grid.
type Board struct {
	Grid   *Grid
	Bricks []Brick
	Actors []Actor
	placed []bool
}

// NewBoard creates an empty board.
func NewBoard(w, h int) *Board {
	return &Board{Grid: NewGrid(w, h)}
}

// AddBrick places a new brick on the board and returns its ID.
func (b *Board) AddBrick(pos Coord, width int, kind Kind, color Color) (BrickID, error) {
	if width <= 0 {
		return NoBrick, fmt.Errorf("brick at %v: width %d must be positive", pos, width)
	}
	span := Span{At: pos, Width: width}
	if !b.Grid.IsFree(span.Cells()) {
		return NoBrick, fmt.Errorf("brick at %v: footprint is out of bounds or occupied", pos)
	}
	if kind == KindAnchor {
		color = ColorGrey
	}
	id := BrickID(len(b.Bricks))
	b.Bricks = append(b.Bricks, Brick{ID: id, Pos: pos, Width: width, Kind: kind, Color: color})
	b.placed = append(b.placed, true)
	b.Grid.Occupy(id, span.Cells())
	return id, nil
}

// AddActor places an actor on the board and returns its index.
func (b *Board) AddActor(name string, pos Coord, width, height int) (int, error) {
	a := Actor{Name: name, Pos: pos, Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return noActor, fmt.Errorf("actor %q: size %dx%d must be positive", name, width, height)
	}
	if !b.Grid.IsFree(a.Cells()) {
		return noActor, fmt.Errorf("actor %q at %v: footprint is out of bounds or occupied", name, pos)
	}
	idx := len(b.Actors)
	b.Actors = append(b.Actors, a)
	b.Grid.occupyActor(idx, a.Cells())
	return idx, nil
}

// MoveActor relocates an actor. The grid is updated inline.
func (b *Board) MoveActor(idx int, to Coord) error {
	if idx < 0 || idx >= len(b.Actors) {
		return fmt.Errorf("%w: actor %d", ErrInvalidArgument, idx)
	}
	a := b.Actors[idx]
	b.Grid.vacateActor(idx, a.Cells())
	moved := a
	moved.Pos = to
	if !b.Grid.IsFree(moved.Cells()) {
		b.Grid.occupyActor(idx, a.Cells())
		return fmt.Errorf("actor %q: target %v is blocked", a.Name, to)
	}
	b.Actors[idx] = moved
	b.Grid.occupyActor(idx, moved.Cells())
	return nil
}

// Brick returns the brick with the given ID.
func (b *Board) Brick(id BrickID) (Brick, error) {
	if id < 0 || int(id) >= len(b.Bricks) {
		return Brick{}, fmt.Errorf("brick %d: %w", id, ErrUnknownBrick)
	}
	return b.Bricks[id], nil
}

// Placed reports whether the brick currently occupies the grid.
func (b *Board) Placed(id BrickID) bool {
	return id >= 0 && int(id) < len(b.placed) && b.placed[id]
}

// Movable returns the IDs of every placed movable brick, in ID order.
func (b *Board) Movable() []BrickID {
	ids := make([]BrickID, 0, len(b.Bricks))
	for _, br := range b.Bricks {
		if br.Kind == KindMovable && b.placed[br.ID] {
			ids = append(ids, br.ID)
		}
	}
	return ids
}

// lift takes a brick off the grid.
func (b *Board) lift(id BrickID) {
	b.Grid.Vacate(id, b.Bricks[id].Span().Cells())
	b.placed[id] = false
}

// drop puts a lifted brick back on the grid at pos.
func (b *Board) drop(id BrickID, pos Coord) {
	b.Bricks[id].Pos = pos
	b.Grid.Occupy(id, b.Bricks[id].Span().Cells())
	b.placed[id] = true
}

// Verify sweeps the whole board and panics with a *DesyncError if any placed
// brick's footprint does not point back at it, or if the grid holds cells
// no placed brick claims.
func (b *Board) Verify() {
	claimed := 0
	for _, br := range b.Bricks {
		if !b.placed[br.ID] {
			continue
		}
		for _, c := range br.Span().Cells() {
			got, _ := b.Grid.At(c)
			if got != br.ID {
				desync("verify", c, br.ID, got)
			}
		}
		claimed += br.Width
	}
	if n := b.Grid.OccupiedCount(); n != claimed {
		for y := 0; y < b.Grid.H; y++ {
			for x := 0; x < b.Grid.W; x++ {
				c := C(x, y)
				id, ok := b.Grid.At(c)
				if ok && (!b.placed[id] || !b.Bricks[id].Span().Contains(c)) {
					desync("verify", c, NoBrick, id)
				}
			}
		}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	bricks := make([]Brick, len(b.Bricks))
	copy(bricks, b.Bricks)
	actors := make([]Actor, len(b.Actors))
	copy(actors, b.Actors)
	placed := make([]bool, len(b.placed))
	copy(placed, b.placed)
	return &Board{Grid: b.Grid.Clone(), Bricks: bricks, Actors: actors, placed: placed}
}

// CoversGoal returns true when every goal cell holds a movable brick.
// An empty goal is never covered.
func (b *Board) CoversGoal(goal []Coord) bool {
	if len(goal) == 0 {
		return false
	}
	for _, c := range goal {
		id, ok := b.Grid.At(c)
		if !ok || b.Bricks[id].IsAnchor() {
			return false
		}
	}
	return true
}
