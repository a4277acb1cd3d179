package core

// BrickID indexes the board's brick table.
type BrickID int

// NoBrick marks an empty cell.
const NoBrick BrickID = -1

const noActor = -1

// Grid is the dense occupancy map of the playfield.
// Cells are stored in row-major order: index = y*W + x.
// Bricks and actors live in separate layers but never share a cell.
type Grid struct {
	W      int
	H      int
	cells  []BrickID
	actors []int
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:      w,
		H:      h,
		cells:  make([]BrickID, w*h),
		actors: make([]int, w*h),
	}
	for i := range g.cells {
		g.cells[i] = NoBrick
		g.actors[i] = noActor
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the brick occupying the cell, if any.
func (g *Grid) At(c Coord) (BrickID, bool) {
	if !g.InBounds(c) {
		return NoBrick, false
	}
	id := g.cells[g.index(c)]
	return id, id != NoBrick
}

// ActorAt returns the actor occupying the cell, if any.
func (g *Grid) ActorAt(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return noActor, false
	}
	a := g.actors[g.index(c)]
	return a, a != noActor
}

// IsFree reports whether every cell is inside the field and holds neither a
// brick nor an actor.
func (g *Grid) IsFree(cells []Coord) bool {
	for _, c := range cells {
		if !g.InBounds(c) {
			return false
		}
		i := g.index(c)
		if g.cells[i] != NoBrick || g.actors[i] != noActor {
			return false
		}
	}
	return true
}

// HasActor reports whether any of the cells holds an actor.
// Out-of-bounds cells are ignored.
func (g *Grid) HasActor(cells []Coord) bool {
	for _, c := range cells {
		if _, ok := g.ActorAt(c); ok {
			return true
		}
	}
	return false
}

// Occupy marks the cells as belonging to the brick.
// Panics if any cell is out of bounds or already taken.
func (g *Grid) Occupy(id BrickID, cells []Coord) {
	for _, c := range cells {
		if !g.InBounds(c) {
			desync("occupy", c, id, NoBrick)
		}
		i := g.index(c)
		if g.cells[i] != NoBrick {
			desync("occupy", c, id, g.cells[i])
		}
		if g.actors[i] != noActor {
			desync("occupy", c, id, NoBrick)
		}
	}
	for _, c := range cells {
		g.cells[g.index(c)] = id
	}
}

// Vacate clears the cells of the brick.
// Panics if any cell does not point back at the brick.
func (g *Grid) Vacate(id BrickID, cells []Coord) {
	for _, c := range cells {
		got, _ := g.At(c)
		if got != id {
			desync("vacate", c, id, got)
		}
	}
	for _, c := range cells {
		g.cells[g.index(c)] = NoBrick
	}
}

// occupyActor marks the cells as belonging to an actor.
func (g *Grid) occupyActor(idx int, cells []Coord) {
	for _, c := range cells {
		g.actors[g.index(c)] = idx
	}
}

// vacateActor clears the actor layer for the cells.
func (g *Grid) vacateActor(idx int, cells []Coord) {
	for _, c := range cells {
		if g.InBounds(c) && g.actors[g.index(c)] == idx {
			g.actors[g.index(c)] = noActor
		}
	}
}

// OccupiedCount returns the number of cells holding a brick.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, id := range g.cells {
		if id != NoBrick {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]BrickID, len(g.cells))
	copy(cells, g.cells)
	actors := make([]int, len(g.actors))
	copy(actors, g.actors)
	return &Grid{W: g.W, H: g.H, cells: cells, actors: actors}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] || g.actors[i] != other.actors[i] {
			return false
		}
	}
	return true
}
