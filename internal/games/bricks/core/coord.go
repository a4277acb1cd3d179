package core

import "fmt"

// Coord represents a cell on the playfield.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AddCoord returns the sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the displacement from other to c.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Span is a horizontal run of cells one row tall: the footprint of a brick
// or the row directly above or below one.
type Span struct {
	At    Coord
	Width int
}

// Cells expands the span into individual cell coordinates, left to right.
func (s Span) Cells() []Coord {
	cells := make([]Coord, 0, s.Width)
	for dx := 0; dx < s.Width; dx++ {
		cells = append(cells, s.At.Add(dx, 0))
	}
	return cells
}

// Above returns the span of the row directly above.
func (s Span) Above() Span {
	return Span{At: s.At.Add(0, -1), Width: s.Width}
}

// Below returns the span of the row directly below.
func (s Span) Below() Span {
	return Span{At: s.At.Add(0, 1), Width: s.Width}
}

// Shift returns the span moved by the given displacement.
func (s Span) Shift(d Coord) Span {
	return Span{At: s.At.AddCoord(d), Width: s.Width}
}

// Contains returns true if c lies inside the span.
func (s Span) Contains(c Coord) bool {
	return c.Y == s.At.Y && c.X >= s.At.X && c.X < s.At.X+s.Width
}
