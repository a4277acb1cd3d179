package core

// Mapper converts between screen positions and grid cells for hit testing.
// The game's isometric projection lives outside this package; the terminal
// front end uses OrthoMapper.
type Mapper interface {
	// ScreenToCell returns the cell under a screen position and whether it
	// lies on the playfield.
	ScreenToCell(x, y int) (Coord, bool)
	// CellToScreen returns the screen position of a cell's top-left corner.
	CellToScreen(c Coord) (x, y int)
}

// OrthoMapper lays cells out as CellW x CellH blocks starting at
// (OriginX, OriginY).
type OrthoMapper struct {
	OriginX int
	OriginY int
	CellW   int
	CellH   int
	GridW   int
	GridH   int
}

// ScreenToCell implements Mapper.
func (m OrthoMapper) ScreenToCell(x, y int) (Coord, bool) {
	c := Coord{X: floorDiv(x-m.OriginX, m.CellW), Y: floorDiv(y-m.OriginY, m.CellH)}
	return c, c.X >= 0 && c.X < m.GridW && c.Y >= 0 && c.Y < m.GridH
}

// CellToScreen implements Mapper.
func (m OrthoMapper) CellToScreen(c Coord) (int, int) {
	return m.OriginX + c.X*m.CellW, m.OriginY + c.Y*m.CellH
}

func floorDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
