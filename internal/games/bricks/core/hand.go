package core

import "sort"

// Hand holds the bricks currently lifted off the grid.
// Lifted bricks keep their last grid position until they are placed.
type Hand struct {
	Bricks   []BrickID // Bottom-to-top, then left-to-right
	PickupAt Coord     // Cell the pickup was made from
}

// Empty returns true when nothing is held.
func (h Hand) Empty() bool {
	return len(h.Bricks) == 0
}

// Len returns the number of held bricks.
func (h Hand) Len() int {
	return len(h.Bricks)
}

// sortByZ orders bricks bottom-to-top, then left-to-right.
func sortByZ(b *Board, ids []BrickID) {
	sort.Slice(ids, func(i, j int) bool {
		a, c := b.Bricks[ids[i]].Pos, b.Bricks[ids[j]].Pos
		if a.Y != c.Y {
			return a.Y > c.Y
		}
		return a.X < c.X
	})
}
