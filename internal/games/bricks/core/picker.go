package core

import "fmt"

// DetachResult describes what a detach would lift.
type DetachResult struct {
	OK             bool      // The detach is feasible
	NeedsDirection bool      // Feasible both ways; the caller must pick one
	Direction      Direction // Resolved pull direction, DirEither when NeedsDirection
	Bricks         []BrickID // Bricks that would be lifted, z-ordered
}

// Picker detaches brick groups into a hand and places them back.
// It owns the connectivity graph and rebuilds it after every change.
type Picker struct {
	board *Board
	graph *Graph
	hand  Hand
	moves int
}

// NewPicker creates a picker for the board and builds its graph.
func NewPicker(b *Board) *Picker {
	p := &Picker{board: b}
	p.Rebuild()
	return p
}

// Rebuild verifies the board and rebuilds the connectivity graph.
func (p *Picker) Rebuild() {
	p.board.Verify()
	p.graph = BuildGraph(p.board)
}

// Board returns the board the picker works on.
func (p *Picker) Board() *Board {
	return p.board
}

// Graph returns the current connectivity graph.
func (p *Picker) Graph() *Graph {
	return p.graph
}

// Hand returns the held bricks.
func (p *Picker) Hand() Hand {
	return p.hand
}

// Holding returns true when the hand is not empty.
func (p *Picker) Holding() bool {
	return !p.hand.Empty()
}

// Moves returns the number of committed placements.
func (p *Picker) Moves() int {
	return p.moves
}

// movableOnGrid validates that id names a placed, movable brick.
func (p *Picker) movableOnGrid(id BrickID) (Brick, error) {
	br, err := p.board.Brick(id)
	if err != nil {
		return Brick{}, err
	}
	if br.IsAnchor() {
		return Brick{}, fmt.Errorf("brick %d: %w", id, ErrAnchorBrick)
	}
	if !p.board.Placed(id) {
		return Brick{}, fmt.Errorf("brick %d: %w", id, ErrNotPlaced)
	}
	return br, nil
}

// DetachDirection returns the direction the brick must be pulled, or
// DirEither when the caller has to choose.
func (p *Picker) DetachDirection(id BrickID) (Direction, error) {
	if _, err := p.movableOnGrid(id); err != nil {
		return DirEither, err
	}
	return DetachDirectionFor(p.graph.Path(id)), nil
}

// CanDetachBrick reports whether the brick can be lifted in at least one
// direction.
func (p *Picker) CanDetachBrick(id BrickID) (bool, error) {
	res, err := p.WhatIfDetach(id, DirEither)
	if err != nil {
		return false, err
	}
	return res.OK, nil
}

// WhatIfDetach reports what pulling the brick in dir would lift without
// changing anything.
//
// With DirEither on a brick whose path is None or Either both directions are
// tried; the result is feasible only if neither is blocked, and then carries
// NeedsDirection instead of a brick set. Bricks with a one-sided path are
// always pulled away from their anchor; dir is ignored for them.
func (p *Picker) WhatIfDetach(id BrickID, dir Direction) (DetachResult, error) {
	if _, err := p.movableOnGrid(id); err != nil {
		return DetachResult{}, err
	}

	forced := DetachDirectionFor(p.graph.Path(id))
	if forced == DirEither {
		if dir == DirEither {
			if _, ok := p.collect(id, DirUp); !ok {
				return DetachResult{}, nil
			}
			if _, ok := p.collect(id, DirDown); !ok {
				return DetachResult{}, nil
			}
			return DetachResult{OK: true, NeedsDirection: true, Direction: DirEither}, nil
		}
		forced = dir
	}

	bricks, ok := p.collect(id, forced)
	if !ok {
		return DetachResult{}, nil
	}
	return DetachResult{OK: true, Direction: forced, Bricks: bricks}, nil
}

// DetachAt lifts the group containing the brick at the given cell into the
// hand. It returns false when the detach is blocked or still needs a
// direction.
func (p *Picker) DetachAt(at Coord, dir Direction) (bool, error) {
	if p.Holding() {
		return false, fmt.Errorf("detach at %v: %w", at, ErrHandNotEmpty)
	}
	id, ok := p.board.Grid.At(at)
	if !ok {
		return false, fmt.Errorf("detach at %v: %w", at, ErrNoBrick)
	}
	res, err := p.WhatIfDetach(id, dir)
	if err != nil {
		return false, fmt.Errorf("detach at %v: %w", at, err)
	}
	if !res.OK || res.NeedsDirection {
		return false, nil
	}

	for _, bid := range res.Bricks {
		p.board.lift(bid)
	}
	p.hand = Hand{Bricks: res.Bricks, PickupAt: at}
	p.Rebuild()
	return true, nil
}

// heldSpans returns the footprint of every held brick displaced by d.
func (p *Picker) heldSpans(d Coord) []Span {
	spans := make([]Span, len(p.hand.Bricks))
	for i, id := range p.hand.Bricks {
		spans[i] = p.board.Bricks[id].Span().Shift(d)
	}
	return spans
}

// hasBrick reports whether any placed brick, anchors included, covers a cell
// of the span.
func (p *Picker) hasBrick(s Span) bool {
	for _, c := range s.Cells() {
		if _, ok := p.board.Grid.At(c); ok {
			return true
		}
	}
	return false
}

// CanPlaceHand reports whether the hand can be put down with the pickup cell
// moved to at.
//
// Every displaced footprint must be free. A held brick with a brick right
// above it needs downward support, one with a brick right below needs upward
// support. The hand must need exactly one of the two: a group that would hang
// from one structure while resting on another is rejected, and so is a group
// touching nothing.
func (p *Picker) CanPlaceHand(at Coord) (bool, error) {
	if !p.Holding() {
		return false, fmt.Errorf("place at %v: %w", at, ErrHandEmpty)
	}
	var needDown, needUp bool
	for _, span := range p.heldSpans(at.Sub(p.hand.PickupAt)) {
		if !p.board.Grid.IsFree(span.Cells()) {
			return false, nil
		}
		if p.hasBrick(span.Above()) {
			needDown = true
		}
		if p.hasBrick(span.Below()) {
			needUp = true
		}
	}
	if needDown && needUp {
		return false, nil
	}
	return needDown || needUp, nil
}

// PlaceAt commits the hand with the pickup cell moved to at, then rebuilds
// the graph.
func (p *Picker) PlaceAt(at Coord) (bool, error) {
	ok, err := p.CanPlaceHand(at)
	if err != nil || !ok {
		return false, err
	}
	d := at.Sub(p.hand.PickupAt)
	for _, id := range p.hand.Bricks {
		p.board.drop(id, p.board.Bricks[id].Pos.AddCoord(d))
	}
	p.hand = Hand{}
	p.moves++
	p.Rebuild()
	return true, nil
}

// ReturnHand puts the held bricks back where they were lifted from. It
// returns false if an actor has since moved into that space.
func (p *Picker) ReturnHand() (bool, error) {
	if !p.Holding() {
		return false, fmt.Errorf("return hand: %w", ErrHandEmpty)
	}
	for _, span := range p.heldSpans(Coord{}) {
		if !p.board.Grid.IsFree(span.Cells()) {
			return false, nil
		}
	}
	for _, id := range p.hand.Bricks {
		p.board.drop(id, p.board.Bricks[id].Pos)
	}
	p.hand = Hand{}
	p.Rebuild()
	return true, nil
}
