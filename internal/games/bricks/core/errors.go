package core

import (
	"errors"
	"fmt"
)

// Protocol violations. These indicate a caller bug, not a game outcome, and are
// returned wrapped so callers can match them with errors.Is.
var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidArgument  = errors.New("invalid argument")

	ErrHandNotEmpty = fmt.Errorf("%w: hand is not empty", ErrInvalidOperation)
	ErrHandEmpty    = fmt.Errorf("%w: hand is empty", ErrInvalidOperation)
	ErrNoBrick      = fmt.Errorf("%w: no brick at target cell", ErrInvalidOperation)
	ErrAnchorBrick  = fmt.Errorf("%w: anchor bricks cannot be detached", ErrInvalidArgument)
	ErrUnknownBrick = fmt.Errorf("%w: unknown brick", ErrInvalidArgument)
	ErrNotPlaced    = fmt.Errorf("%w: brick is not on the grid", ErrInvalidArgument)
)

// DesyncError reports a grid cell that does not point back at the brick whose
// footprint covers it. It is raised with panic: the board can no longer be
// reasoned about and must not be used further.
type DesyncError struct {
	Op   string
	Cell Coord
	Want BrickID
	Got  BrickID
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("grid desync during %s at %v: want brick %d, found %d",
		e.Op, e.Cell, e.Want, e.Got)
}

func desync(op string, cell Coord, want, got BrickID) {
	panic(&DesyncError{Op: op, Cell: cell, Want: want, Got: got})
}
