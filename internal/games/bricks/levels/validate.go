package levels

import (
	"fmt"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
)

// MaxSide bounds level dimensions.
const MaxSide = 64

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level can be turned into a consistent board.
// Checks:
//   - Size is positive and at most MaxSide
//   - Brick widths are positive and labels unique
//   - Bricks and actors are in bounds and never overlap
//   - Goal cells are in bounds and not covered by anchors
func Validate(l Level) error {
	if l.Width <= 0 || l.Height <= 0 || l.Width > MaxSide || l.Height > MaxSide {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("size %dx%d outside 1..%d", l.Width, l.Height, MaxSide),
		}
	}

	owner := make(map[core.Coord]string)
	claim := func(c core.Coord, who string) error {
		if c.X < 0 || c.X >= l.Width || c.Y < 0 || c.Y >= l.Height {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("%s covers %v outside %dx%d", who, c, l.Width, l.Height),
			}
		}
		if prev, ok := owner[c]; ok {
			return ValidationError{
				Code:    "OVERLAP",
				Message: fmt.Sprintf("%s overlaps %s at %v", who, prev, c),
			}
		}
		owner[c] = who
		return nil
	}

	labels := make(map[string]bool)
	anchors := make(map[core.Coord]bool)
	for i, b := range l.Bricks {
		who := fmt.Sprintf("brick %d", i)
		if b.Label != "" {
			if labels[b.Label] {
				return ValidationError{
					Code:    "DUPLICATE_ID",
					Message: fmt.Sprintf("brick label %q used twice", b.Label),
				}
			}
			labels[b.Label] = true
			who = fmt.Sprintf("brick %q", b.Label)
		}
		if b.Width <= 0 {
			return ValidationError{
				Code:    "BAD_WIDTH",
				Message: fmt.Sprintf("%s has width %d", who, b.Width),
			}
		}
		for _, c := range (core.Span{At: b.Pos, Width: b.Width}).Cells() {
			if err := claim(c, who); err != nil {
				return err
			}
			if b.Kind == core.KindAnchor {
				anchors[c] = true
			}
		}
	}

	for _, a := range l.Actors {
		who := fmt.Sprintf("actor %q", a.Name)
		actor := core.Actor{Name: a.Name, Pos: a.Pos, Width: a.Width, Height: a.Height}
		if a.Width <= 0 || a.Height <= 0 {
			return ValidationError{
				Code:    "BAD_WIDTH",
				Message: fmt.Sprintf("%s has size %dx%d", who, a.Width, a.Height),
			}
		}
		for _, c := range actor.Cells() {
			if err := claim(c, who); err != nil {
				return err
			}
		}
	}

	for _, g := range l.Goal {
		if g.X < 0 || g.X >= l.Width || g.Y < 0 || g.Y >= l.Height || anchors[g] {
			return ValidationError{
				Code:    "BAD_GOAL",
				Message: fmt.Sprintf("goal cell %v is out of bounds or under an anchor", g),
			}
		}
	}

	return nil
}
