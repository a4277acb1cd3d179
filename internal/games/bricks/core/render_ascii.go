package core

import "strings"

// RenderASCII draws the board as text, one line per row.
//
// Format:
//   - empty='.', anchor='#', actor='@'
//   - movable bricks use their color letter (R/G/B/Y/P)
func RenderASCII(b *Board) string {
	return renderRows(b, func(br Brick) rune {
		if br.IsAnchor() {
			return '#'
		}
		return br.Color.Char()
	})
}

// RenderPaths draws the board with each movable brick replaced by its anchor
// path: '^' Upward, 'v' Downward, 'X' Either, 'o' None.
func RenderPaths(b *Board, g *Graph) string {
	return renderRows(b, func(br Brick) rune {
		if br.IsAnchor() {
			return '#'
		}
		return PathChar(g.Path(br.ID))
	})
}

// PathChar returns the single character used for a path in RenderPaths.
func PathChar(p AnchorPath) rune {
	switch p {
	case PathUpward:
		return '^'
	case PathDownward:
		return 'v'
	case PathEither:
		return 'X'
	default:
		return 'o'
	}
}

func renderRows(b *Board, brickChar func(Brick) rune) string {
	var sb strings.Builder
	sb.Grow((b.Grid.W + 1) * b.Grid.H)
	for y := 0; y < b.Grid.H; y++ {
		for x := 0; x < b.Grid.W; x++ {
			c := C(x, y)
			if id, ok := b.Grid.At(c); ok {
				sb.WriteRune(brickChar(b.Bricks[id]))
				continue
			}
			if _, ok := b.Grid.ActorAt(c); ok {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune('.')
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
