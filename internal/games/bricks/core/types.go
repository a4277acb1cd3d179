// Package core provides the brick connectivity graph and the detach/place rules
// for the Brickyard puzzle. This package is UI-agnostic and deterministic.
package core

// Kind classifies a brick.
type Kind uint8

const (
	KindMovable Kind = iota
	KindAnchor
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindMovable:
		return "movable"
	case KindAnchor:
		return "anchor"
	default:
		return "unknown"
	}
}

// ParseKind converts a level-file kind name into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "", "movable", "brick":
		return KindMovable, true
	case "anchor", "grey", "gray":
		return KindAnchor, true
	default:
		return KindMovable, false
	}
}

// AnchorPath records how a brick transitively reaches an anchor.
//
// PathUpward: a chain of underside connections climbs to an anchor above.
// PathDownward: a chain of topside connections descends to an anchor below.
// PathEither: both hold. PathNone: the brick is not anchored on its own.
type AnchorPath uint8

const (
	PathNone AnchorPath = iota
	PathUpward
	PathDownward
	PathEither
)

// String returns the string representation of an anchor path.
func (p AnchorPath) String() string {
	switch p {
	case PathNone:
		return "None"
	case PathUpward:
		return "Upward"
	case PathDownward:
		return "Downward"
	case PathEither:
		return "Either"
	default:
		return "Unknown"
	}
}

// Merge combines two paths. PathNone is the identity and opposite
// directions collapse into PathEither.
func (p AnchorPath) Merge(other AnchorPath) AnchorPath {
	switch {
	case p == other:
		return p
	case p == PathNone:
		return other
	case other == PathNone:
		return p
	default:
		return PathEither
	}
}

// Has reports whether p includes the given single direction.
func (p AnchorPath) Has(dir AnchorPath) bool {
	return p == dir || (p == PathEither && dir != PathNone)
}

// Direction is the side a brick group is pulled away from.
type Direction uint8

const (
	DirEither Direction = iota
	DirUp
	DirDown
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirEither:
		return "Either"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction. DirEither is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// DetachDirectionFor maps an anchor path to the direction a brick must be
// pulled. Ambiguous paths (None, Either) return DirEither.
func DetachDirectionFor(p AnchorPath) Direction {
	switch p {
	case PathDownward:
		return DirUp
	case PathUpward:
		return DirDown
	case PathNone, PathEither:
		return DirEither
	default:
		return DirEither
	}
}
