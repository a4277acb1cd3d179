package core

import "github.com/zyedidia/generic/mapset"

// Graph holds one node per movable brick on the grid.
// Nodes are stored densely by BrickID; it is rebuilt from scratch whenever
// the board changes.
type Graph struct {
	nodes []Node
}

// BuildGraph scans the board and classifies every movable brick.
func BuildGraph(b *Board) *Graph {
	g := &Graph{nodes: make([]Node, len(b.Bricks))}
	for i := range g.nodes {
		g.nodes[i].Brick = NoBrick
	}

	for _, id := range b.Movable() {
		n := &g.nodes[id]
		n.Brick = id
		span := b.Bricks[id].Span()

		for _, c := range span.Above().Cells() {
			other, ok := b.Grid.At(c)
			if !ok {
				continue
			}
			if b.Bricks[other].IsAnchor() {
				n.direct = n.direct.Merge(PathUpward)
			} else {
				n.addTopside(other)
			}
		}
		for _, c := range span.Below().Cells() {
			other, ok := b.Grid.At(c)
			if !ok {
				continue
			}
			if b.Bricks[other].IsAnchor() {
				n.direct = n.direct.Merge(PathDownward)
			} else {
				n.addUnderside(other)
			}
		}
	}

	g.propagate(PathDownward)
	g.propagate(PathUpward)
	return g
}

// propagate floods one path direction out from the bricks that touch an
// anchor on that side. Support from an anchor below flows up through
// topside connections; support from an anchor above flows down through
// underside connections.
func (g *Graph) propagate(dir AnchorPath) {
	visited := mapset.New[BrickID]()
	var stack []BrickID

	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Valid() && n.direct.Has(dir) {
			visited.Put(n.Brick)
			stack = append(stack, n.Brick)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &g.nodes[id]
		n.Path = n.Path.Merge(dir)

		next := n.Underside
		if dir == PathDownward {
			next = n.Topside
		}
		for _, nb := range next {
			if !visited.Has(nb) {
				visited.Put(nb)
				stack = append(stack, nb)
			}
		}
	}
}

// Node returns the node of a movable brick on the grid.
func (g *Graph) Node(id BrickID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) || !g.nodes[id].Valid() {
		return nil, false
	}
	return &g.nodes[id], true
}

// Path returns the anchor path of a brick, PathNone when it has no node.
func (g *Graph) Path(id BrickID) AnchorPath {
	if n, ok := g.Node(id); ok {
		return n.Path
	}
	return PathNone
}

// Nodes returns a copy of every valid node in BrickID order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n.Valid() {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of valid nodes.
func (g *Graph) Len() int {
	count := 0
	for i := range g.nodes {
		if g.nodes[i].Valid() {
			count++
		}
	}
	return count
}

// Equal returns true if both graphs have the same nodes, connections and
// classifications.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for i := range g.nodes {
		a, b := &g.nodes[i], &other.nodes[i]
		if a.Brick != b.Brick || a.Path != b.Path || a.direct != b.direct {
			return false
		}
		if !sameIDs(a.Topside, b.Topside) || !sameIDs(a.Underside, b.Underside) {
			return false
		}
	}
	return true
}

func sameIDs(a, b []BrickID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
