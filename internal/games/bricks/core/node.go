package core

// Node is the connection record of one movable brick.
type Node struct {
	Brick     BrickID
	Topside   []BrickID // Movable bricks touching the top edge, left to right
	Underside []BrickID // Movable bricks touching the bottom edge, left to right
	Path      AnchorPath
	direct    AnchorPath
}

// Valid reports whether the slot holds a node. Anchors and lifted bricks
// leave their slot empty.
func (n *Node) Valid() bool {
	return n.Brick != NoBrick
}

// Direct returns the anchor path contributed by anchors touching the brick
// itself, before propagation.
func (n *Node) Direct() AnchorPath {
	return n.direct
}

// Connections returns the neighbours pulled along when the brick is
// detached in dir: topside for Up, underside for Down.
func (n *Node) Connections(dir Direction) []BrickID {
	switch dir {
	case DirUp:
		return n.Topside
	case DirDown:
		return n.Underside
	default:
		return nil
	}
}

// Neighbors returns topside followed by underside connections.
func (n *Node) Neighbors() []BrickID {
	out := make([]BrickID, 0, len(n.Topside)+len(n.Underside))
	out = append(out, n.Topside...)
	return append(out, n.Underside...)
}

func (n *Node) addTopside(id BrickID) {
	n.Topside = appendUnique(n.Topside, id)
}

func (n *Node) addUnderside(id BrickID) {
	n.Underside = appendUnique(n.Underside, id)
}

func appendUnique(ids []BrickID, id BrickID) []BrickID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
