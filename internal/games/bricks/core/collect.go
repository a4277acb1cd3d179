package core

import "github.com/zyedidia/generic/mapset"

// standingOn reports whether an actor occupies the row directly above the
// brick, whatever the pull direction.
func (p *Picker) standingOn(id BrickID) bool {
	return p.board.Grid.HasActor(p.board.Bricks[id].Span().Above().Cells())
}

// collect gathers the bricks lifted when start is pulled in dir: the rigid
// chain plus any floating bricks riding along with it. ok is false when an
// actor blocks any brick that would move.
func (p *Picker) collect(start BrickID, dir Direction) (bricks []BrickID, ok bool) {
	rigid, ok := p.collectRigid(start, dir)
	if !ok {
		return nil, false
	}
	riders, ok := p.collectRiders(rigid)
	if !ok {
		return nil, false
	}
	bricks = append(rigid, riders...)
	sortByZ(p.board, bricks)
	return bricks, true
}

// collectRigid walks the connections in the pull direction (topside for Up,
// underside for Down) and returns every brick rigidly attached to start.
func (p *Picker) collectRigid(start BrickID, dir Direction) ([]BrickID, bool) {
	seen := mapset.New[BrickID]()
	seen.Put(start)
	stack := []BrickID{start}
	var out []BrickID

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.standingOn(id) {
			return nil, false
		}
		out = append(out, id)

		n, ok := p.graph.Node(id)
		if !ok {
			continue
		}
		for _, nb := range n.Connections(dir) {
			if !seen.Has(nb) {
				seen.Put(nb)
				stack = append(stack, nb)
			}
		}
	}
	return out, true
}

// collectRiders sweeps both connection sets of the rigid chain for bricks
// with no anchor path. Each connected group of such bricks rides along
// unless one of its members also touches an anchored brick that stays
// behind; that group is ineligible and simply left in place. A blocked
// eligible rider aborts the whole pickup.
func (p *Picker) collectRiders(rigid []BrickID) ([]BrickID, bool) {
	inRigid := mapset.New[BrickID]()
	for _, id := range rigid {
		inRigid.Put(id)
	}
	seen := mapset.New[BrickID]()
	var riders []BrickID

	for _, id := range rigid {
		n, ok := p.graph.Node(id)
		if !ok {
			continue
		}
		for _, nb := range n.Neighbors() {
			if inRigid.Has(nb) || seen.Has(nb) || p.graph.Path(nb) != PathNone {
				continue
			}
			group, eligible := p.floatingGroup(nb, inRigid, seen)
			if !eligible {
				continue
			}
			for _, m := range group {
				if p.standingOn(m) {
					return nil, false
				}
			}
			riders = append(riders, group...)
		}
	}
	return riders, true
}

// floatingGroup returns the connected bricks without an anchor path that
// contain start, marking each one seen. The group is ineligible when any
// member touches an anchored brick outside the rigid chain.
func (p *Picker) floatingGroup(start BrickID, inRigid, seen mapset.Set[BrickID]) ([]BrickID, bool) {
	seen.Put(start)
	stack := []BrickID{start}
	var group []BrickID
	eligible := true

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, id)

		n, ok := p.graph.Node(id)
		if !ok {
			continue
		}
		for _, nb := range n.Neighbors() {
			if inRigid.Has(nb) || seen.Has(nb) {
				continue
			}
			if p.graph.Path(nb) != PathNone {
				eligible = false
				continue
			}
			seen.Put(nb)
			stack = append(stack, nb)
		}
	}
	return group, eligible
}
