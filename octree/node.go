package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/dynoctree/spatialmath"
)

func (t *Tree) octantOf(id nodeID, p r3.Vector) int {
	return spatialmath.OctantIndex(t.pools.nodes[id].origin, p)
}

// split materializes a child of parent in the given octant, as a leaf bucket or an inner node.
func (t *Tree) split(parent nodeID, octant int, asLeaf bool) nodeID {
	p := t.pools.node(parent)
	half := p.halfSize / 2
	origin := p.origin.Add(spatialmath.OctantOffset(octant, half))

	kind := innerNode
	if asLeaf {
		kind = leafNode
	}
	child := t.pools.allocNode(kind, origin, half, parent)

	p = t.pools.node(parent)
	p.children[octant] = child
	p.numChildren++
	return child
}

// removeChildSlot detaches child from parent and releases it. Every ancestor left without
// children or a point is released in turn; the root is never released.
func (t *Tree) removeChildSlot(parent, child nodeID) {
	for {
		p := t.pools.node(parent)
		for i, c := range p.children {
			if c == child {
				p.children[i] = noNode
				p.numChildren--
				break
			}
		}
		t.pools.releaseNode(child)

		if parent == t.root || p.numChildren > 0 || p.single != noPoint {
			return
		}
		child, parent = parent, p.parent
	}
}

// removeFromLeaf drops every bucket entry accepted by match and returns how many it dropped.
// An emptied leaf is merged away.
func (t *Tree) removeFromLeaf(leaf nodeID, match func(pointID) bool) int {
	nd := t.pools.node(leaf)
	kept := nd.points[:0]
	removed := 0
	for _, pid := range nd.points {
		if match(pid) {
			t.pools.releasePoint(pid)
			removed++
			continue
		}
		kept = append(kept, pid)
	}
	nd.points = kept

	if len(kept) == 0 && removed > 0 {
		t.removeChildSlot(nd.parent, leaf)
	}
	return removed
}

// removeSingle drops the point held directly by an inner node, merging the node away if it is
// now empty.
func (t *Tree) removeSingle(id nodeID) {
	nd := t.pools.node(id)
	t.pools.releasePoint(nd.single)
	nd.single = noPoint
	if id != t.root && nd.numChildren == 0 {
		t.removeChildSlot(nd.parent, id)
	}
}

func (t *Tree) onlyChild(id nodeID) nodeID {
	for _, c := range t.pools.nodes[id].children {
		if c != noNode {
			return c
		}
	}
	return noNode
}
