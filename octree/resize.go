package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/dynoctree/spatialmath"
)

// grow doubles the root cell toward p. The old root becomes the child of the new root in the
// octant it occupies.
func (t *Tree) grow(p r3.Vector) {
	old := t.root
	o := t.pools.node(old)
	half := o.halfSize
	origin := o.origin.Add(spatialmath.GrowthDirection(o.origin, p).Mul(half))
	oldOrigin := o.origin

	root := t.pools.allocNode(innerNode, origin, half*2, noNode)
	nr := t.pools.node(root)
	nr.children[spatialmath.OctantIndex(origin, oldOrigin)] = old
	nr.numChildren = 1
	t.pools.node(old).parent = root

	t.root = root
	t.maxDepth++
}

// Shrink collapses the root into its only child for as long as the root holds no point and that
// child is an inner node. It returns the number of levels removed.
func (t *Tree) Shrink() int {
	levels := 0
	for {
		r := t.pools.node(t.root)
		if r.single != noPoint || r.numChildren != 1 {
			break
		}
		child := t.onlyChild(t.root)
		c := t.pools.node(child)
		if c.kind == leafNode {
			break
		}
		c.parent = noNode
		t.pools.releaseNode(t.root)
		t.root = child
		t.maxDepth--
		levels++
	}
	if levels > 0 {
		t.logger.Debugw("shrank octree", "levels", levels, "half_size", t.HalfSize(), "max_depth", t.maxDepth)
	}
	return levels
}
