package octree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/dynoctree/pointcloud"
)

// Insert adds a point at p with the given id. The position must lie strictly inside the root
// cell; use SafeInsert to grow the tree as needed.
func (t *Tree) Insert(p r3.Vector, id int) (PointHandle, error) {
	return t.InsertPoint(pointcloud.Point{P: p, ID: id})
}

// InsertPoint adds pt to the tree without growing it. It returns ErrOutOfBounds when pt is not
// strictly inside the root cell.
func (t *Tree) InsertPoint(pt pointcloud.Point) (PointHandle, error) {
	if err := checkPosition(pt.P); err != nil {
		return PointHandle{}, err
	}
	if !t.Contains(pt.P) {
		return PointHandle{}, errors.Wrapf(ErrOutOfBounds, "point %d at %v", pt.ID, pt.P)
	}
	pid := t.pools.allocPoint(pt)
	t.insertAt(t.root, pid, 0)
	t.size++
	return t.pools.handle(pid), nil
}

// SafeInsert adds a point at p with the given id, growing the root cell until it contains p.
func (t *Tree) SafeInsert(p r3.Vector, id int) (PointHandle, error) {
	return t.SafeInsertPoint(pointcloud.Point{P: p, ID: id})
}

// SafeInsertPoint adds pt to the tree, growing the root cell until it contains pt.
func (t *Tree) SafeInsertPoint(pt pointcloud.Point) (PointHandle, error) {
	if err := checkPosition(pt.P); err != nil {
		return PointHandle{}, err
	}
	grown := 0
	for !t.Contains(pt.P) {
		t.grow(pt.P)
		grown++
	}
	if grown > 0 {
		t.logger.Debugw("grew octree", "steps", grown, "half_size", t.HalfSize(), "max_depth", t.maxDepth)
	}
	return t.InsertPoint(pt)
}

// insertAt stores pid in the subtree rooted at id, which lies at the given depth.
func (t *Tree) insertAt(id nodeID, pid pointID, depth int) {
	pos := t.pools.position(pid)
	for {
		nd := t.pools.node(id)

		if t.atFloor(nd, depth) {
			if nd.single != noPoint {
				// a floor cell keeps everything in buckets
				held := nd.single
				nd.single = noPoint
				t.insertAt(id, held, depth)
				nd = t.pools.node(id)
			}
			octant := t.octantOf(id, pos)
			leaf := nd.children[octant]
			if leaf == noNode {
				leaf = t.split(id, octant, true)
			}
			bucket := t.pools.node(leaf)
			bucket.points = append(bucket.points, pid)
			return
		}

		if nd.numChildren == 0 {
			if nd.single == noPoint {
				nd.single = pid
				return
			}
			// contested: push the held point one level down, then route the new one through the
			// children on the next iteration
			held := nd.single
			nd.single = noPoint
			child := t.split(id, t.octantOf(id, t.pools.position(held)), false)
			t.insertAt(child, held, depth+1)
			continue
		}

		octant := t.octantOf(id, pos)
		child := nd.children[octant]
		if child == noNode {
			child = t.split(id, octant, false)
		}
		id = child
		depth++
	}
}
