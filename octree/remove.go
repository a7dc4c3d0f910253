package octree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Remove deletes the point a handle refers to.
func (t *Tree) Remove(h PointHandle) error {
	pid, ok := t.pools.resolve(h)
	if !ok {
		return ErrStaleHandle
	}
	pos := t.pools.position(pid)
	if t.removeWhere(pos, func(candidate pointID) bool { return candidate == pid }) == 0 {
		return errors.Wrapf(ErrNotFound, "point at %v", pos)
	}
	return nil
}

// RemoveByID deletes the points with the given id found along the path to approx. The search
// only follows that path, so approx must be the position the point was stored at.
func (t *Tree) RemoveByID(id int, approx r3.Vector) error {
	if err := checkPosition(approx); err != nil {
		return err
	}
	match := func(candidate pointID) bool { return t.pools.points[candidate].point.ID == id }
	if t.removeWhere(approx, match) == 0 {
		return errors.Wrapf(ErrNotFound, "point %d near %v", id, approx)
	}
	return nil
}

// SafeRemove is Remove followed by Shrink.
func (t *Tree) SafeRemove(h PointHandle) error {
	if err := t.Remove(h); err != nil {
		return err
	}
	t.Shrink()
	return nil
}

// SafeRemoveByID is RemoveByID followed by Shrink.
func (t *Tree) SafeRemoveByID(id int, approx r3.Vector) error {
	if err := t.RemoveByID(id, approx); err != nil {
		return err
	}
	t.Shrink()
	return nil
}

// removeWhere walks the octants containing pos and removes the matching points from the bucket
// or inner node it ends at. It returns the number of points removed.
func (t *Tree) removeWhere(pos r3.Vector, match func(pointID) bool) int {
	id := t.root
	for {
		nd := t.pools.node(id)
		if nd.kind == leafNode {
			removed := t.removeFromLeaf(id, match)
			t.size -= removed
			return removed
		}
		if nd.single != noPoint && match(nd.single) {
			t.removeSingle(id)
			t.size--
			return 1
		}
		if nd.numChildren == 0 {
			return 0
		}
		child := nd.children[t.octantOf(id, pos)]
		if child == noNode {
			return 0
		}
		id = child
	}
}
