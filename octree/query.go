package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/dynoctree/pointcloud"
	"go.viam.com/dynoctree/spatialmath"
)

// QueryRadius returns every point whose squared distance to center is strictly less than
// radius squared.
func (t *Tree) QueryRadius(center r3.Vector, radius float64) []pointcloud.Point {
	return t.QueryRadiusInto(nil, center, radius)
}

// QueryRadiusInto is QueryRadius appending to dst, so a caller querying every frame can reuse
// one buffer.
func (t *Tree) QueryRadiusInto(dst []pointcloud.Point, center r3.Vector, radius float64) []pointcloud.Point {
	if !validRadius(radius) || !spatialmath.IsFinite(center) {
		return dst
	}
	box := spatialmath.NewAABBAround(center, radius)
	r2 := radius * radius

	within := func(pid pointID) {
		p := t.pools.points[pid].point
		if p.DistanceSquared(center) < r2 {
			dst = append(dst, p)
		}
	}

	stack := append(t.stack[:0], t.root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.pools.nodes[id]
		if !spatialmath.CubeOverlapsBox(nd.origin, nd.halfSize, box) {
			continue
		}
		if nd.kind == leafNode {
			for _, pid := range nd.points {
				within(pid)
			}
			continue
		}
		if nd.single != noPoint {
			within(nd.single)
		}
		if nd.numChildren == 0 {
			continue
		}
		for _, child := range nd.children {
			if child != noNode {
				stack = append(stack, child)
			}
		}
	}
	t.stack = stack
	return dst
}
