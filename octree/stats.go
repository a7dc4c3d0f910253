package octree

import (
	"fmt"

	"go.viam.com/dynoctree/pointcloud"
)

// Stats describes the shape of a tree and the state of its recycling pools.
type Stats struct {
	Points       int
	InnerNodes   int
	LeafNodes    int
	Depth        int
	PooledNodes  int
	PooledPoints int
	MaxDepth     int
	HalfSize     float64
}

// String returns a human readable summary of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("%d points in %d inner and %d leaf nodes, depth %d/%d, pooled %d nodes and %d points",
		s.Points, s.InnerNodes, s.LeafNodes, s.Depth, s.MaxDepth, s.PooledNodes, s.PooledPoints)
}

// Stats reports counts for the tree and its pools.
func (t *Tree) Stats() Stats {
	return Stats{
		Points:       t.size,
		InnerNodes:   t.pools.liveInner,
		LeafNodes:    t.pools.liveLeaf,
		Depth:        t.depth(t.root),
		PooledNodes:  len(t.pools.freeNodes),
		PooledPoints: len(t.pools.freePoints),
		MaxDepth:     t.maxDepth,
		HalfSize:     t.HalfSize(),
	}
}

func (t *Tree) depth(id nodeID) int {
	deepest := 0
	for _, child := range t.pools.nodes[id].children {
		if child == noNode {
			continue
		}
		if d := t.depth(child) + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Iterate calls fn for every point in the tree until fn returns false. The tree must not be
// modified during iteration.
func (t *Tree) Iterate(fn func(h PointHandle, p pointcloud.Point) bool) {
	t.walk(t.root, func(id nodeID) bool {
		nd := &t.pools.nodes[id]
		if nd.single != noPoint && !fn(t.pools.handle(nd.single), t.pools.points[nd.single].point) {
			return false
		}
		for _, pid := range nd.points {
			if !fn(t.pools.handle(pid), t.pools.points[pid].point) {
				return false
			}
		}
		return true
	})
}

// Points returns every point in the tree.
func (t *Tree) Points() []pointcloud.Point {
	out := make([]pointcloud.Point, 0, t.size)
	t.Iterate(func(_ PointHandle, p pointcloud.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Clear removes every point and returns all nodes below the root to the pools. The root cell
// keeps its position and size.
func (t *Tree) Clear() {
	root := t.pools.node(t.root)
	if root.single != noPoint {
		t.pools.releasePoint(root.single)
		root.single = noPoint
	}
	for i, child := range root.children {
		if child == noNode {
			continue
		}
		t.releaseSubtree(child)
		root = t.pools.node(t.root)
		root.children[i] = noNode
	}
	root.numChildren = 0
	t.size = 0
}

func (t *Tree) releaseSubtree(id nodeID) {
	nd := t.pools.node(id)
	if nd.single != noPoint {
		t.pools.releasePoint(nd.single)
	}
	for _, pid := range nd.points {
		t.pools.releasePoint(pid)
	}
	for _, child := range nd.children {
		if child != noNode {
			t.releaseSubtree(child)
		}
	}
	t.pools.releaseNode(id)
}

// walk visits id and its descendants depth first until visit returns false.
func (t *Tree) walk(id nodeID, visit func(nodeID) bool) bool {
	if !visit(id) {
		return false
	}
	for _, child := range t.pools.nodes[id].children {
		if child != noNode && !t.walk(child, visit) {
			return false
		}
	}
	return true
}
