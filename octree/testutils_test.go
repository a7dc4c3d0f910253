package octree

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/dynoctree/logging"
	"go.viam.com/dynoctree/spatialmath"
)

func createNewTree(t *testing.T, origin r3.Vector, halfSize float64, maxDepth int, minimumNodeSize float64) *Tree {
	t.Helper()
	tree, err := New(origin, halfSize, maxDepth, minimumNodeSize, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return tree
}

// validateTree walks the whole tree and checks its structural invariants: cell sizes and
// offsets, parent links, the single-point-xor-children rule, leaf placement at the floor,
// containment of every stored point, and pool bookkeeping. At most one empty non-root node, a
// root that was grown around while empty, is allowed.
func validateTree(t *testing.T, tree *Tree) {
	t.Helper()

	root := tree.pools.node(tree.root)
	test.That(t, root.kind, test.ShouldEqual, innerNode)
	test.That(t, root.parent, test.ShouldEqual, noNode)

	var points, inner, leaves, placeholders int
	var visit func(id nodeID, depth int)
	visit = func(id nodeID, depth int) {
		nd := tree.pools.node(id)
		cell := spatialmath.NewCube(nd.origin, nd.halfSize)

		switch nd.kind {
		case leafNode:
			leaves++
			test.That(t, nd.numChildren, test.ShouldEqual, 0)
			test.That(t, nd.single, test.ShouldEqual, noPoint)
			test.That(t, len(nd.points), test.ShouldBeGreaterThan, 0)
			parent := tree.pools.node(nd.parent)
			test.That(t, tree.atFloor(parent, depth-1), test.ShouldBeTrue)
			for _, pid := range nd.points {
				test.That(t, tree.pools.points[pid].live, test.ShouldBeTrue)
				test.That(t, cell.ContainsInclusive(tree.pools.position(pid)), test.ShouldBeTrue)
			}
			points += len(nd.points)
			return
		case innerNode:
			inner++
		default:
			t.Fatalf("reachable node %d is %v", id, nd.kind)
		}

		if nd.single != noPoint {
			test.That(t, nd.numChildren, test.ShouldEqual, 0)
			test.That(t, tree.atFloor(nd, depth), test.ShouldBeFalse)
			test.That(t, tree.pools.points[nd.single].live, test.ShouldBeTrue)
			test.That(t, cell.ContainsInclusive(tree.pools.position(nd.single)), test.ShouldBeTrue)
			points++
		}
		if id != tree.root && nd.single == noPoint && nd.numChildren == 0 {
			// an empty root that was grown around stays until a shrink lifts it back out
			placeholders++
		}

		count := 0
		for octant, child := range nd.children {
			if child == noNode {
				continue
			}
			count++
			c := tree.pools.node(child)
			test.That(t, c.parent, test.ShouldEqual, id)
			test.That(t, c.halfSize, test.ShouldEqual, nd.halfSize/2)
			want := cell.Child(octant).Center
			test.That(t, c.origin.X, test.ShouldAlmostEqual, want.X)
			test.That(t, c.origin.Y, test.ShouldAlmostEqual, want.Y)
			test.That(t, c.origin.Z, test.ShouldAlmostEqual, want.Z)
			if tree.atFloor(nd, depth) {
				test.That(t, c.kind, test.ShouldEqual, leafNode)
			} else {
				test.That(t, c.kind, test.ShouldEqual, innerNode)
			}
			visit(child, depth+1)
		}
		test.That(t, count, test.ShouldEqual, nd.numChildren)
	}
	visit(tree.root, 0)
	test.That(t, placeholders, test.ShouldBeLessThanOrEqualTo, 1)

	test.That(t, points, test.ShouldEqual, tree.Len())
	test.That(t, inner, test.ShouldEqual, tree.pools.liveInner)
	test.That(t, leaves, test.ShouldEqual, tree.pools.liveLeaf)
	test.That(t, inner+leaves+len(tree.pools.freeNodes), test.ShouldEqual, len(tree.pools.nodes))
	test.That(t, points+len(tree.pools.freePoints), test.ShouldEqual, len(tree.pools.points))
}
