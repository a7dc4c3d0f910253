package octree

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/dynoctree/pointcloud"
)

func TestInsertSinglePoint(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 10, 8, 1)

	h, err := tree.Insert(r3.Vector{X: 1, Y: 2, Z: 3}, 42)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, h.IsZero(), test.ShouldBeFalse)
	test.That(t, tree.Len(), test.ShouldEqual, 1)

	// an uncontested point is held by the root itself
	root := tree.pools.node(tree.root)
	test.That(t, root.numChildren, test.ShouldEqual, 0)
	test.That(t, root.single, test.ShouldNotEqual, noPoint)

	p, ok := tree.Point(h)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, p, test.ShouldResemble, pointcloud.NewPoint(1, 2, 3, 42))
	validateTree(t, tree)
}

func TestInsertSplitOnContest(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 10, 8, 1)

	_, err := tree.Insert(r3.Vector{X: -5, Y: -5, Z: -5}, 1)
	test.That(t, err, test.ShouldBeNil)
	_, err = tree.Insert(r3.Vector{X: 5, Y: 5, Z: 5}, 2)
	test.That(t, err, test.ShouldBeNil)

	root := tree.pools.node(tree.root)
	test.That(t, root.single, test.ShouldEqual, noPoint)
	test.That(t, root.numChildren, test.ShouldEqual, 2)
	test.That(t, root.children[0], test.ShouldNotEqual, noNode)
	test.That(t, root.children[7], test.ShouldNotEqual, noNode)

	for _, octant := range []int{0, 7} {
		child := tree.pools.node(root.children[octant])
		test.That(t, child.kind, test.ShouldEqual, innerNode)
		test.That(t, child.halfSize, test.ShouldEqual, 5)
		test.That(t, child.single, test.ShouldNotEqual, noPoint)
	}
	test.That(t, tree.pools.node(root.children[0]).origin, test.ShouldResemble, r3.Vector{X: -5, Y: -5, Z: -5})
	test.That(t, tree.pools.node(root.children[7]).origin, test.ShouldResemble, r3.Vector{X: 5, Y: 5, Z: 5})
	validateTree(t, tree)
}

func TestInsertNearbyPoints(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 10, 8, 1)

	_, err := tree.Insert(r3.Vector{X: 1, Y: 1, Z: 1}, 1)
	test.That(t, err, test.ShouldBeNil)
	_, err = tree.Insert(r3.Vector{X: 1, Y: 1, Z: 1.5}, 2)
	test.That(t, err, test.ShouldBeNil)

	// both points share octants down to the 1.25 cell, then part into separate floor cells
	// whose leaves bucket them
	stats := tree.Stats()
	test.That(t, stats.Points, test.ShouldEqual, 2)
	test.That(t, stats.InnerNodes, test.ShouldEqual, 6)
	test.That(t, stats.LeafNodes, test.ShouldEqual, 2)
	test.That(t, stats.Depth, test.ShouldEqual, 5)

	got := tree.QueryRadius(r3.Vector{X: 1, Y: 1, Z: 1}, 1)
	test.That(t, pointcloud.SortedIDs(got), test.ShouldResemble, []int{1, 2})
	validateTree(t, tree)
}

func TestInsertCoincidentPoints(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 8, 20, 0.5)

	p := r3.Vector{X: 3, Y: -2, Z: 1}
	for i := 0; i < 10; i++ {
		_, err := tree.Insert(p, i)
		test.That(t, err, test.ShouldBeNil)
	}

	// coincident points can only be separated by the size floor, which buckets all of them
	stats := tree.Stats()
	test.That(t, stats.LeafNodes, test.ShouldEqual, 1)
	test.That(t, stats.Points, test.ShouldEqual, 10)
	test.That(t, stats.Depth, test.ShouldEqual, 5)
	test.That(t, len(tree.QueryRadius(p, 1e-9)), test.ShouldEqual, 10)
	validateTree(t, tree)
}

func TestInsertAtZeroDepth(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 4, 0, 0)

	for i, p := range []r3.Vector{{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1.5, Y: 1, Z: 1}} {
		_, err := tree.Insert(p, i)
		test.That(t, err, test.ShouldBeNil)
	}
	stats := tree.Stats()
	test.That(t, stats.InnerNodes, test.ShouldEqual, 1)
	test.That(t, stats.LeafNodes, test.ShouldEqual, 2)
	test.That(t, stats.Depth, test.ShouldEqual, 1)
	validateTree(t, tree)
}

func TestInsertOutOfBounds(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 1, 4, 0.1)

	t.Run("outside the root", func(t *testing.T) {
		_, err := tree.Insert(r3.Vector{X: 2}, 1)
		test.That(t, errors.Is(err, ErrOutOfBounds), test.ShouldBeTrue)
	})

	t.Run("on the root boundary", func(t *testing.T) {
		_, err := tree.Insert(r3.Vector{X: 1}, 1)
		test.That(t, errors.Is(err, ErrOutOfBounds), test.ShouldBeTrue)
		_, err = tree.Insert(r3.Vector{Y: -1}, 1)
		test.That(t, errors.Is(err, ErrOutOfBounds), test.ShouldBeTrue)
	})

	t.Run("non finite", func(t *testing.T) {
		_, err := tree.Insert(r3.Vector{X: math.NaN()}, 1)
		test.That(t, errors.Is(err, ErrInvalidPosition), test.ShouldBeTrue)
		_, err = tree.SafeInsert(r3.Vector{Z: math.Inf(1)}, 1)
		test.That(t, errors.Is(err, ErrInvalidPosition), test.ShouldBeTrue)
	})

	test.That(t, tree.Len(), test.ShouldEqual, 0)
	test.That(t, tree.HalfSize(), test.ShouldEqual, 1)
	validateTree(t, tree)
}

func TestInsertExistingPoint(t *testing.T) {
	tree := createNewTree(t, r3.Vector{}, 10, 6, 0.5)

	pt := pointcloud.NewPoint(2, 2, 2, 5)
	h1, err := tree.InsertPoint(pt)
	test.That(t, err, test.ShouldBeNil)
	h2, err := tree.SafeInsertPoint(pt)
	test.That(t, err, test.ShouldBeNil)

	// the same value inserted twice is two independent records
	test.That(t, h1, test.ShouldNotResemble, h2)
	test.That(t, tree.Len(), test.ShouldEqual, 2)
	test.That(t, tree.Remove(h1), test.ShouldBeNil)
	got, ok := tree.Point(h2)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, got, test.ShouldResemble, pt)
	validateTree(t, tree)
}
