// Package octree implements a dynamic octree of identified points. Points can be inserted and
// removed one at a time at high frequency; the root cell grows to take in points outside of it
// and shrinks back when they leave. Radius queries prune by cell bounds instead of scanning.
//
// Each node is either an inner node, which links to up to eight children or holds a single point
// until a second one contests its cell, or a leaf node, which buckets every point that reaches
// the depth or size floor. Nodes and point records live in recycled tables owned by the tree.
//
// A Tree is not safe for concurrent use; callers sharing one must serialize every call.
package octree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/dynoctree/logging"
	"go.viam.com/dynoctree/pointcloud"
	"go.viam.com/dynoctree/spatialmath"
)

// MinRootHalfSize is the smallest half size a tree is built with; smaller values are clamped up
// so the root never degenerates to a point.
const MinRootHalfSize = 1e-3

// Tree is a dynamic point octree.
type Tree struct {
	logger logging.Logger
	pools  pools
	root   nodeID
	size   int

	maxDepth        int
	minimumNodeSize float64

	stack []nodeID
}

// New creates an empty tree whose root cell is centered at origin with the given half size.
// maxDepth and minimumNodeSize bound subdivision: a cell at maxDepth, or with a half size no
// larger than minimumNodeSize, buckets its points in leaves.
func New(origin r3.Vector, halfSize float64, maxDepth int, minimumNodeSize float64, logger logging.Logger) (*Tree, error) {
	cfg := &Config{Origin: origin, HalfSize: halfSize, MaxDepth: maxDepth, MinimumNodeSize: minimumNodeSize}
	return NewFromConfig(cfg, logger)
}

// NewFromConfig creates an empty tree described by cfg.
func NewFromConfig(cfg *Config, logger logging.Logger) (*Tree, error) {
	if cfg == nil {
		return nil, errors.New("octree config is required")
	}
	if _, err := cfg.Validate("octree"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("octree")
	}

	halfSize := cfg.HalfSize
	if halfSize < MinRootHalfSize {
		logger.Debugw("clamping root half size", "requested", halfSize, "clamped", MinRootHalfSize)
		halfSize = MinRootHalfSize
	}

	t := &Tree{
		logger:          logger,
		maxDepth:        cfg.MaxDepth,
		minimumNodeSize: cfg.MinimumNodeSize,
	}
	t.root = t.pools.allocNode(innerNode, cfg.Origin, halfSize, noNode)
	return t, nil
}

// Len returns the number of points stored in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Origin returns the center of the root cell.
func (t *Tree) Origin() r3.Vector {
	return t.pools.nodes[t.root].origin
}

// HalfSize returns the half side length of the root cell.
func (t *Tree) HalfSize() float64 {
	return t.pools.nodes[t.root].halfSize
}

// MaxDepth returns the current depth budget. It rises by one on every growth and falls by one
// on every shrink so leaves keep the same absolute size.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// MinimumNodeSize returns the half size at or below which cells bucket their points.
func (t *Tree) MinimumNodeSize() float64 {
	return t.minimumNodeSize
}

// Bounds returns the root cell.
func (t *Tree) Bounds() spatialmath.Cube {
	return spatialmath.NewCube(t.Origin(), t.HalfSize())
}

// Contains reports whether p lies strictly inside the root cell.
func (t *Tree) Contains(p r3.Vector) bool {
	return t.Bounds().ContainsExclusive(p)
}

// Point returns the point a handle refers to.
func (t *Tree) Point(h PointHandle) (pointcloud.Point, bool) {
	pid, ok := t.pools.resolve(h)
	if !ok {
		return pointcloud.Point{}, false
	}
	return t.pools.points[pid].point, true
}

// AdjustOrigin moves the center of an empty root cell without resizing it. It is meant to
// recenter a fresh tree before its first insert.
func (t *Tree) AdjustOrigin(origin r3.Vector) error {
	if !spatialmath.IsFinite(origin) {
		return errors.Wrapf(ErrInvalidPosition, "origin %v", origin)
	}
	root := t.pools.node(t.root)
	if root.numChildren > 0 || root.single != noPoint {
		return ErrRootNotEmpty
	}
	root.origin = origin
	return nil
}

func (t *Tree) atFloor(nd *node, depth int) bool {
	return depth >= t.maxDepth || nd.halfSize <= t.minimumNodeSize
}

func checkPosition(p r3.Vector) error {
	if !spatialmath.IsFinite(p) {
		return errors.Wrapf(ErrInvalidPosition, "position %v", p)
	}
	return nil
}

// validRadius rejects negative and NaN radii.
func validRadius(radius float64) bool {
	return radius >= 0
}
