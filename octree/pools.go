package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/dynoctree/pointcloud"
	"go.viam.com/dynoctree/spatialmath"
)

// nodeID and pointID index the node and point tables of a tree's pools.
type (
	nodeID  int32
	pointID int32
)

const (
	noNode  nodeID  = -1
	noPoint pointID = -1
)

// nodeKind tags the variant a node slot currently holds.
type nodeKind uint8

const (
	pooledNode nodeKind = iota
	innerNode
	leafNode
)

func (k nodeKind) String() string {
	switch k {
	case innerNode:
		return "inner"
	case leafNode:
		return "leaf"
	default:
		return "pooled"
	}
}

var noChildren = [spatialmath.NumOctants]nodeID{noNode, noNode, noNode, noNode, noNode, noNode, noNode, noNode}

// node is a cubic cell. An inner node holds up to eight children indexed by octant, or a single
// point while it has no children. A leaf node holds a bucket of points and is only created at
// the depth or size floor.
type node struct {
	kind     nodeKind
	origin   r3.Vector
	halfSize float64
	parent   nodeID

	children    [spatialmath.NumOctants]nodeID
	numChildren int
	single      pointID

	points []pointID
}

// pointRecord is a point slot. gen changes every time the slot is released so handles to a
// previous occupant stop resolving.
type pointRecord struct {
	point pointcloud.Point
	gen   uint32
	live  bool
}

// PointHandle refers to a point stored in a Tree. The zero value refers to no point.
type PointHandle struct {
	index pointID
	gen   uint32
}

// IsZero reports whether the handle was never issued by a tree.
func (h PointHandle) IsZero() bool {
	return h.gen == 0
}

// pools recycles node and point slots so high frequency insert/remove does not allocate. A
// slot is either live (reachable from the root) or on a free list, never both.
type pools struct {
	nodes      []node
	freeNodes  []nodeID
	points     []pointRecord
	freePoints []pointID

	liveInner int
	liveLeaf  int
}

func (pl *pools) node(id nodeID) *node {
	return &pl.nodes[id]
}

// allocNode hands out a node slot, reusing a released one when available. Pointers returned by
// node are invalidated by allocNode.
func (pl *pools) allocNode(kind nodeKind, origin r3.Vector, halfSize float64, parent nodeID) nodeID {
	var id nodeID
	if n := len(pl.freeNodes); n > 0 {
		id = pl.freeNodes[n-1]
		pl.freeNodes = pl.freeNodes[:n-1]
	} else {
		pl.nodes = append(pl.nodes, node{})
		id = nodeID(len(pl.nodes) - 1)
	}

	nd := &pl.nodes[id]
	nd.kind = kind
	nd.origin = origin
	nd.halfSize = halfSize
	nd.parent = parent
	nd.children = noChildren
	nd.numChildren = 0
	nd.single = noPoint
	nd.points = nd.points[:0]

	switch kind {
	case innerNode:
		pl.liveInner++
	case leafNode:
		pl.liveLeaf++
	case pooledNode:
		panic("octree: cannot allocate a pooled node")
	}
	return id
}

// releaseNode returns a node to the free list. Its bucket keeps its capacity for the next
// leaf handed out from the slot.
func (pl *pools) releaseNode(id nodeID) {
	nd := &pl.nodes[id]
	switch nd.kind {
	case innerNode:
		pl.liveInner--
	case leafNode:
		pl.liveLeaf--
	case pooledNode:
		panic("octree: node released twice")
	}
	nd.kind = pooledNode
	nd.parent = noNode
	nd.single = noPoint
	nd.points = nd.points[:0]
	pl.freeNodes = append(pl.freeNodes, id)
}

func (pl *pools) allocPoint(p pointcloud.Point) pointID {
	var id pointID
	if n := len(pl.freePoints); n > 0 {
		id = pl.freePoints[n-1]
		pl.freePoints = pl.freePoints[:n-1]
	} else {
		pl.points = append(pl.points, pointRecord{gen: 1})
		id = pointID(len(pl.points) - 1)
	}
	rec := &pl.points[id]
	rec.point = p
	rec.live = true
	return id
}

func (pl *pools) releasePoint(id pointID) {
	rec := &pl.points[id]
	if !rec.live {
		panic("octree: point released twice")
	}
	rec.live = false
	rec.point = pointcloud.Point{}
	rec.gen++
	if rec.gen == 0 {
		rec.gen = 1
	}
	pl.freePoints = append(pl.freePoints, id)
}

func (pl *pools) handle(id pointID) PointHandle {
	return PointHandle{index: id, gen: pl.points[id].gen}
}

// resolve returns the slot a handle refers to, if the handle is still current.
func (pl *pools) resolve(h PointHandle) (pointID, bool) {
	if h.IsZero() || h.index < 0 || int(h.index) >= len(pl.points) {
		return noPoint, false
	}
	rec := &pl.points[h.index]
	if !rec.live || rec.gen != h.gen {
		return noPoint, false
	}
	return h.index, true
}

func (pl *pools) position(id pointID) r3.Vector {
	return pl.points[id].point.P
}
