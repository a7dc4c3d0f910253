package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max r3.Vector
}

// NewAABBAround returns the box centered at center extending halfExtent along every axis.
func NewAABBAround(center r3.Vector, halfExtent float64) AABB {
	return AABB{Min: SubScalar(center, halfExtent), Max: AddScalar(center, halfExtent)}
}

// Overlaps reports whether two boxes intersect. Touching faces count as overlapping.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether p lies inside the box or on its surface.
func (b AABB) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// CubeOverlapsBox is the allocation free form of Cube.Overlaps used on hot paths.
func CubeOverlapsBox(center r3.Vector, halfSize float64, b AABB) bool {
	return math.Abs(center.X-clamp(center.X, b.Min.X, b.Max.X)) <= halfSize &&
		math.Abs(center.Y-clamp(center.Y, b.Min.Y, b.Max.Y)) <= halfSize &&
		math.Abs(center.Z-clamp(center.Z, b.Min.Z, b.Max.Z)) <= halfSize
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
