// Package spatialmath holds the axis-aligned geometry used to partition space: cubic cells,
// boxes and the octant addressing shared by every cell.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Cube is an axis-aligned cubic cell described by its center and half of its side length.
type Cube struct {
	Center   r3.Vector
	HalfSize float64
}

// NewCube returns a cube centered at center with the given half side length.
func NewCube(center r3.Vector, halfSize float64) Cube {
	return Cube{Center: center, HalfSize: halfSize}
}

// Min returns the corner of the cube with the smallest coordinates.
func (c Cube) Min() r3.Vector {
	return SubScalar(c.Center, c.HalfSize)
}

// Max returns the corner of the cube with the largest coordinates.
func (c Cube) Max() r3.Vector {
	return AddScalar(c.Center, c.HalfSize)
}

// ContainsExclusive reports whether p lies strictly inside the cube on every axis. A point on a
// face of the cube is outside.
func (c Cube) ContainsExclusive(p r3.Vector) bool {
	lo, hi := c.Min(), c.Max()
	return p.X > lo.X && p.X < hi.X &&
		p.Y > lo.Y && p.Y < hi.Y &&
		p.Z > lo.Z && p.Z < hi.Z
}

// ContainsInclusive reports whether p lies inside the cube or on its surface.
func (c Cube) ContainsInclusive(p r3.Vector) bool {
	lo, hi := c.Min(), c.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// Box returns the cube as an axis-aligned box.
func (c Cube) Box() AABB {
	return NewAABBAround(c.Center, c.HalfSize)
}

// Overlaps reports whether the cube and b share at least one point.
func (c Cube) Overlaps(b AABB) bool {
	return c.Box().Overlaps(b)
}

// Octant returns the octant of the cube that p falls into. See OctantIndex.
func (c Cube) Octant(p r3.Vector) int {
	return OctantIndex(c.Center, p)
}

// Child returns the sub-cube occupying the given octant.
func (c Cube) Child(octant int) Cube {
	half := c.HalfSize / 2
	return Cube{Center: c.Center.Add(OctantOffset(octant, half)), HalfSize: half}
}

// String returns a human readable string that represents this cube.
func (c Cube) String() string {
	return fmt.Sprintf("cube with center at %v and half size of %v", c.Center, c.HalfSize)
}

// AddScalar adds s to every component of v.
func AddScalar(v r3.Vector, s float64) r3.Vector {
	return r3.Vector{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubScalar subtracts s from every component of v.
func SubScalar(v r3.Vector, s float64) r3.Vector {
	return r3.Vector{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// DistanceSquared returns the squared euclidean distance between a and b.
func DistanceSquared(a, b r3.Vector) float64 {
	return a.Sub(b).Norm2()
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
func IsFinite(v r3.Vector) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
