// Package pointcloud defines the identified point stored by the octree and helpers over
// collections of them.
package pointcloud

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Point is a position in space tagged with a caller supplied identifier.
type Point struct {
	P  r3.Vector
	ID int
}

// NewPoint returns a point at (x, y, z) with the given id.
func NewPoint(x, y, z float64, id int) Point {
	return Point{P: NewVector(x, y, z), ID: id}
}

// DistanceSquared returns the squared distance between the point and v.
func (p Point) DistanceSquared(v r3.Vector) float64 {
	return p.P.Sub(v).Norm2()
}

// String returns a human readable string that represents this point.
func (p Point) String() string {
	return fmt.Sprintf("point %d at (%g, %g, %g)", p.ID, p.P.X, p.P.Y, p.P.Z)
}

// Points is a series of identified points.
type Points []Point

// Len returns the number of points.
func (ps Points) Len() int {
	return len(ps)
}

// Swap swaps two points positionally.
func (ps Points) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

// Less orders points by ID, then by position.
func (ps Points) Less(i, j int) bool {
	if ps[i].ID != ps[j].ID {
		return ps[i].ID < ps[j].ID
	}
	return ps[i].P.Cmp(ps[j].P) < 0
}

// IDs returns the identifiers of the given points in order.
func IDs(points []Point) []int {
	return lo.Map(points, func(p Point, _ int) int { return p.ID })
}

// SortedIDs returns the identifiers of the given points in ascending order.
func SortedIDs(points []Point) []int {
	ids := IDs(points)
	sort.Ints(ids)
	return ids
}

// WithinRadius returns the points whose squared distance to center is strictly less than
// radius squared. It is the exhaustive reference for octree radius queries.
func WithinRadius(points []Point, center r3.Vector, radius float64) []Point {
	r2 := radius * radius
	return lo.Filter(points, func(p Point, _ int) bool { return p.DistanceSquared(center) < r2 })
}
