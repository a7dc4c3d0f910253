package spatialmath

import "github.com/golang/geo/r3"

// Octant bits. An octant index is the OR of the bits of every axis on which the point is
// greater than or equal to the cell center.
const (
	OctantX = 1 << 2
	OctantY = 1 << 1
	OctantZ = 1 << 0

	// NumOctants is the number of sub-cells of a cube.
	NumOctants = 8
)

// OctantIndex classifies p into one of the eight octants around origin. Ties go to the greater
// side so every point maps to exactly one octant.
func OctantIndex(origin, p r3.Vector) int {
	idx := 0
	if p.X >= origin.X {
		idx |= OctantX
	}
	if p.Y >= origin.Y {
		idx |= OctantY
	}
	if p.Z >= origin.Z {
		idx |= OctantZ
	}
	return idx
}

// OctantOffset returns the offset from a cell center to the center of the given octant's
// sub-cell, where d is the distance along each axis.
func OctantOffset(octant int, d float64) r3.Vector {
	off := r3.Vector{X: -d, Y: -d, Z: -d}
	if octant&OctantX != 0 {
		off.X = d
	}
	if octant&OctantY != 0 {
		off.Y = d
	}
	if octant&OctantZ != 0 {
		off.Z = d
	}
	return off
}

// GrowthDirection returns, per axis, +1 when toward lies on the greater or equal side of origin
// and -1 otherwise.
func GrowthDirection(origin, toward r3.Vector) r3.Vector {
	dir := r3.Vector{X: -1, Y: -1, Z: -1}
	if toward.X >= origin.X {
		dir.X = 1
	}
	if toward.Y >= origin.Y {
		dir.Y = 1
	}
	if toward.Z >= origin.Z {
		dir.Z = 1
	}
	return dir
}
