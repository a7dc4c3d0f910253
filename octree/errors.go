package octree

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a removal does not match any stored point.
	ErrNotFound = errors.New("point not found in octree")

	// ErrStaleHandle is returned when a handle refers to a point that has already been removed.
	ErrStaleHandle = errors.New("point handle is stale")

	// ErrOutOfBounds is returned by the non-growing insert when the position is not strictly
	// inside the root cell.
	ErrOutOfBounds = errors.New("point is outside the bounds of this octree")

	// ErrRootNotEmpty is returned when the origin of a root that holds points is moved.
	ErrRootNotEmpty = errors.New("cannot adjust the origin of a non-empty octree")

	// ErrInvalidPosition is returned for positions with NaN or infinite components.
	ErrInvalidPosition = errors.New("position must be finite")
)
