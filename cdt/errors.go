package cdt

import "errors"

var (
	// ErrInvalidVertexIndex indicates an edge referenced a point index
	// outside [0, len(points)). This is a programmer error: the caller is
	// responsible for passing edges that index into the supplied points.
	ErrInvalidVertexIndex = errors.New("cdt2d: invalid vertex index in edge")

	// ErrVerticalConstraint indicates a constraint edge had equal-x
	// endpoints. Returned only when Options.RejectVertical is set; by
	// default such edges are silently dropped instead.
	ErrVerticalConstraint = errors.New("cdt2d: vertical constraint edge")
)
