// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All helpers MUST
// return these sentinels and tests MUST check them via errors.Is. No helper
// panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape is not
	// positive in both dimensions (rows <= 0 or cols <= 0).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid
	// range. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrRaggedRows is returned by FromRows when the input rows differ in
	// length; a cost matrix must be rectangular.
	ErrRaggedRows = errors.New("matrix: rows have unequal lengths")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was
	// passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
