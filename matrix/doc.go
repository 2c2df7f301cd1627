// SPDX-License-Identifier: MIT

// Package matrix provides the dense cost-matrix glue around the hungarian
// solver: construction from rows or gonum matrices, padding, transposition
// and flattening into the row-major slice the solver consumes.
//
// The solver itself never needs this package — it takes a flat slice — but
// most callers start from structured data, and the helpers here keep the
// flattening, padding and orientation bookkeeping in one bounds-checked
// place.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/nwtnni/hungarian"
//	    "github.com/nwtnni/hungarian/matrix"
//	)
//
//	d, err := matrix.FromRows([][]int{
//	    {250, 400, 350},
//	    {400, 600, 350},
//	    {200, 400, 250},
//	})
//	if err != nil { ... }
//	res, err := hungarian.MinimizeMatrix(d)
//
// All errors are package-prefixed sentinels matched via errors.Is; public
// indexers return ErrIndexOutOfBounds instead of panicking.
package matrix
