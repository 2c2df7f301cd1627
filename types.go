// Package hungarian: domain types, options and sentinel errors.
// Algorithm entry points live in hungarian.go; this file carries ONLY the
// public surface shared by them. Errors are package-prefixed sentinels and
// MUST be matched with errors.Is; context wrapping happens at the boundary.
package hungarian

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Weight constrains the numeric types a cost matrix may carry: any integer
// (signed or unsigned) or floating-point type. The solver only ever adds,
// subtracts and compares weights; it performs no overflow checking, so the
// caller picks a type wide enough for roughly min(w,h)·maxEntry.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Unassigned marks a row (or column) that received no partner. It appears
// in Result.Assignment exactly height−width times when height > width.
const Unassigned = -1

// ErrInvalidDimensions is returned when width or height is not positive, or
// when len(costs) != width*height. Validation happens eagerly: no partial
// assignment is ever produced alongside this error.
var ErrInvalidDimensions = errors.New("hungarian: invalid matrix dimensions")

// Result is the outcome of one solve.
type Result[W Weight] struct {
	// Assignment has length height; Assignment[i] is the column matched to
	// row i, or Unassigned when rows outnumber columns and row i lost out.
	// Exactly min(width, height) entries are non-negative.
	Assignment []int

	// Cost is the sum of cost[i][Assignment[i]] over matched rows.
	Cost W

	// RowDuals and ColDuals hold the final dual potentials; populated only
	// under WithDuals, nil otherwise. RowDuals[i] pairs with row i,
	// ColDuals[j] with column j. The smaller side's potential is stored
	// positively and the larger side's negated, which keeps every value
	// representable for unsigned weight types. Feasibility therefore reads
	//
	//	RowDuals[i] − ColDuals[j] ≤ cost(i,j)   when height ≤ width
	//	ColDuals[j] − RowDuals[i] ≤ cost(i,j)   when height > width
	//
	// with equality on every matched pair, and the classical weak-duality
	// identity Cost = Σ(smaller side) − Σ(larger side). For Maximize the
	// potentials certify the internally minimized complement matrix.
	RowDuals []W
	ColDuals []W
}

// Options configures a solve. All fields default to off; see DefaultOptions.
type Options struct {
	// ReturnDuals requests the final potentials in Result.RowDuals/ColDuals.
	// Costs one extra O(w+h) copy; the hot path is unaffected.
	ReturnDuals bool
}

// Option is a functional option for Minimize and Maximize.
type Option func(*Options)

// WithDuals requests the final dual potentials as an optimality certificate.
func WithDuals() Option {
	return func(o *Options) {
		o.ReturnDuals = true
	}
}

// DefaultOptions returns the zero configuration: no duals reported.
func DefaultOptions() Options {
	return Options{}
}
