// SPDX-License-Identifier: MIT

// Package matrix: Dense is a generic row-major cost matrix storing its
// elements in a flat slice for cache friendliness and zero-copy handoff to
// the solver.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number constrains the element types a Dense may carry; it mirrors the
// weight constraint of the root package.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dense is a row-major r×c matrix of numeric values.
type Dense[W Number] struct {
	r, c int // number of rows and columns
	data []W // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense initialized to zeros.
// Returns ErrInvalidDimensions unless both dimensions are positive.
// Complexity: O(r·c) time and memory.
func NewDense[W Number](rows, cols int) (*Dense[W], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[W]{r: rows, c: cols, data: make([]W, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equally sized rows.
// Returns ErrInvalidDimensions for an empty input or empty rows, and
// ErrRaggedRows when row lengths differ.
// Complexity: O(r·c).
func FromRows[W Number](rows [][]W) (*Dense[W], error) {
	// Validate shape before any allocation.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	var row []W
	for _, row = range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
	}

	// Copy row by row into flat storage.
	d := &Dense[W]{r: len(rows), c: cols, data: make([]W, len(rows)*cols)}
	var i int
	for i, row = range rows {
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense[W]) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense[W]) Cols() int { return d.c }

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds wrapped with method context.
func (d *Dense[W]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*d.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (d *Dense[W]) At(row, col int) (W, error) {
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		var zero W

		return zero, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (d *Dense[W]) Set(row, col int, v W) error {
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy of the matrix.
// Complexity: O(r·c).
func (d *Dense[W]) Clone() *Dense[W] {
	return &Dense[W]{r: d.r, c: d.c, data: append([]W(nil), d.data...)}
}

// Flatten exposes the matrix as the (costs, width, height) triple the
// solver consumes. The returned slice aliases the matrix storage — the
// solver treats it as read-only; Clone first if mutation may follow.
// Complexity: O(1).
func (d *Dense[W]) Flatten() (costs []W, width, height int) {
	return d.data, d.c, d.r
}

// Transpose returns a new c×r matrix with rows and columns swapped.
// Complexity: O(r·c).
func (d *Dense[W]) Transpose() *Dense[W] {
	t := &Dense[W]{r: d.c, c: d.r, data: make([]W, len(d.data))}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			t.data[j*t.c+i] = d.data[i*d.c+j]
		}
	}

	return t
}

// PadSquare returns the matrix padded with fill entries to max(r,c)×max(r,c).
// A square already comes back as a plain clone. The usual fills are zero
// (feasibility padding) or the matrix maximum (neutral cost under
// minimization); the solver handles rectangular inputs natively, so padding
// is only needed when a downstream consumer insists on a square matrix.
// Complexity: O(n²), n = max(r,c).
func (d *Dense[W]) PadSquare(fill W) *Dense[W] {
	if d.r == d.c {
		return d.Clone()
	}
	n := d.r
	if d.c > n {
		n = d.c
	}

	p := &Dense[W]{r: n, c: n, data: make([]W, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i < d.r && j < d.c {
				p.data[i*n+j] = d.data[i*d.c+j]
			} else {
				p.data[i*n+j] = fill
			}
		}
	}

	return p
}
