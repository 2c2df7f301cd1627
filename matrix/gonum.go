// SPDX-License-Identifier: MIT

// Package matrix: gonum adapters. Cost matrices frequently come out of
// numeric pipelines as gonum values (distance matrices, similarity scores);
// these two helpers move data between mat.Matrix and Dense without forcing
// callers to hand-roll the index arithmetic.
package matrix

import "gonum.org/v1/gonum/mat"

// FromMat builds a Dense from any gonum mat.Matrix, mapping each entry
// through conv. A nil conv applies the plain numeric conversion W(v);
// supply one to round, clamp or rescale on ingestion.
// Returns ErrNilMatrix for a nil input and ErrInvalidDimensions for an
// empty one.
// Complexity: O(r·c).
func FromMat[W Number](m mat.Matrix, conv func(float64) W) (*Dense[W], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if conv == nil {
		conv = func(v float64) W { return W(v) }
	}

	d := &Dense[W]{r: rows, c: cols, data: make([]W, rows*cols)}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			d.data[i*cols+j] = conv(m.At(i, j))
		}
	}

	return d, nil
}

// ToMat exports the matrix as a gonum *mat.Dense, mapping each entry
// through conv; a nil conv applies float64(v).
// Complexity: O(r·c).
func (d *Dense[W]) ToMat(conv func(W) float64) *mat.Dense {
	if conv == nil {
		conv = func(v W) float64 { return float64(v) }
	}

	out := mat.NewDense(d.r, d.c, nil)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.Set(i, j, conv(d.data[i*d.c+j]))
		}
	}

	return out
}
