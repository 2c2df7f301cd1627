// Package hungarian_test provides lightweight helpers shared across the
// *_test.go files in this package: a brute-force reference solver for small
// instances, assignment validity checks and deterministic random matrices.
package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/nwtnni/hungarian"
	"github.com/stretchr/testify/assert"
)

const (
	// seedDet is the deterministic seed for every RNG-based test; no
	// time-based randomness anywhere.
	seedDet = int64(7)

	// bruteMax caps the side length fed to the brute-force reference:
	// enumeration is factorial, 6 keeps it in the low thousands of paths.
	bruteMax = 6
)

// bruteForceCost returns the optimal total cost over all injective
// assignments of the smaller side, by exhaustive enumeration. Reference
// implementation only; factorial time.
func bruteForceCost[W hungarian.Weight](costs []W, width, height int) W {
	if height > width {
		// Transpose: the optimal total is orientation-independent.
		flipped := make([]W, len(costs))
		for i := 0; i < height; i++ {
			for j := 0; j < width; j++ {
				flipped[j*height+i] = costs[i*width+j]
			}
		}

		return bruteForceCost(flipped, height, width)
	}

	used := make([]bool, width)
	var recurse func(row int) (W, bool)
	recurse = func(row int) (W, bool) {
		if row == height {
			return 0, true
		}
		var best W
		found := false
		for j := 0; j < width; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			rest, ok := recurse(row + 1)
			used[j] = false
			if !ok {
				continue
			}
			if total := costs[row*width+j] + rest; !found || total < best {
				best, found = total, true
			}
		}

		return best, found
	}

	best, _ := recurse(0)

	return best
}

// assertValidAssignment checks the structural contract of a Result:
// length == height, exactly min(width, height) matched rows, every matched
// column in range and used at most once.
func assertValidAssignment[W hungarian.Weight](t *testing.T, res hungarian.Result[W], width, height int) {
	t.Helper()

	assert.Len(t, res.Assignment, height, "assignment length must equal height")

	matched := 0
	seen := make([]bool, width)
	for i, j := range res.Assignment {
		if j == hungarian.Unassigned {
			continue
		}
		matched++
		assert.GreaterOrEqual(t, j, 0, "row %d: column out of range", i)
		assert.Less(t, j, width, "row %d: column out of range", i)
		assert.False(t, seen[j], "column %d assigned to two rows", j)
		seen[j] = true
	}

	want := width
	if height < width {
		want = height
	}
	assert.Equal(t, want, matched, "matched rows must equal min(width, height)")
}

// assertOptimal verifies validity plus brute-force optimality of the total.
func assertOptimal[W hungarian.Weight](t *testing.T, costs []W, width, height int, res hungarian.Result[W]) {
	t.Helper()

	assertValidAssignment(t, res, width, height)
	assert.Equal(t, bruteForceCost(costs, width, height), res.Cost, "total cost must be optimal")

	var total W
	for i, j := range res.Assignment {
		if j != hungarian.Unassigned {
			total += costs[i*width+j]
		}
	}
	assert.Equal(t, res.Cost, total, "reported cost must match the assigned entries")
}

// assertDuals verifies the duality certificate: feasibility for all pairs,
// tightness on matched pairs and the weak-duality sum identity. All checks
// use addition only, so the helper is safe for unsigned weight types.
func assertDuals[W hungarian.Weight](t *testing.T, costs []W, width, height int, res hungarian.Result[W]) {
	t.Helper()

	assert.Len(t, res.RowDuals, height, "one dual per row")
	assert.Len(t, res.ColDuals, width, "one dual per column")

	rowsMatched := height <= width
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			c := costs[i*width+j]
			if rowsMatched {
				assert.LessOrEqual(t, res.RowDuals[i], c+res.ColDuals[j],
					"infeasible duals at (%d,%d)", i, j)
			} else {
				assert.LessOrEqual(t, res.ColDuals[j], c+res.RowDuals[i],
					"infeasible duals at (%d,%d)", i, j)
			}
		}
	}

	for i, j := range res.Assignment {
		if j == hungarian.Unassigned {
			continue
		}
		c := costs[i*width+j]
		if rowsMatched {
			assert.Equal(t, res.RowDuals[i], c+res.ColDuals[j], "matched pair (%d,%d) not tight", i, j)
		} else {
			assert.Equal(t, res.ColDuals[j], c+res.RowDuals[i], "matched pair (%d,%d) not tight", i, j)
		}
	}

	var sumRow, sumCol W
	for _, u := range res.RowDuals {
		sumRow += u
	}
	for _, v := range res.ColDuals {
		sumCol += v
	}
	if rowsMatched {
		assert.Equal(t, sumRow, res.Cost+sumCol, "weak-duality sum identity")
	} else {
		assert.Equal(t, sumCol, res.Cost+sumRow, "weak-duality sum identity")
	}
}

// randMatrix returns a height×width matrix with entries drawn uniformly
// from [lo, hi) using the provided deterministic source.
func randMatrix(rng *rand.Rand, width, height, lo, hi int) []int {
	costs := make([]int, width*height)
	for k := range costs {
		costs[k] = lo + rng.Intn(hi-lo)
	}

	return costs
}
