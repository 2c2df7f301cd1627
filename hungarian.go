package hungarian

import (
	"fmt"

	"github.com/nwtnni/hungarian/matrix"
)

// Minimize computes a minimum-cost assignment for the row-major costs slice
// describing a height×width matrix. It returns one column per row (or
// Unassigned when rows outnumber columns) together with the total matched
// cost; exactly min(width, height) rows are matched.
//
// Algorithm (Kuhn–Munkres, shortest-augmenting-path form):
//  1. Keep feasible dual potentials u (rows) and v (columns) with
//     u[i] + v[j] ≤ cost[i][j]; "tight" edges have equality.
//  2. For each unmatched row, run a Dijkstra-style search over the
//     reduced-cost graph (cost − u − v ≥ 0), growing a visited column
//     frontier by smallest tentative distance (array scan; the graph is
//     dense, ties break on the lowest column index).
//  3. Stop at the first unmatched column, raise the potentials of the
//     visited frontier by the terminal's distance, and flip the matching
//     along the predecessor chain, extending it by one row.
//
// When height > width the matrix is walked transposed so the smaller side
// is the one being fully matched; the result is mapped back to rows.
//
// Contracts:
//   - len(costs) == width*height, width > 0, height > 0; otherwise
//     ErrInvalidDimensions (matched via errors.Is), no partial output.
//   - costs is read-only for the duration of the call.
//   - No sign restriction on weights; overflow is the caller's concern.
//
// Complexity: O(max(w,h)³) time, O(w+h) auxiliary space.
func Minimize[W Weight](costs []W, width, height int, opts ...Option) (Result[W], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate dimensions eagerly, before any allocation.
	if width <= 0 || height <= 0 {
		return Result[W]{}, ErrInvalidDimensions
	}
	if len(costs) != width*height {
		return Result[W]{}, fmt.Errorf("hungarian: matrix length %d does not equal %d×%d: %w",
			len(costs), height, width, ErrInvalidDimensions)
	}

	// 3) Run the kernel and extract the assignment in row orientation.
	r := newRunner(costs, width, height)
	r.run()

	return r.result(cfg), nil
}

// Maximize computes a maximum-cost assignment with the same contract as
// Minimize. It minimizes the complement matrix maxEntry − cost — safe for
// unsigned weight types, unlike negation — and reports the total using the
// original costs. Reported duals (WithDuals) certify the complement matrix.
//
// Complexity: O(w·h) transform + the Minimize kernel.
func Maximize[W Weight](costs []W, width, height int, opts ...Option) (Result[W], error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if width <= 0 || height <= 0 {
		return Result[W]{}, ErrInvalidDimensions
	}
	if len(costs) != width*height {
		return Result[W]{}, fmt.Errorf("hungarian: matrix length %d does not equal %d×%d: %w",
			len(costs), height, width, ErrInvalidDimensions)
	}

	// Complement transform: shift − cost flips the objective while keeping
	// every entry non-negative for unsigned weight types.
	shift := costs[0]
	var k int
	for k = 1; k < len(costs); k++ {
		if costs[k] > shift {
			shift = costs[k]
		}
	}
	complement := make([]W, len(costs))
	for k = range costs {
		complement[k] = shift - costs[k]
	}

	r := newRunner(complement, width, height)
	r.run()
	res := r.result(cfg)

	// Recompute the total from the original matrix; the assignment itself
	// is shared between the two objectives.
	var total W
	var i, j int
	for i, j = range res.Assignment {
		if j == Unassigned {
			continue
		}
		total += costs[i*width+j]
	}
	res.Cost = total

	return res, nil
}

// MinimizeMatrix is a convenience wrapper running Minimize on a dense cost
// matrix built with the matrix subpackage.
func MinimizeMatrix[W Weight](d *matrix.Dense[W], opts ...Option) (Result[W], error) {
	if d == nil {
		return Result[W]{}, matrix.ErrNilMatrix
	}
	costs, w, h := d.Flatten()

	return Minimize(costs, w, h, opts...)
}

// MaximizeMatrix is a convenience wrapper running Maximize on a dense cost
// matrix built with the matrix subpackage.
func MaximizeMatrix[W Weight](d *matrix.Dense[W], opts ...Option) (Result[W], error) {
	if d == nil {
		return Result[W]{}, matrix.ErrNilMatrix
	}
	costs, w, h := d.Flatten()

	return Maximize(costs, w, h, opts...)
}

// runner holds the mutable scratch state for a single solve. It is built
// fresh per call and never shared, so concurrent solves need no locking.
//
// The column potential is stored negated (vneg == −v): v only ever
// decreases during potential updates, and keeping its negation lets every
// intermediate value stay non-negative for unsigned weight types.
type runner[W Weight] struct {
	costs  []W  // row-major input matrix, read-only
	stride int  // original width, row stride into costs
	h, w   int  // solver-side dimensions, h ≤ w always
	flip   bool // true when the input was transposed (height > width)

	u     []W    // potential per solver row
	vneg  []W    // negated potential per solver column
	rowOf []int  // rowOf[j] = solver row matched to column j, or Unassigned
	minv  []W    // tentative distance per column, rebuilt each search
	way   []int  // predecessor column per column, rebuilt each search
	visit []bool // columns finalized by the current search
}

// newRunner allocates all per-solve state. The smaller input side becomes
// the solver's row side; lookups transpose on the fly, the matrix is never
// copied.
func newRunner[W Weight](costs []W, width, height int) *runner[W] {
	r := &runner[W]{
		costs:  costs,
		stride: width,
		h:      height,
		w:      width,
		flip:   height > width,
	}
	if r.flip {
		r.h, r.w = width, height
	}

	r.u = make([]W, r.h)
	r.vneg = make([]W, r.w)
	r.rowOf = make([]int, r.w)
	r.minv = make([]W, r.w)
	r.way = make([]int, r.w)
	r.visit = make([]bool, r.w)
	for j := range r.rowOf {
		r.rowOf[j] = Unassigned
	}

	return r
}

// cost returns the (i, j) entry in solver orientation.
func (r *runner[W]) cost(i, j int) W {
	if r.flip {
		return r.costs[j*r.stride+i]
	}

	return r.costs[i*r.stride+j]
}

// run matches every solver row, one augmentation per row.
func (r *runner[W]) run() {
	var row, terminal int
	for row = 0; row < r.h; row++ {
		terminal = r.search(row)
		r.augment(row, terminal)
	}
}

// search runs one shortest-augmenting-path pass from the unmatched row and
// returns the unmatched terminal column. On return the potentials have been
// raised so the whole path, terminal included, is tight.
//
// Complexity: O(w²) — each iteration finalizes one column with two O(w)
// scans (frontier selection and relaxation).
func (r *runner[W]) search(row int) int {
	// 1) Seed tentative distances straight from the source row: the graph
	//    is complete, so every column is reachable in one step and no
	//    infinity sentinel is needed.
	var j int
	for j = 0; j < r.w; j++ {
		r.minv[j] = r.cost(row, j) + r.vneg[j] - r.u[row]
		r.way[j] = Unassigned
		r.visit[j] = false
	}

	var (
		j1, i0 int // next column to finalize; its matched row
		delta  W   // smallest tentative distance outside the frontier
		cur    W   // relaxation candidate
	)
	for {
		// 2) Pick the unvisited column with the smallest tentative
		//    distance; ties break on the first-encountered index.
		j1 = Unassigned
		for j = 0; j < r.w; j++ {
			if r.visit[j] {
				continue
			}
			if j1 == Unassigned || r.minv[j] < delta {
				j1, delta = j, r.minv[j]
			}
		}

		// 3) Raise the potentials of the frontier by delta and shrink the
		//    remaining slacks by the same amount. Matched edges inside the
		//    frontier stay tight; j1's reduced distance drops to zero.
		r.u[row] += delta
		for j = 0; j < r.w; j++ {
			if r.visit[j] {
				r.u[r.rowOf[j]] += delta
				r.vneg[j] += delta
			} else {
				r.minv[j] -= delta
			}
		}
		r.visit[j1] = true

		// 4) An unmatched column ends the search.
		i0 = r.rowOf[j1]
		if i0 == Unassigned {
			return j1
		}

		// 5) Otherwise relax the unvisited columns through the row matched
		//    to j1, recording j1 as predecessor on improvement.
		for j = 0; j < r.w; j++ {
			if r.visit[j] {
				continue
			}
			if cur = r.cost(i0, j) + r.vneg[j] - r.u[i0]; cur < r.minv[j] {
				r.minv[j] = cur
				r.way[j] = j1
			}
		}
	}
}

// augment flips the matching along the predecessor chain ending at the
// terminal column: each column on the path takes over the row previously
// held by its predecessor, and the path's first column takes the new row.
// Extends the matching by exactly one without unmatching anything.
//
// Complexity: O(path length) ≤ O(w).
func (r *runner[W]) augment(row, terminal int) {
	var prev int
	for j := terminal; ; j = prev {
		prev = r.way[j]
		if prev == Unassigned {
			r.rowOf[j] = row

			return
		}
		r.rowOf[j] = r.rowOf[prev]
	}
}

// result maps the solver-side matching back to the input's row orientation
// and totals the matched cost from the original matrix.
func (r *runner[W]) result(cfg Options) Result[W] {
	height := r.h
	if r.flip {
		height = r.w
	}
	assignment := make([]int, height)
	var i int
	for i = range assignment {
		assignment[i] = Unassigned
	}

	var total W
	var j int
	for j = 0; j < r.w; j++ {
		i = r.rowOf[j]
		if i == Unassigned {
			continue // only possible when width > height
		}
		if r.flip {
			// Solver rows are input columns and vice versa.
			assignment[j] = i
			total += r.costs[j*r.stride+i]
		} else {
			assignment[i] = j
			total += r.costs[i*r.stride+j]
		}
	}

	res := Result[W]{Assignment: assignment, Cost: total}
	if cfg.ReturnDuals {
		if r.flip {
			res.RowDuals = append([]W(nil), r.vneg...)
			res.ColDuals = append([]W(nil), r.u...)
		} else {
			res.RowDuals = append([]W(nil), r.u...)
			res.ColDuals = append([]W(nil), r.vneg...)
		}
	}

	return res
}
