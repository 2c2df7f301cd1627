// Package hungarian solves the minimum-cost bipartite assignment problem
// with the Hungarian (Kuhn–Munkres) algorithm in its shortest-augmenting-path
// form over dual potentials.
//
// 🚀 What is the assignment problem?
//
//	Given an h×w cost matrix between "rows" and "columns", find for each
//	row the column it should be assigned to so that no column is used
//	twice and the total assigned cost is minimal. It shows up in:
//	  • Task / worker scheduling
//	  • Detection-to-track association (multi-object tracking)
//	  • Minimum-weight bipartite matching in graphs
//	  • Resource allocation & auction clearing
//
// ✨ Key features:
//   - generic weights: any integer or float type (signed or unsigned)
//   - rectangular matrices: the smaller side is always fully matched;
//     surplus rows come back as Unassigned
//   - Minimize and Maximize entry points over the same kernel
//   - optional dual potentials (WithDuals) as an optimality certificate
//   - deterministic: identical inputs yield identical outputs
//
// ⚙️ Usage:
//
//	import "github.com/nwtnni/hungarian"
//
//	costs := []int{
//	    250, 400, 350,
//	    400, 600, 350,
//	    200, 400, 250,
//	}
//	res, err := hungarian.Minimize(costs, 3, 3)
//	// res.Assignment == [1 2 0], res.Cost == 950
//
// The solver runs a single-source shortest-path search per row over the
// reduced-cost graph (cost[i][j] − u[i] − v[j]), augments the partial
// matching along the discovered path, and updates the potentials so that
// every matched edge stays tight. A plain array scan replaces a priority
// queue: the bipartite graph is complete, so the scan is already optimal.
//
// Performance:
//
//   - Time:   O(n³), n = max(width, height)
//   - Memory: O(w·h) for the matrix held by the caller, O(w+h) auxiliary
//
// The cost matrix is read-only; concurrent solves on distinct matrices
// need no synchronization. See example_test.go for runnable examples and
// the matrix subpackage for cost-matrix construction helpers.
package hungarian
