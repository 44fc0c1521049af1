// Package closestpair finds the closest pair of points in a finite planar
// point set under the Euclidean metric.
//
// 🚀 What is the closest-pair problem?
//
//	Given n points in the plane, report two of them whose distance is
//	minimal over all C(n,2) unordered pairs. It shows up in:
//	  • Collision and proximity detection
//	  • Clustering seeds and duplicate detection
//	  • Air/sea traffic separation checks
//	  • As a building block for spatial indexes and Delaunay tooling
//
// ✨ Two interchangeable solvers:
//   - ClosestPair: divide and conquer, O(n log n) time, O(n log n) memory.
//   - BruteForce: exhaustive scan, O(n²) time, O(1) extra memory.
//     Used as a reference oracle and for tiny inputs.
//
// Both return (Pair, ok). ok==false means fewer than two points were given;
// it is not an error.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planar/closestpair"
//
//	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}}
//	pair, ok := closestpair.ClosestPair(pts)
//	if ok {
//	    fmt.Println(pair.A, pair.B, pair.Distance) // (0,0) (1,1) 1.414…
//	}
//
//	// timing is returned, never stored globally
//	res := closestpair.ClosestPairTimed(pts)
//	fmt.Println(res.Elapsed)
//
// Algorithm outline (divide and conquer):
//  1. Sort once by (x, y) and once by (y, x). Recursive calls never re-sort.
//  2. Split the x-view at mid = n/2; partition the y-view by membership,
//     preserving y-order in each half.
//  3. Solve both halves; δ = min(δ_left, δ_right), left wins ties.
//  4. Keep the points with |x − L| < δ (L = x of the split point) in y-order
//     and compare each with at most StripNeighbors successors.
//  5. A strip pair strictly closer than δ replaces the halves' answer.
//
// Determinism:
//   - Sorting tie-breaks on the other coordinate, so every view is a total order.
//   - For equal minimum distances either solver may return a different pair,
//     but the reported distance is identical.
//
// Input contract:
//   - Coordinates must be finite. NaN and ±Inf are undefined behaviour.
//   - The input slice is never modified.
//
// Thread safety:
//
//	All functions are pure and keep no package state; they may be called
//	concurrently on shared read-only input.
package closestpair
