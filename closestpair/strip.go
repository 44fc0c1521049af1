package closestpair

import "math"

// ClosestInStrip returns the closest pair inside a y-sorted strip.
//
// Description:
//
//	The caller guarantees byY is sorted by (y, x) and, inside the recursive
//	solver, that every point lies within δ of the dividing line. Under that
//	precondition a point can have only a constant number of strip points
//	above it closer than δ, so each point is compared with at most
//	StripNeighbors successors.
//
// Algorithm:
//  1. For i = 0..n-1, for j = i+1 .. min(i+StripNeighbors, n-1):
//  2. d = Distance(byY[i], byY[j]); keep the strictly smallest d seen.
//
// On inputs of up to StripNeighbors+1 points the scan is exhaustive, which is
// why the recursive solver also uses it for its base case.
//
// Returns ok==false when fewer than two points are given.
//
// Complexity: O(n·StripNeighbors) = O(n) time, O(1) space.
func ClosestInStrip(byY []Point) (Pair, bool) {
	var (
		n     = len(byY)
		best  = math.Inf(1) // running minimum
		bi    int           // endpoints of the running minimum
		bj    int
		found bool
		i, j  int
		hi    int
		d     float64
	)
	for i = 0; i < n; i++ {
		hi = min(i+StripNeighbors+1, n) // exclusive bound of the window
		for j = i + 1; j < hi; j++ {
			d = Distance(byY[i], byY[j])
			if !found || d < best {
				best, bi, bj, found = d, i, j, true
			}
		}
	}
	if !found {
		return Pair{}, false
	}

	return Pair{A: byY[bi], B: byY[bj], Distance: best}, true
}
