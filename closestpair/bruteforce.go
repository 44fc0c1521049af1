package closestpair

// BruteForce returns the closest pair by examining every unordered pair.
//
// It is the reference oracle for ClosestPair and the cheapest choice for a
// handful of points. The first pair (in input order) reaching the minimum is
// returned.
//
// Returns ok==false when fewer than two points are given.
//
// Complexity: O(n²) time, O(1) space.
func BruteForce(points []Point) (Pair, bool) {
	var (
		n     = len(points)
		best  Pair
		found bool
		i, j  int
		d     float64
	)
	if n < 2 {
		return Pair{}, false
	}
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			if !found || d < best.Distance {
				best = Pair{A: points[i], B: points[j], Distance: d}
				found = true
			}
		}
	}

	return best, true
}
