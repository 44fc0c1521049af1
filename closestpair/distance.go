package closestpair

import "math"

// Distance returns the Euclidean distance between a and b.
//
// Numeric policy:
//   - Axis-aligned pairs (a.X==b.X or a.Y==b.Y) short-circuit to the absolute
//     coordinate difference, which is exact.
//   - The general case uses math.Hypot, which scales before squaring, so the
//     squared deltas can neither overflow nor underflow for finite inputs.
//
// The result is symmetric, non-negative and zero iff a==b.
// NaN coordinates yield an unspecified result.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	if a.X == b.X {
		return math.Abs(a.Y - b.Y)
	}
	if a.Y == b.Y {
		return math.Abs(a.X - b.X)
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
