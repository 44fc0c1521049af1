package closestpair

import (
	"cmp"
	"slices"
)

// SortByAxis returns a copy of points sorted ascending by the chosen axis.
//
// The order is total: ties on the primary coordinate are broken by the other
// coordinate, so equal keys only remain for identical points. Any axis value
// other than AxisY sorts by x.
//
// The input slice is not modified.
//
// Complexity: O(n log n) time, O(n) space.
func SortByAxis(points []Point, axis Axis) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	slices.SortFunc(out, comparator(axis))

	return out
}

// IsSortedByAxis reports whether points are non-decreasing in the order used
// by SortByAxis for the same axis.
//
// Complexity: O(n).
func IsSortedByAxis(points []Point, axis Axis) bool {
	return slices.IsSortedFunc(points, comparator(axis))
}

// comparator returns the three-way comparison for axis.
func comparator(axis Axis) func(p, q Point) int {
	if axis == AxisY {
		return compareYX
	}

	return compareXY
}

// compareXY orders by x, then y.
func compareXY(p, q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}

	return cmp.Compare(p.Y, q.Y)
}

// compareYX orders by y, then x.
func compareYX(p, q Point) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}

	return cmp.Compare(p.X, q.X)
}
