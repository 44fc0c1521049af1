package closestpair

import "fmt"

// ValidateViews checks the contract Recursive relies on:
//   - byX is sorted by (x, y) and byY by (y, x);
//   - both views hold the same multiset of points.
//
// Errors:
//   - ErrUnsortedView       if either view is out of order (wrapped with the
//     offending axis and index).
//   - ErrInconsistentViews  if lengths or multisets differ.
//
// Recursive never calls this; ClosestPairWith does under WithViewCheck().
//
// Complexity: O(n log n) time, O(n) space.
func ValidateViews(byX, byY []Point) error {
	if i := firstUnsorted(byX, AxisX); i >= 0 {
		return fmt.Errorf("%w: %s-view breaks order at index %d", ErrUnsortedView, AxisX, i)
	}
	if i := firstUnsorted(byY, AxisY); i >= 0 {
		return fmt.Errorf("%w: %s-view breaks order at index %d", ErrUnsortedView, AxisY, i)
	}
	if len(byX) != len(byY) {
		return fmt.Errorf("%w: len(x-view)=%d len(y-view)=%d", ErrInconsistentViews, len(byX), len(byY))
	}

	// Re-key the y-view by (x, y); equal multisets give identical sequences.
	var (
		rekeyed = SortByAxis(byY, AxisX)
		i       int
	)
	for i = range byX {
		if byX[i] != rekeyed[i] {
			return fmt.Errorf("%w: first mismatch %v vs %v", ErrInconsistentViews, byX[i], rekeyed[i])
		}
	}

	return nil
}

// firstUnsorted returns the first index i with points[i] < points[i-1] in the
// axis order, or -1 when the view is sorted.
func firstUnsorted(points []Point, axis Axis) int {
	var (
		order = comparator(axis)
		i     int
	)
	for i = 1; i < len(points); i++ {
		if order(points[i], points[i-1]) < 0 {
			return i
		}
	}

	return -1
}
