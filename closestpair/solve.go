package closestpair

import (
	"fmt"
	"time"
)

// ClosestPair returns the closest pair of points using divide and conquer.
//
// The input is sorted once per axis (SortByAxis) and handed to Recursive;
// recursive calls only slice and partition those two views. points is not
// modified.
//
// Returns ok==false when fewer than two points are given.
//
// Complexity: O(n log n) time, O(n) extra space for the views plus the
// per-level partitions (see Recursive).
func ClosestPair(points []Point) (Pair, bool) {
	if len(points) < 2 {
		return Pair{}, false
	}

	return Recursive(SortByAxis(points, AxisX), SortByAxis(points, AxisY))
}

// ClosestPairWith is the configurable entry point.
//
// Options:
//   - WithAlgorithm(a): DivideAndConquer (default) or Exhaustive.
//   - WithViewCheck(): run ValidateViews on the sorted views before recursing.
//
// Errors:
//   - ErrUnknownAlgorithm if the algorithm is not recognised.
//   - ErrUnsortedView / ErrInconsistentViews from the view check; with views
//     built by SortByAxis these indicate a defect, not bad input.
func ClosestPairWith(points []Point, opts ...Option) (Pair, bool, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Algorithm {
	case Exhaustive:
		pair, ok := BruteForce(points)
		return pair, ok, nil

	case DivideAndConquer:
		if len(points) < 2 {
			return Pair{}, false, nil
		}
		byX := SortByAxis(points, AxisX)
		byY := SortByAxis(points, AxisY)
		if cfg.CheckViews {
			if err := ValidateViews(byX, byY); err != nil {
				return Pair{}, false, err
			}
		}
		pair, ok := Recursive(byX, byY)
		return pair, ok, nil

	default:
		return Pair{}, false, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}

// Measure runs solve on points and reports the elapsed wall-clock time next
// to the result. A nil solve falls back to ClosestPair.
//
// Timing is a return value, never shared state, so concurrent Measure calls
// do not interfere.
func Measure(solve Solver, points []Point) Result {
	if solve == nil {
		solve = ClosestPair
	}
	start := time.Now()
	pair, ok := solve(points)

	return Result{Pair: pair, Found: ok, Elapsed: time.Since(start)}
}

// ClosestPairTimed is Measure(ClosestPair, points).
func ClosestPairTimed(points []Point) Result { return Measure(ClosestPair, points) }

// BruteForceTimed is Measure(BruteForce, points).
func BruteForceTimed(points []Point) Result { return Measure(BruteForce, points) }
