package closestpair

import "math"

// Recursive solves the closest-pair problem over two views of the same
// point multiset: byX sorted by (x, y) and byY sorted by (y, x).
//
// Steps per call:
//  1. Base case: n ≤ 3 is resolved by ClosestInStrip(byY). The threshold is
//     checked on every entry, so halves of size 2 or 3 never split again.
//  2. Divide: mid = n/2; byX[:mid] is the left half, byX[mid:] the right.
//     byY is partitioned by membership into leftY/rightY, keeping y-order.
//  3. Recurse on (byX[:mid], leftY) and (byX[mid:], rightY).
//  4. Combine: δ = min(δ_left, δ_right) with the left pair winning ties;
//     L = byX[mid].X; the strip is byY filtered by |x − L| < δ, which is
//     already y-ordered.
//  5. Resolve: a strip pair strictly closer than δ is the answer, otherwise
//     the halves' best pair is.
//
// Contract:
//   - Both views must hold the same multiset and be sorted as produced by
//     SortByAxis. Violations are not detected here; see ValidateViews.
//   - byX is sliced, never copied or written. leftY/rightY are fresh slices
//     owned by the call frame.
//
// Returns ok==false when fewer than two points are given.
//
// Complexity: T(n) = 2T(n/2) + O(n) ⇒ O(n log n) time, O(n log n) total
// allocation (O(n) live at any moment along one recursion path).
func Recursive(byX, byY []Point) (Pair, bool) {
	var n = len(byX)

	// 1) Base case.
	if n <= baseCaseSize {
		return ClosestInStrip(byY)
	}

	// 2) Divide.
	var (
		mid    = n / 2
		split  = byX[mid] // first point of the right half
		leftY  []Point
		rightY []Point
	)
	leftY, rightY = partitionByY(byX, byY, mid)

	// 3) Recurse.
	lp, lok := Recursive(byX[:mid], leftY)
	rp, rok := Recursive(byX[mid:], rightY)

	// 4) Combine.
	best, ok := closer(lp, lok, rp, rok)
	var delta = math.Inf(1)
	if ok {
		delta = best.Distance
	}
	strip := stripOf(byY, split.X, delta)

	// 5) Resolve.
	if sp, sok := ClosestInStrip(strip); sok && sp.Distance < delta {
		return sp, true
	}

	return best, ok
}

// partitionByY splits byY into the points of byX[:mid] and byX[mid:],
// preserving y-order within each half.
//
// Membership is decided against split = byX[mid] in (x, y) order: smaller
// points go left, larger go right. Copies of split itself are
// indistinguishable, so the first k of them (in y-order) go left, where k is
// the number of copies inside byX[:mid]. This keeps both halves of both views
// identical as multisets even when points repeat.
//
// Complexity: O(n) time, O(n) space.
func partitionByY(byX, byY []Point, mid int) (leftY, rightY []Point) {
	var (
		split = byX[mid]
		quota int // copies of split that belong to the left half
		i     int
		p     Point
	)
	for i = mid - 1; i >= 0 && compareXY(byX[i], split) == 0; i-- {
		quota++
	}

	leftY = make([]Point, 0, mid)
	rightY = make([]Point, 0, max(len(byY)-mid, 0))
	for _, p = range byY {
		switch c := compareXY(p, split); {
		case c < 0:
			leftY = append(leftY, p)
		case c > 0:
			rightY = append(rightY, p)
		case quota > 0:
			leftY = append(leftY, p)
			quota--
		default:
			rightY = append(rightY, p)
		}
	}

	return leftY, rightY
}

// stripOf returns the points of byY whose x lies strictly within delta of
// line, in the order of byY.
//
// Complexity: O(n) time, O(k) space for k strip points.
func stripOf(byY []Point, line, delta float64) []Point {
	var strip []Point
	for _, p := range byY {
		if math.Abs(p.X-line) < delta {
			strip = append(strip, p)
		}
	}

	return strip
}

// closer picks the closer of two optional pairs; a wins ties.
func closer(a Pair, aok bool, b Pair, bok bool) (Pair, bool) {
	switch {
	case aok && bok:
		if b.Distance < a.Distance {
			return b, true
		}
		return a, true
	case aok:
		return a, true
	case bok:
		return b, true
	default:
		return Pair{}, false
	}
}
