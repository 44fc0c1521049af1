package closestpair

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Sentinel errors returned by the closestpair package.
//
// Insufficient input (fewer than two points) is NOT an error; it is reported
// through the boolean result of every solver.
var (
	// ErrUnsortedView indicates that a sorted view is not ordered by its key
	// ((x, y) for the x-view, (y, x) for the y-view).
	ErrUnsortedView = errors.New("closestpair: view is not sorted by its axis")

	// ErrInconsistentViews indicates that the x-view and the y-view do not hold
	// the same multiset of points.
	ErrInconsistentViews = errors.New("closestpair: x and y views hold different points")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("closestpair: unknown algorithm")
)

// StripNeighbors is the number of y-ordered successors each strip point is
// compared against. The packing bound of the δ-strip guarantees the true
// closest cross pair lies within this window.
const StripNeighbors = 15

// baseCaseSize is the largest subproblem resolved by direct scanning.
const baseCaseSize = 3

// Point is an immutable planar coordinate pair.
// Equality is coordinate equality; two points with the same X and Y are
// indistinguishable.
type Point struct {
	X, Y float64
}

// Less reports whether p precedes q in (x, y) lexicographic order.
func (p Point) Less(q Point) bool { return compareXY(p, q) < 0 }

// Distance returns the Euclidean distance between p and q.
// See the package-level Distance for numeric details.
func (p Point) Distance(q Point) float64 { return Distance(p, q) }

// String renders p as "(x,y)" using the shortest exact decimal form.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Axis selects the primary sort key of a view.
type Axis int

const (
	// AxisX orders by x, then by y.
	AxisX Axis = iota

	// AxisY orders by y, then by x.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// Pair is a candidate closest pair: two points and the distance between them.
// A is the endpoint met first by the solver that produced the pair.
type Pair struct {
	A, B     Point
	Distance float64
}

// Same reports whether p and q have the same endpoints, in either order.
func (p Pair) Same(q Pair) bool {
	return (p.A == q.A && p.B == q.B) || (p.A == q.B && p.B == q.A)
}

// String renders the pair as "{(ax,ay) (bx,by)} d=<distance>".
func (p Pair) String() string {
	return fmt.Sprintf("{%v %v} d=%g", p.A, p.B, p.Distance)
}

// Result is a solver outcome together with the wall-clock time it took.
// Found is false when the input had fewer than two points; Pair is then zero.
type Result struct {
	Pair    Pair
	Found   bool
	Elapsed time.Duration
}

// Solver is the common shape of ClosestPair and BruteForce.
type Solver func(points []Point) (Pair, bool)

// Algorithm selects the solver used by ClosestPairWith.
type Algorithm int

const (
	// DivideAndConquer runs the O(n log n) recursive solver.
	DivideAndConquer Algorithm = iota

	// Exhaustive runs the O(n²) brute-force oracle.
	Exhaustive
)

// String returns a human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case DivideAndConquer:
		return "divide-and-conquer"
	case Exhaustive:
		return "exhaustive"
	default:
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
}

// Options configures ClosestPairWith.
//
// Fields:
//   - Algorithm: solver to run (DivideAndConquer by default).
//   - CheckViews: validate the two sorted views with ValidateViews before
//     recursing. Costs an extra O(n log n) pass; meant for debugging.
type Options struct {
	Algorithm  Algorithm
	CheckViews bool
}

// Option represents a functional option for configuring ClosestPairWith.
type Option func(*Options)

// WithAlgorithm selects the solver. Unknown values are rejected by
// ClosestPairWith with ErrUnknownAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithViewCheck enables the sorted-view contract check.
// It has no effect with the Exhaustive algorithm, which builds no views.
func WithViewCheck() Option {
	return func(o *Options) {
		o.CheckViews = true
	}
}

// DefaultOptions returns the zero-cost configuration:
//   - Algorithm:  DivideAndConquer
//   - CheckViews: false
func DefaultOptions() Options {
	return Options{
		Algorithm:  DivideAndConquer,
		CheckViews: false,
	}
}
