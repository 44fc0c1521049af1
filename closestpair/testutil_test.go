// Package closestpair_test holds the shared helpers of the closestpair tests:
// deterministic point factories and an independent k-d tree oracle.
package closestpair_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/planar/closestpair"
)

const (
	// epsDist is the tolerance used when two solvers' distances are compared.
	epsDist = 1e-9

	// seedDet is the base seed of every randomized test.
	seedDet = int64(42)
)

// randomPoints returns n points uniform in [0, span)² from a seeded stream.
func randomPoints(n int, span float64, seed int64) []closestpair.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: r.Float64() * span, Y: r.Float64() * span}
	}

	return pts
}

// latticePoints returns n points on the integer grid [0, side)², which
// produces plenty of duplicates, shared coordinates and exact distance ties.
func latticePoints(n, side int, seed int64) []closestpair.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: float64(r.Intn(side)), Y: float64(r.Intn(side))}
	}

	return pts
}

// kdOracle computes the closest-pair distance with a gonum k-d tree: for every
// point the two nearest entries (itself and its nearest neighbour) are kept,
// and the larger of the two is that point's nearest-neighbour distance.
func kdOracle(t *testing.T, pts []closestpair.Point) (float64, bool) {
	t.Helper()
	if len(pts) < 2 {
		return 0, false
	}

	data := make(kdtree.Points, len(pts))
	for i, p := range pts {
		data[i] = kdtree.Point{p.X, p.Y}
	}
	tree := kdtree.New(data, false)

	best := math.Inf(1)
	for _, p := range pts {
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, kdtree.Point{p.X, p.Y})

		var (
			kept int
			far  float64 // squared distance to the nearest other point
		)
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue
			}
			kept++
			far = math.Max(far, cd.Dist)
		}
		require.Equal(t, 2, kept, "k-d oracle must keep self and one neighbour")
		best = math.Min(best, far)
	}

	return math.Sqrt(best), true
}

// requireValidPair checks that pair is made of input points and that its
// distance field matches its endpoints.
func requireValidPair(t *testing.T, pts []closestpair.Point, pair closestpair.Pair) {
	t.Helper()
	require.Contains(t, pts, pair.A, "endpoint A must come from the input")
	require.Contains(t, pts, pair.B, "endpoint B must come from the input")
	require.Equal(t, closestpair.Distance(pair.A, pair.B), pair.Distance, "cached distance must match endpoints")
}

// pt is a terse Point constructor for table literals.
func pt(x, y float64) closestpair.Point { return closestpair.Point{X: x, Y: y} }
