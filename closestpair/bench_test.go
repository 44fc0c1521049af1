package closestpair_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/planar/closestpair"
)

// benchmarkSolver runs solve over a pre-built uniform set of n points.
// Input construction is excluded from the timer.
func benchmarkSolver(b *testing.B, solve closestpair.Solver, n int) {
	pts := randomPoints(n, 1e6, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := solve(pts); !ok {
			b.Fatal("no pair found")
		}
	}
}

// BenchmarkClosestPair measures divide and conquer at increasing sizes.
func BenchmarkClosestPair(b *testing.B) {
	for _, n := range []int{100, 1000, 10000, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSolver(b, closestpair.ClosestPair, n)
		})
	}
}

// BenchmarkBruteForce measures the quadratic oracle on sizes it can handle.
func BenchmarkBruteForce(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSolver(b, closestpair.BruteForce, n)
		})
	}
}

// BenchmarkSortByAxis isolates the one-off sorting prerequisite.
func BenchmarkSortByAxis(b *testing.B) {
	pts := randomPoints(100000, 1e6, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = closestpair.SortByAxis(pts, closestpair.AxisY)
	}
}
