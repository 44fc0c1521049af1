package closestpair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/closestpair"
)

// farLadder returns a y-sorted strip of size n+1: p0=(0,0), then n points far
// apart on x with strictly increasing y, then the caller replaces one entry.
func farLadder(n int) []closestpair.Point {
	strip := make([]closestpair.Point, n+1)
	strip[0] = pt(0, 0)
	for i := 1; i <= n; i++ {
		strip[i] = pt(1000*float64(i), 0.1*float64(i))
	}

	return strip
}

// TestClosestInStrip_TooFew returns ok==false below two points.
func TestClosestInStrip_TooFew(t *testing.T) {
	_, ok := closestpair.ClosestInStrip(nil)
	assert.False(t, ok)
	_, ok = closestpair.ClosestInStrip([]closestpair.Point{pt(1, 1)})
	assert.False(t, ok)
}

// TestClosestInStrip_SmallIsExhaustive checks that up to StripNeighbors+1
// points every pair is examined.
func TestClosestInStrip_SmallIsExhaustive(t *testing.T) {
	pts := closestpair.SortByAxis(randomPoints(closestpair.StripNeighbors+1, 100, seedDet), closestpair.AxisY)

	got, ok := closestpair.ClosestInStrip(pts)
	require.True(t, ok)
	want, _ := closestpair.BruteForce(pts)
	assert.Equal(t, want.Distance, got.Distance)
}

// TestClosestInStrip_FifteenthSuccessorReached verifies the window includes
// the 15th successor of a point.
func TestClosestInStrip_FifteenthSuccessorReached(t *testing.T) {
	strip := farLadder(closestpair.StripNeighbors)
	strip[closestpair.StripNeighbors] = pt(0, 1.5) // 15 positions after p0

	got, ok := closestpair.ClosestInStrip(strip)
	require.True(t, ok)
	assert.Equal(t, pt(0, 0), got.A)
	assert.Equal(t, pt(0, 1.5), got.B)
	assert.InDelta(t, 1.5, got.Distance, 1e-12)
}

// TestClosestInStrip_SixteenthSuccessorSkipped verifies the window stops at
// StripNeighbors: a close pair 16 positions apart is not examined.
func TestClosestInStrip_SixteenthSuccessorSkipped(t *testing.T) {
	strip := farLadder(closestpair.StripNeighbors + 1)
	strip[closestpair.StripNeighbors+1] = pt(0, 1.6) // 16 positions after p0

	got, ok := closestpair.ClosestInStrip(strip)
	require.True(t, ok)
	assert.Greater(t, got.Distance, 1.6, "pair 16 apart must be outside the window")
	assert.False(t, got.Same(closestpair.Pair{A: pt(0, 0), B: pt(0, 1.6)}))
}

// TestClosestInStrip_FirstMinimumWins keeps the earliest pair on exact ties.
func TestClosestInStrip_FirstMinimumWins(t *testing.T) {
	strip := []closestpair.Point{pt(0, 0), pt(0, 1), pt(0, 2)}

	got, ok := closestpair.ClosestInStrip(strip)
	require.True(t, ok)
	assert.Equal(t, closestpair.Pair{A: pt(0, 0), B: pt(0, 1), Distance: 1}, got)
}
