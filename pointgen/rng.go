// rng.go: deterministic RNG helpers shared by Generate and Shuffle.
//
// Goals:
//   - Determinism: same seed ⇒ identical point sets across platforms.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.

package pointgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/planar/closestpair"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Shuffle returns a copy of points in a random order drawn from seed
// (seed==0 ⇒ the default stream). The input is not modified.
//
// Complexity: O(n) time, O(n) space.
func Shuffle(points []closestpair.Point, seed int64) []closestpair.Point {
	out := make([]closestpair.Point, len(points))
	copy(out, points)

	var (
		r    = rngFromSeed(seed)
		i, j int
	)
	// Fisher–Yates, back to front.
	for i = len(out) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nonFinite reports whether v is ±Inf or NaN.
func nonFinite(v float64) bool { return math.IsInf(v, 0) || math.IsNaN(v) }
