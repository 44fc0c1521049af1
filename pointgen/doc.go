// Package pointgen produces reproducible random planar point sets for
// closest-pair experiments, tests and benchmarks.
//
// Canonical model:
//   - Each coordinate is drawn uniformly from [Min, Max) and truncated to
//     Decimals decimal places, staying inside [Min, Max) (defaults: [0, 1e6),
//     2 decimals).
//   - Points are unique by coordinates unless WithDuplicates() is given.
//   - The same seed always yields the same sequence; seed 0 maps to a fixed
//     default seed, so an unseeded call is still deterministic.
//
// Usage:
//
//	pts, err := pointgen.Generate(1000, pointgen.WithSeed(7))
//	if err != nil {
//	    return err
//	}
//	pair, _ := closestpair.ClosestPair(pts)
//
// Contract:
//   - Option constructors validate and panic on meaningless input
//     (WithRange(lo>=hi), WithDecimals(d<0 || d>MaxDecimals), WithRand(nil)).
//   - Generate never panics; it returns ErrNegativeCount or ErrRangeExhausted.
//
// Concurrency:
//   - A *rand.Rand passed via WithRand is NOT goroutine-safe; do not share it
//     across concurrent Generate calls.
package pointgen
