// generate.go: Generate(n, opts...) implementation.
//
// Determinism:
//   - Coordinates are drawn in a fixed order (x then y per point).
//   - Rejected duplicates consume RNG state, so the output depends only on
//     the seed and the options.

package pointgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/closestpair"
)

const (
	methodGenerate = "Generate"

	// attemptsPerPoint bounds rejection sampling for unique sets.
	attemptsPerPoint = 64
	// attemptsSlack keeps the budget useful for tiny n.
	attemptsSlack = 1024
)

// Generate returns n random points configured by opts.
//
// Steps:
//  1. Validate n (ErrNegativeCount) and, for unique sets, that the lattice of
//     representable coordinates holds at least n points (ErrRangeExhausted).
//  2. Draw x then y uniformly in [min, max) and truncate each to the
//     precision; a truncated value that falls below min is redrawn.
//  3. Unless duplicates are allowed, reject already-seen points; give up with
//     ErrRangeExhausted after attemptsPerPoint·n + attemptsSlack draws.
//
// Complexity: O(n) expected time and O(n) space while the lattice is much
// larger than n; rejection sampling slows down as it fills up.
func Generate(n int, opts ...Option) ([]closestpair.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrNegativeCount)
	}

	c := newConfig(opts...)
	scale := math.Pow10(c.decimals)

	cells := c.cells(scale)
	if n > 0 && (cells == 0 || (!c.duplicates && cells*cells < float64(n))) {
		return nil, fmt.Errorf("%s: n=%d exceeds %.0f lattice points: %w",
			methodGenerate, n, cells*cells, ErrRangeExhausted)
	}

	var (
		out      = make([]closestpair.Point, 0, n)
		seen     map[closestpair.Point]struct{}
		budget   = attemptsPerPoint*n + attemptsSlack
		attempts int
		p        closestpair.Point
	)
	if !c.duplicates {
		seen = make(map[closestpair.Point]struct{}, n)
	}

	for len(out) < n {
		if attempts == budget {
			return nil, fmt.Errorf("%s: gave up after %d draws with %d/%d points: %w",
				methodGenerate, attempts, len(out), n, ErrRangeExhausted)
		}
		attempts++

		x, xok := c.draw(scale)
		y, yok := c.draw(scale)
		if !xok || !yok {
			continue
		}
		p = closestpair.Point{X: x, Y: y}
		if seen != nil {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
		}
		out = append(out, p)
	}

	return out, nil
}

// draw returns one coordinate truncated to 1/scale and whether it lies in
// [min, max).
func (c config) draw(scale float64) (float64, bool) {
	v := c.min + c.rng.Float64()*(c.max-c.min)
	r := math.Floor(v*scale) / scale

	return r, r >= c.min && r < c.max
}

// cells counts the lattice values k/scale inside [min, max), using the same
// membership test as draw. Float64 keeps huge ranges from overflowing.
func (c config) cells(scale float64) float64 {
	lo := math.Ceil(c.min * scale)
	if (lo-1)/scale >= c.min {
		lo--
	} else if lo/scale < c.min {
		lo++
	}
	hi := math.Ceil(c.max*scale) - 1
	if hi/scale >= c.max {
		hi--
	} else if (hi+1)/scale < c.max {
		hi++
	}

	return math.Max(hi-lo+1, 0)
}
