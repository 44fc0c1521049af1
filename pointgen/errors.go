// errors.go: sentinel errors for the pointgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w; sentinel messages never change.

package pointgen

import "errors"

// ErrNegativeCount indicates that a negative number of points was requested.
var ErrNegativeCount = errors.New("pointgen: point count must be non-negative")

// ErrRangeExhausted indicates that the coordinate lattice implied by the range
// and the decimal precision cannot supply the requested number of unique
// points, or that sampling gave up after its attempt budget.
var ErrRangeExhausted = errors.New("pointgen: range too small for unique points")
