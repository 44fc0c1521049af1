// Package planar is a small toolkit for proximity queries on planar point
// sets, centred on the closest-pair problem.
//
// 🚀 What is inside?
//
//	closestpair/: solvers, O(n log n) divide and conquer and the
//	              O(n²) brute-force oracle, plus timing and view checks
//	pointgen/:    reproducible random point sets (seeded, unique, rounded)
//	pointio/:     WKT MULTIPOINT reading/writing and go-geom adapters
//
// ✨ Why?
//
//   - Pure Go, no cgo
//   - Deterministic: seeded generation, total sort orders, stable tie rules
//   - Pure functions: no global state, safe for concurrent callers
//
// Quick example:
//
//	pts, _ := pointgen.Generate(10_000, pointgen.WithSeed(1))
//	res := closestpair.ClosestPairTimed(pts)
//	fmt.Println(res.Pair, res.Elapsed)
//
//	go get github.com/katalvlaran/planar
package planar
