// Package pointio reads and writes planar point sets as WKT MULTIPOINT text
// and converts between closestpair points and go-geom geometries.
//
// A point-set file holds one geometry, for example:
//
//	MULTIPOINT (0 0, 3 4, 1 1)
//
// Only the XY layout is accepted; Z and M ordinates are rejected with
// ErrUnsupportedLayout. NaN and infinite coordinates are rejected with
// ErrNonFinite in both directions, since the solvers leave them undefined.
package pointio
