package pointio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/katalvlaran/planar/closestpair"
)

// Sentinel errors returned by pointio.
var (
	// ErrUnsupportedGeometry indicates a geometry other than POINT or MULTIPOINT.
	ErrUnsupportedGeometry = errors.New("pointio: geometry must be a POINT or MULTIPOINT")

	// ErrUnsupportedLayout indicates a layout other than XY.
	ErrUnsupportedLayout = errors.New("pointio: only the XY layout is supported")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("pointio: coordinates must be finite")
)

// Parse decodes WKT text into points, in file order.
func Parse(s string) ([]closestpair.Point, error) {
	g, err := wkt.Unmarshal(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("pointio: parse: %w", err)
	}

	return FromGeometry(g)
}

// Read decodes one WKT geometry from r.
func Read(r io.Reader) ([]closestpair.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pointio: read: %w", err)
	}

	return Parse(string(data))
}

// Format encodes points as a WKT MULTIPOINT. An empty set encodes as
// "MULTIPOINT EMPTY".
func Format(points []closestpair.Point) (string, error) {
	mp, err := ToMultiPoint(points)
	if err != nil {
		return "", err
	}
	s, err := wkt.Marshal(mp)
	if err != nil {
		return "", fmt.Errorf("pointio: format: %w", err)
	}

	return s, nil
}

// Write encodes points to w as one WKT line.
func Write(w io.Writer, points []closestpair.Point) error {
	s, err := Format(points)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, s+"\n"); err != nil {
		return fmt.Errorf("pointio: write: %w", err)
	}

	return nil
}

// FromGeometry converts a *geom.Point or *geom.MultiPoint into points.
// Empty geometries and empty members yield no points.
func FromGeometry(g geom.T) ([]closestpair.Point, error) {
	switch g := g.(type) {
	case *geom.Point:
		if g.Empty() {
			return []closestpair.Point{}, nil
		}
		if g.Layout() != geom.XY {
			return nil, fmt.Errorf("%w: got %v", ErrUnsupportedLayout, g.Layout())
		}
		p, err := fromCoord(g.Coords())
		if err != nil {
			return nil, err
		}
		return []closestpair.Point{p}, nil

	case *geom.MultiPoint:
		n := g.NumPoints()
		out := make([]closestpair.Point, 0, n)
		if n == 0 {
			return out, nil
		}
		if g.Layout() != geom.XY {
			return nil, fmt.Errorf("%w: got %v", ErrUnsupportedLayout, g.Layout())
		}
		for i := 0; i < n; i++ {
			member := g.Point(i)
			if member.Empty() {
				continue
			}
			p, err := fromCoord(member.Coords())
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
			out = append(out, p)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedGeometry, g)
	}
}

// ToMultiPoint converts points into an XY *geom.MultiPoint.
func ToMultiPoint(points []closestpair.Point) (*geom.MultiPoint, error) {
	flat := make([]float64, 0, 2*len(points))
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: point %d is %v", ErrNonFinite, i, p)
		}
		flat = append(flat, p.X, p.Y)
	}

	return geom.NewMultiPointFlat(geom.XY, flat), nil
}

// fromCoord converts one XY coordinate.
func fromCoord(c geom.Coord) (closestpair.Point, error) {
	p := closestpair.Point{X: c.X(), Y: c.Y()}
	if !finite(p.X) || !finite(p.Y) {
		return closestpair.Point{}, fmt.Errorf("%w: %v", ErrNonFinite, p)
	}

	return p, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
