package shape

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Endpoints returns where the tool enters and leaves g when it is cut in its
// stored direction.
//
//   - Point:           entry = exit = the point.
//   - MultiPoint:      first and last point.
//   - LineString:      first and last vertex.
//   - MultiLineString: first vertex of the first line, last vertex of the last line.
//   - Ring, Polygon:   closed contour, entry = exit = first vertex (outer ring).
//   - MultiPolygon:    first vertex of the first polygon, first vertex of the last polygon.
//
// Errors: ErrEmptyGeometry, ErrUnsupportedGeometry.
func Endpoints(g orb.Geometry) (entry, exit orb.Point, err error) {
	switch v := g.(type) {
	case nil:
		return orb.Point{}, orb.Point{}, ErrEmptyGeometry
	case orb.Point:
		return v, v, nil
	case orb.MultiPoint:
		return firstLast(v)
	case orb.LineString:
		return firstLast(v)
	case orb.MultiLineString:
		lines := nonEmptyLines(v)
		if len(lines) == 0 {
			return orb.Point{}, orb.Point{}, ErrEmptyGeometry
		}
		first := lines[0]
		last := lines[len(lines)-1]
		return first[0], last[len(last)-1], nil
	case orb.Ring:
		if len(v) == 0 {
			return orb.Point{}, orb.Point{}, ErrEmptyGeometry
		}
		return v[0], v[0], nil
	case orb.Polygon:
		p, ok := polygonStart(v)
		if !ok {
			return orb.Point{}, orb.Point{}, ErrEmptyGeometry
		}
		return p, p, nil
	case orb.MultiPolygon:
		var starts []orb.Point
		for _, poly := range v {
			if p, ok := polygonStart(poly); ok {
				starts = append(starts, p)
			}
		}
		if len(starts) == 0 {
			return orb.Point{}, orb.Point{}, ErrEmptyGeometry
		}
		return starts[0], starts[len(starts)-1], nil
	default:
		return orb.Point{}, orb.Point{}, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.GeoJSONType())
	}
}

// Reversed returns a deep copy of g whose cutting direction is reversed:
// vertex order within every line/ring and the order of parts are flipped.
// Points and unsupported types are returned as clones unchanged.
func Reversed(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	c := orb.Clone(g)
	switch v := c.(type) {
	case orb.MultiPoint:
		reversePoints(v)
	case orb.LineString:
		reversePoints(v)
	case orb.Ring:
		reversePoints(v)
	case orb.MultiLineString:
		for _, ls := range v {
			reversePoints(ls)
		}
		reverseParts(v)
	case orb.Polygon:
		for _, r := range v {
			reversePoints(r)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			for _, r := range poly {
				reversePoints(r)
			}
		}
		reverseParts(v)
	}

	return c
}

func firstLast[S ~[]orb.Point](ps S) (orb.Point, orb.Point, error) {
	if len(ps) == 0 {
		return orb.Point{}, orb.Point{}, ErrEmptyGeometry
	}
	return ps[0], ps[len(ps)-1], nil
}

func nonEmptyLines(mls orb.MultiLineString) []orb.LineString {
	out := make([]orb.LineString, 0, len(mls))
	for _, ls := range mls {
		if len(ls) > 0 {
			out = append(out, ls)
		}
	}
	return out
}

func polygonStart(p orb.Polygon) (orb.Point, bool) {
	if len(p) == 0 || len(p[0]) == 0 {
		return orb.Point{}, false
	}
	return p[0][0], true
}

func reversePoints[S ~[]orb.Point](ps S) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}

func reverseParts[S ~[]E, E any](s S) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
