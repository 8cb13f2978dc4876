package shape_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/shape"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	square := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}

	cases := []struct {
		name        string
		g           orb.Geometry
		entry, exit orb.Point
	}{
		{"point", orb.Point{2, 3}, orb.Point{2, 3}, orb.Point{2, 3}},
		{"multipoint", orb.MultiPoint{{1, 1}, {2, 2}, {3, 3}}, orb.Point{1, 1}, orb.Point{3, 3}},
		{"linestring", orb.LineString{{0, 0}, {5, 0}, {5, 5}}, orb.Point{0, 0}, orb.Point{5, 5}},
		{"multilinestring", orb.MultiLineString{{{0, 0}, {1, 0}}, {}, {{2, 0}, {3, 0}}}, orb.Point{0, 0}, orb.Point{3, 0}},
		{"ring", square, orb.Point{0, 0}, orb.Point{0, 0}},
		{"polygon", orb.Polygon{square}, orb.Point{0, 0}, orb.Point{0, 0}},
		{"multipolygon", orb.MultiPolygon{{square}, {{{5, 5}, {6, 5}, {6, 6}, {5, 5}}}}, orb.Point{0, 0}, orb.Point{5, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry, exit, err := shape.Endpoints(tc.g)
			require.NoError(t, err)
			diff(t, tc.entry, entry)
			diff(t, tc.exit, exit)
		})
	}
}

func TestEndpoints_Errors(t *testing.T) {
	var err error
	_, _, err = shape.Endpoints(nil)
	assert.ErrorIs(t, err, shape.ErrEmptyGeometry)
	_, _, err = shape.Endpoints(orb.LineString{})
	assert.ErrorIs(t, err, shape.ErrEmptyGeometry)
	_, _, err = shape.Endpoints(orb.MultiLineString{{}, {}})
	assert.ErrorIs(t, err, shape.ErrEmptyGeometry)
	_, _, err = shape.Endpoints(orb.Polygon{})
	assert.ErrorIs(t, err, shape.ErrEmptyGeometry)
	_, _, err = shape.Endpoints(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}})
	assert.ErrorIs(t, err, shape.ErrUnsupportedGeometry)
	_, _, err = shape.Endpoints(orb.Collection{orb.Point{1, 1}})
	assert.ErrorIs(t, err, shape.ErrUnsupportedGeometry)
}

func TestReversed_DoesNotMutateInput(t *testing.T) {
	ls := orb.LineString{{0, 0}, {1, 0}, {2, 0}}
	got := shape.Reversed(ls)

	diff(t, orb.LineString{{2, 0}, {1, 0}, {0, 0}}, got)
	diff(t, orb.LineString{{0, 0}, {1, 0}, {2, 0}}, ls)
}

func TestReversed_MultiLineString(t *testing.T) {
	mls := orb.MultiLineString{{{0, 0}, {1, 0}}, {{2, 0}, {3, 0}}}
	got := shape.Reversed(mls)
	diff(t, orb.MultiLineString{{{3, 0}, {2, 0}}, {{1, 0}, {0, 0}}}, got)

	entry, exit, err := shape.Endpoints(got)
	require.NoError(t, err)
	diff(t, orb.Point{3, 0}, entry)
	diff(t, orb.Point{0, 0}, exit)
}

func TestReversed_ClosedContourKeepsStart(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	got := shape.Reversed(orb.Polygon{ring})
	diff(t, orb.Polygon{{{0, 0}, {1, 1}, {1, 0}, {0, 0}}}, got)
	assert.Nil(t, shape.Reversed(nil))
}
