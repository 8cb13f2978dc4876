package shape

import (
	"fmt"
	"maps"

	"github.com/paulmach/orb/geojson"
)

// Feature property keys.
const (
	PropLayer    = "layer"
	PropOptimize = "optimize"
	PropID       = "id"
	PropOrder    = "order"
	PropReversed = "reversed"
)

// Decode parses a GeoJSON FeatureCollection into shapes.
func Decode(data []byte) ([]Shape, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("shape: decode feature collection: %w", err)
	}

	return FromFeatureCollection(fc)
}

// FromFeatureCollection converts every feature to a Shape in collection order.
// A feature without a usable cutting path fails the whole conversion; the
// error names the feature index.
func FromFeatureCollection(fc *geojson.FeatureCollection) ([]Shape, error) {
	if fc == nil {
		return nil, ErrNilCollection
	}
	out := make([]Shape, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f == nil {
			return nil, fmt.Errorf("feature %d: %w", i, ErrEmptyGeometry)
		}
		id := featureID(f, i)
		s, err := New(id,
			f.Properties.MustString(PropLayer, DefaultLayer),
			f.Geometry,
			f.Properties.MustBool(PropOptimize, true),
		)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		s.Properties = maps.Clone(f.Properties)
		out = append(out, s)
	}

	return out, nil
}

// ToFeatureCollection writes layers back in order. Each feature carries its
// original properties plus layer, optimize, order (position within the layer)
// and reversed.
func ToFeatureCollection(layers []Layer) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, l := range layers {
		for pos, s := range l.Shapes {
			f := geojson.NewFeature(s.Geometry)
			if s.Properties != nil {
				f.Properties = maps.Clone(s.Properties)
			}
			if s.ID != "" {
				f.ID = s.ID
			}
			f.Properties[PropLayer] = l.Name
			f.Properties[PropOptimize] = s.Optimize
			f.Properties[PropOrder] = pos
			f.Properties[PropReversed] = s.Reversed
			fc.Append(f)
		}
	}

	return fc
}

func featureID(f *geojson.Feature, i int) string {
	if f.ID != nil {
		return fmt.Sprint(f.ID)
	}
	if id := f.Properties.MustString(PropID, ""); id != "" {
		return id
	}

	return fmt.Sprintf("%d", i)
}
