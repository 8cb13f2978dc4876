package shape

import (
	"fmt"
	"maps"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultLayer is the layer assigned to features without a "layer" property.
const DefaultLayer = "0"

// Shape is one cuttable contour of a drawing.
type Shape struct {
	ID       string
	Layer    string
	Optimize bool // false: keep this shape's relative export order
	Reversed bool // true once Reverse flipped the stored direction

	Geometry   orb.Geometry
	Entry      orb.Point
	Exit       orb.Point
	Properties geojson.Properties // passthrough for round-tripping
}

// New builds a Shape and derives its endpoints from g.
func New(id, layer string, g orb.Geometry, optimize bool) (Shape, error) {
	entry, exit, err := Endpoints(g)
	if err != nil {
		return Shape{}, fmt.Errorf("shape %q: %w", id, err)
	}
	if layer == "" {
		layer = DefaultLayer
	}

	return Shape{
		ID:       id,
		Layer:    layer,
		Optimize: optimize,
		Geometry: g,
		Entry:    entry,
		Exit:     exit,
	}, nil
}

// Closed reports whether the tool leaves the shape where it entered.
func (s Shape) Closed() bool { return s.Entry == s.Exit }

// Reverse returns a copy cut in the opposite direction: the geometry is
// reversed, Entry and Exit are swapped and Reversed toggles.
func (s Shape) Reverse() Shape {
	out := s
	out.Geometry = Reversed(s.Geometry)
	out.Entry, out.Exit = s.Exit, s.Entry
	out.Reversed = !s.Reversed
	if s.Properties != nil {
		out.Properties = maps.Clone(s.Properties)
	}

	return out
}

// Layer is an ordered group of shapes optimized together.
type Layer struct {
	Name   string
	Shapes []Shape
}

// Fixed returns the positions (within the layer) of shapes that must keep
// their relative order.
func (l Layer) Fixed() []int {
	var out []int
	for i, s := range l.Shapes {
		if !s.Optimize {
			out = append(out, i)
		}
	}

	return out
}

// GroupByLayer splits shapes by layer name. Layers appear in first-seen
// order and shapes keep their input order inside a layer.
func GroupByLayer(shapes []Shape) []Layer {
	var (
		layers []Layer
		index  = make(map[string]int)
	)
	for _, s := range shapes {
		name := s.Layer
		if name == "" {
			name = DefaultLayer
		}
		i, ok := index[name]
		if !ok {
			i = len(layers)
			index[name] = i
			layers = append(layers, Layer{Name: name})
		}
		layers[i].Shapes = append(layers[i].Shapes, s)
	}

	return layers
}
