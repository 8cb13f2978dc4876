package shape

import "errors"

var (
	// ErrEmptyGeometry indicates a geometry with no vertices (or a nil geometry).
	ErrEmptyGeometry = errors.New("shape: empty geometry")

	// ErrUnsupportedGeometry indicates a geometry type that has no cutting path (e.g. Bound, Collection).
	ErrUnsupportedGeometry = errors.New("shape: unsupported geometry type")

	// ErrNilCollection indicates a nil FeatureCollection was passed in.
	ErrNilCollection = errors.New("shape: nil feature collection")
)
