// Package shape turns drawing geometry into the entry/exit endpoints the
// route optimizer works on.
//
// A Shape wraps one orb.Geometry together with its layer, its "optimize" flag
// (false pins the shape's relative export order) and the point where the tool
// enters and leaves it. Closed contours (rings, polygons) enter and leave at
// the same vertex.
//
// Drawings are read from and written back to GeoJSON FeatureCollections with
// these feature properties:
//
//	layer     string, default "0"
//	optimize  bool,   default true
//	id        string, used when the feature has no top-level id
//
// The package performs no logging and no file I/O; callers hand it bytes or
// decoded collections.
package shape
