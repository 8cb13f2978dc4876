// Command lvroute orders the shapes of a drawing for CAM export.
//
// It reads a GeoJSON FeatureCollection, groups features by their "layer"
// property, optimizes the cutting order of each layer so that travel
// between shapes is short, and writes the reordered collection.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
