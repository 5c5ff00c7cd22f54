// Command reproject reads a GeoJSON FeatureCollection on stdin, projects
// every geometry with a Lambert Conformal Conic projection, and writes the
// projected FeatureCollection to stdout.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/paulmach/orb/geojson"
	projections "github.com/tingold/orb-projections"
)

func main() {
	refLon := flag.Float64("ref-lon", 0, "reference longitude in degrees")
	refLat := flag.Float64("ref-lat", 0, "reference latitude in degrees")
	par1 := flag.Float64("par1", 30, "first standard parallel in degrees")
	par2 := flag.Float64("par2", 60, "second standard parallel in degrees")
	inverse := flag.Bool("inverse", false, "apply the inverse transform instead")
	flag.Parse()

	lcc, err := projections.NewLambertConformalConic().
		RefLonLat(*refLon, *refLat).
		StandardParallels(*par1, *par2).
		Initialize()
	if err != nil {
		log.Fatalf("Failed to initialize projection: %v", err)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		log.Fatalf("Failed to parse GeoJSON: %v", err)
	}

	for _, f := range fc.Features {
		if *inverse {
			f.Geometry, err = projections.InverseProjectGeometry(lcc, f.Geometry)
		} else {
			f.Geometry, err = projections.ProjectGeometry(lcc, f.Geometry)
		}
		if err != nil {
			log.Fatalf("Failed to reproject feature: %v", err)
		}
	}

	out, err := fc.MarshalJSON()
	if err != nil {
		log.Fatalf("Failed to marshal GeoJSON: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
