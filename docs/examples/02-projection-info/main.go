package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/beetlebugorg/shapeproj/pkg/shapeproj"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: projection-info <file.shp>")
		os.Exit(1)
	}

	// Enable debug diagnostics to watch the resolution pipeline
	diag := logrus.New()
	diag.SetLevel(logrus.DebugLevel)

	reader, err := shapeproj.NewReaderConfig(shapeproj.Config{Log: diag})
	if err != nil {
		log.Fatal(err)
	}

	proj, _, err := reader.Read(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	if !proj.Resolved() {
		fmt.Printf("No projection available: %s\n", proj.Reason())
		return
	}

	fmt.Printf("Matched:        %s\n", proj.MatchedName())
	fmt.Printf("Kind:           %s\n", proj.Kind())
	lat, lon, _ := proj.Origin()
	fmt.Printf("Origin:         %.6f, %.6f\n", lat, lon)
	fmt.Printf("False easting:  %.1f\n", proj.FalseEasting())
	fmt.Printf("False northing: %.1f\n", proj.FalseNorthing())
	fmt.Printf("Scale factor:   %g\n", proj.ScaleFactor())
	fmt.Printf("Semimajor axis: %.3f m\n", proj.SemimajorAxis())
	fmt.Printf("Flattening:     %.9f\n", proj.Flattening())

	if zone, ok := proj.Zone(); ok {
		latLim, lonLim, _ := proj.MapLimits()
		fmt.Printf("UTM zone:       %s\n", zone)
		fmt.Printf("Latitude:       %g to %g\n", latLim[0], latLim[1])
		fmt.Printf("Longitude:      %g to %g\n", lonLim[0], lonLim[1])
	}

	// Which fields came from the catalog, and which are defaults?
	fmt.Printf("Explicit:       %+v\n", proj.Explicit())
}
