package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/shapeproj/pkg/shapeproj"
)

func main() {
	// Create reader
	reader := shapeproj.NewReader()

	// Read shapefile and its .prj sidecar
	proj, records, err := reader.Read("roads.shp")
	if err != nil {
		log.Fatal(err)
	}

	// Print projection info
	if proj.Resolved() {
		fmt.Printf("Projection: %s (%s)\n", proj.Kind(), proj.MatchedName())
	} else {
		fmt.Printf("Projection: unresolved (%s)\n", proj.Reason())
	}

	// Print record count
	fmt.Printf("Records: %d\n", len(records))
}
