package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/shapeproj/pkg/shapeproj"
)

func main() {
	opts := shapeproj.DefaultReadOptions()

	// Only records inside the viewport
	opts.BoundingBox = &shapeproj.Bounds{
		MinX: -100, MinY: 30,
		MaxX: -95, MaxY: 35,
	}

	// Only deep wells
	opts.Selector = func(attrs map[string]interface{}) bool {
		depth, ok := attrs["DEPTH"].(float64)
		return ok && depth > 100
	}

	// Only the attributes we care about
	opts.Attributes = []string{"NAME", "DEPTH"}

	var proj shapeproj.Projection
	var records []shapeproj.Record
	if err := shapeproj.ReadInto("wells.shp", opts, &proj, &records); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Projection: %s, %d records\n", proj.Kind(), len(records))
	for _, rec := range records {
		name, _ := rec.Attribute("NAME")
		depth, _ := rec.Attribute("DEPTH")
		fmt.Printf("#%d %v: %v m\n", rec.Number, name, depth)
	}
}
