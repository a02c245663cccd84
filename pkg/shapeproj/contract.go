package shapeproj

import (
	"errors"
	"fmt"

	"github.com/beetlebugorg/shapeproj/internal/prj"
)

// ErrUsage indicates the caller violated the read contract. It is detected
// and returned before any file is opened.
var ErrUsage = errors.New("shapeproj: usage error")

// ErrMissingCatalog indicates the projection catalog could not be loaded.
// Unlike all other projection failures this one is fatal: resolution cannot
// proceed without a catalog.
var ErrMissingCatalog = prj.ErrMissingCatalog

// ReadInto reads the shapefile at filename into the supplied result slots.
//
// The projection is the mandatory first result: results[0] must be a
// *Projection and results[1] a *[]Record. Requesting fewer than the two
// results is a usage error, reported before any I/O occurs.
//
// Example:
//
//	var proj shapeproj.Projection
//	var records []shapeproj.Record
//	err := shapeproj.ReadInto("roads.shp", shapeproj.DefaultReadOptions(), &proj, &records)
func ReadInto(filename string, opts ReadOptions, results ...interface{}) error {
	if len(results) < 2 {
		return fmt.Errorf("%w: projection and record results are both required, got %d result slots",
			ErrUsage, len(results))
	}
	if len(results) > 2 {
		return fmt.Errorf("%w: at most two result slots, got %d", ErrUsage, len(results))
	}
	projDst, ok := results[0].(*Projection)
	if !ok {
		return fmt.Errorf("%w: first result slot must be *Projection, got %T", ErrUsage, results[0])
	}
	recDst, ok := results[1].(*[]Record)
	if !ok {
		return fmt.Errorf("%w: second result slot must be *[]Record, got %T", ErrUsage, results[1])
	}

	proj, records, err := NewReader().ReadWithOptions(filename, opts)
	if err != nil {
		return err
	}
	*projDst = *proj
	*recDst = records
	return nil
}
