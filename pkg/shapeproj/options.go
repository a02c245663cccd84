package shapeproj

// Bounds is an axis-aligned bounding box in the shapefile's coordinate
// space: planar X/Y for projected data, lon/lat for geographic data.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ReadOptions configures record selection.
//
// Filters compose in a fixed order: the record-number filter, then the
// bounding box, then the selector predicate. The attribute filter only
// restricts which attributes the surviving records carry.
type ReadOptions struct {
	// RecordNumbers restricts reading to the given 1-based record
	// numbers. Nil means all records.
	RecordNumbers []int

	// BoundingBox keeps only records whose shape bounds intersect the
	// box.
	BoundingBox *Bounds

	// Selector is a predicate over a record's full attribute map; records
	// for which it returns false are dropped. It sees every attribute
	// regardless of the Attributes filter.
	Selector func(attrs map[string]interface{}) bool

	// Attributes restricts returned attribute maps to the named fields,
	// case-insensitively. Nil means all attributes.
	Attributes []string

	// UseGeoCoords marks returned geometry as geographic
	// longitude/latitude pairs rather than planar X/Y.
	UseGeoCoords bool
}

// DefaultReadOptions returns default options: every record, all
// attributes, planar coordinates.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{}
}
