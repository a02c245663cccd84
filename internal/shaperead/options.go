package shaperead

// Bounds is an axis-aligned bounding box in the shapefile's coordinate
// space: planar X/Y for projected data, lon/lat for geographic data.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Intersects reports whether b and o overlap. Touching edges count as an
// intersection.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Options control record selection. The zero value reads every record with
// its full attribute set.
//
// Filters compose in a fixed order: the record-number filter is applied
// while scanning the file, then the bounding box, then the selector
// predicate. The attribute filter only restricts which attributes the
// surviving records carry; it never drops records.
type Options struct {
	// RecordNumbers restricts reading to the given 1-based record numbers.
	// Nil means all records.
	RecordNumbers []int

	// BoundingBox keeps only records whose shape bounds intersect the box.
	BoundingBox *Bounds

	// Selector is a predicate over a record's full attribute map. Records
	// for which it returns false are dropped. The predicate sees every
	// attribute regardless of the Attributes filter.
	Selector func(attrs map[string]interface{}) bool

	// Attributes restricts the attribute maps of returned records to the
	// named fields (case-insensitive). Nil means all attributes.
	Attributes []string

	// UseGeoCoords marks returned geometry as geographic: coordinate pairs
	// are surfaced as longitude/latitude rather than planar X/Y. The
	// values themselves are taken from the file unchanged.
	UseGeoCoords bool
}
