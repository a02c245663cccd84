package shapeproj

// GeometryType is the shape class of a record.
//
// Constant values mirror the internal reader types; do not reorder.
type GeometryType int

const (
	// GeometryTypePoint is a single point location.
	GeometryTypePoint GeometryType = iota

	// GeometryTypeMultiPoint is an unordered set of points.
	GeometryTypeMultiPoint

	// GeometryTypePolyLine is one or more connected line parts.
	GeometryTypePolyLine

	// GeometryTypePolygon is one or more closed rings.
	GeometryTypePolygon

	// GeometryTypeNull is a placeholder record with no geometry.
	GeometryTypeNull
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	case GeometryTypePolyLine:
		return "PolyLine"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Null"
	}
}

// Geometry is the spatial part of a record.
//
// Coordinates are [x y] pairs, or [x y z] where the shapefile carries Z
// values. Multi-part shapes are flattened; Parts holds the index of each
// part's first coordinate.
type Geometry struct {
	Type        GeometryType
	Coordinates [][]float64
	Parts       []int
	Bounds      Bounds
}

// Record is one shapefile record: geometry plus its dBASE attributes.
//
// Attribute values are decoded by dBASE field type: numeric fields become
// int64 or float64, logical fields bool, everything else string.
type Record struct {
	// Number is the 1-based position of the record in the file.
	Number int

	Geometry   Geometry
	Attributes map[string]interface{}

	// Geographic mirrors ReadOptions.UseGeoCoords: when set, coordinate
	// pairs are longitude/latitude.
	Geographic bool
}

// Attribute returns a specific attribute value by name.
//
// Returns the value and true if the attribute exists, or nil and false if
// not found.
func (r *Record) Attribute(name string) (interface{}, bool) {
	val, ok := r.Attributes[name]
	return val, ok
}
