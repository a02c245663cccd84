// Package shaperead reads ESRI shapefile geometry and dBASE attribute
// records, with optional record-number, bounding-box, predicate, and
// attribute selection.
//
// The package is deliberately independent of projection resolution: it
// reads what is in the file and leaves coordinate interpretation to the
// caller.
package shaperead

import (
	"fmt"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// GeometryType is the shape class of a record.
type GeometryType int

const (
	GeometryTypePoint GeometryType = iota
	GeometryTypeMultiPoint
	GeometryTypePolyLine
	GeometryTypePolygon
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
type Record struct {
	// Number is the 1-based position of the record in the file.
	Number int

	Geometry   Geometry
	Attributes map[string]interface{}

	// Geographic mirrors Options.UseGeoCoords: when set, coordinate pairs
	// are longitude/latitude.
	Geographic bool
}

// Read reads records from the shapefile at path, applying the selection in
// opts. The path may omit the .shp extension.
func Read(path string, opts Options) ([]Record, error) {
	r, err := shp.Open(withShpExt(path))
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	fields := r.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = cleanFieldName(f.Name)
	}

	wantedRecords := recordNumberSet(opts.RecordNumbers)

	var records []Record
	num := 0
	for r.Next() {
		num++
		if wantedRecords != nil && !wantedRecords[num] {
			continue
		}

		_, shape := r.Shape()
		g, err := convertShape(shape)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", num, err)
		}

		attrs := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			attrs[names[i]] = parseAttribute(r.ReadAttribute(num-1, i), f.Fieldtype)
		}

		records = append(records, Record{
			Number:     num,
			Geometry:   g,
			Attributes: attrs,
			Geographic: opts.UseGeoCoords,
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile: %w", err)
	}

	if opts.BoundingBox != nil {
		records = filterBounds(records, *opts.BoundingBox)
	}
	if opts.Selector != nil {
		kept := records[:0]
		for _, rec := range records {
			if opts.Selector(rec.Attributes) {
				kept = append(kept, rec)
			}
		}
		records = kept
	}
	if opts.Attributes != nil {
		restrictAttributes(records, opts.Attributes)
	}

	return records, nil
}

func withShpExt(path string) string {
	return strings.TrimSuffix(path, ".shp") + ".shp"
}

func recordNumberSet(nums []int) map[int]bool {
	if nums == nil {
		return nil
	}
	set := make(map[int]bool, len(nums))
	for _, n := range nums {
		set[n] = true
	}
	return set
}

// restrictAttributes prunes each record's attribute map down to the named
// fields, case-insensitively.
func restrictAttributes(records []Record, names []string) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = true
	}
	for i := range records {
		attrs := make(map[string]interface{}, len(names))
		for k, v := range records[i].Attributes {
			if wanted[strings.ToLower(k)] {
				attrs[k] = v
			}
		}
		records[i].Attributes = attrs
	}
}

// cleanFieldName converts a raw dBASE field name into a usable string.
// Field names are fixed-width and NUL padded.
func cleanFieldName(name [11]byte) string {
	s := string(name[:])
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// parseAttribute converts a raw dBASE attribute value based on the field
// type: numeric and float fields become int64 or float64, logical fields
// become bool, everything else stays a trimmed string.
func parseAttribute(raw string, fieldType byte) interface{} {
	s := strings.TrimSpace(strings.Trim(raw, "\x00"))
	switch fieldType {
	case 'N', 'F':
		if s == "" {
			return nil
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	case 'L':
		switch s {
		case "T", "t", "Y", "y":
			return true
		case "F", "f", "N", "n":
			return false
		}
		return nil
	default:
		return s
	}
}

// convertShape flattens a go-shp shape into a Geometry.
func convertShape(s shp.Shape) (Geometry, error) {
	switch t := s.(type) {
	case *shp.Point:
		return pointGeometry(t.X, t.Y), nil
	case *shp.PointM:
		return pointGeometry(t.X, t.Y), nil
	case *shp.PointZ:
		g := pointGeometry(t.X, t.Y)
		g.Coordinates[0] = append(g.Coordinates[0], t.Z)
		return g, nil
	case *shp.MultiPoint:
		return multiGeometry(GeometryTypeMultiPoint, t.Box, t.Points, nil, nil), nil
	case *shp.MultiPointM:
		return multiGeometry(GeometryTypeMultiPoint, t.Box, t.Points, nil, nil), nil
	case *shp.MultiPointZ:
		return multiGeometry(GeometryTypeMultiPoint, t.Box, t.Points, nil, t.ZArray), nil
	case *shp.PolyLine:
		return multiGeometry(GeometryTypePolyLine, t.Box, t.Points, t.Parts, nil), nil
	case *shp.PolyLineM:
		return multiGeometry(GeometryTypePolyLine, t.Box, t.Points, t.Parts, nil), nil
	case *shp.PolyLineZ:
		return multiGeometry(GeometryTypePolyLine, t.Box, t.Points, t.Parts, t.ZArray), nil
	case *shp.Polygon:
		return multiGeometry(GeometryTypePolygon, t.Box, t.Points, t.Parts, nil), nil
	case *shp.PolygonM:
		return multiGeometry(GeometryTypePolygon, t.Box, t.Points, t.Parts, nil), nil
	case *shp.PolygonZ:
		return multiGeometry(GeometryTypePolygon, t.Box, t.Points, t.Parts, t.ZArray), nil
	case *shp.Null:
		return Geometry{Type: GeometryTypeNull}, nil
	default:
		return Geometry{}, fmt.Errorf("unsupported shape type %T", s)
	}
}

func pointGeometry(x, y float64) Geometry {
	return Geometry{
		Type:        GeometryTypePoint,
		Coordinates: [][]float64{{x, y}},
		Bounds:      Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y},
	}
}

func multiGeometry(gt GeometryType, box shp.Box, points []shp.Point, parts []int32, z []float64) Geometry {
	coords := make([][]float64, len(points))
	for i, p := range points {
		if z != nil && i < len(z) {
			coords[i] = []float64{p.X, p.Y, z[i]}
		} else {
			coords[i] = []float64{p.X, p.Y}
		}
	}
	var partIdx []int
	if len(parts) > 0 {
		partIdx = make([]int, len(parts))
		for i, p := range parts {
			partIdx[i] = int(p)
		}
	}
	return Geometry{
		Type:        gt,
		Coordinates: coords,
		Parts:       partIdx,
		Bounds:      Bounds{MinX: box.MinX, MinY: box.MinY, MaxX: box.MaxX, MaxY: box.MaxY},
	}
}
