package shaperead

import (
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
)

// writePointFile builds a small point shapefile: four stations spread over
// a 10x10 degree area.
func writePointFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.shp")

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		t.Fatalf("create shapefile: %v", err)
	}
	w.SetFields([]shp.Field{
		shp.StringField("NAME", 25),
		shp.FloatField("DEPTH", 14, 4),
		shp.NumberField("ID", 10),
	})

	points := []struct {
		x, y  float64
		name  string
		depth float64
		id    int
	}{
		{-99.5, 32.0, "alpha", 12.5, 1},
		{-98.0, 33.5, "bravo", 47.25, 2},
		{-95.0, 36.0, "charlie", 3.0, 3},
		{-90.5, 39.5, "delta", 88.125, 4},
	}
	for row, p := range points {
		w.Write(&shp.Point{X: p.x, Y: p.y})
		w.WriteAttribute(row, 0, p.name)
		w.WriteAttribute(row, 1, p.depth)
		w.WriteAttribute(row, 2, p.id)
	}
	w.Close()
	return path
}

func TestReadAll(t *testing.T) {
	path := writePointFile(t)
	records, err := Read(path, Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	first := records[0]
	if first.Number != 1 {
		t.Errorf("record numbers are 1-based, got %d", first.Number)
	}
	if first.Geometry.Type != GeometryTypePoint {
		t.Errorf("geometry type = %v, want Point", first.Geometry.Type)
	}
	if len(first.Geometry.Coordinates) != 1 || first.Geometry.Coordinates[0][0] != -99.5 {
		t.Errorf("geometry coordinates = %v", first.Geometry.Coordinates)
	}

	if name, _ := first.Attributes["NAME"]; name != "alpha" {
		t.Errorf("NAME = %v, want alpha", name)
	}
	if depth, _ := first.Attributes["DEPTH"]; depth != 12.5 {
		t.Errorf("DEPTH = %v (%T), want float64 12.5", depth, depth)
	}
	if id, _ := first.Attributes["ID"]; id != int64(1) {
		t.Errorf("ID = %v (%T), want int64 1", id, id)
	}
}

func TestReadRecordNumbers(t *testing.T) {
	path := writePointFile(t)
	records, err := Read(path, Options{RecordNumbers: []int{2, 4}})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Number != 2 || records[1].Number != 4 {
		t.Errorf("record numbers = %d, %d", records[0].Number, records[1].Number)
	}
	if records[0].Attributes["NAME"] != "bravo" {
		t.Errorf("record 2 NAME = %v", records[0].Attributes["NAME"])
	}
}

func TestReadBoundingBox(t *testing.T) {
	path := writePointFile(t)
	box := &Bounds{MinX: -100, MinY: 31, MaxX: -97, MaxY: 34}
	records, err := Read(path, Options{BoundingBox: box})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records inside the box, got %d", len(records))
	}
	// File order is preserved through the spatial index.
	if records[0].Attributes["NAME"] != "alpha" || records[1].Attributes["NAME"] != "bravo" {
		t.Errorf("bbox records = %v, %v", records[0].Attributes["NAME"], records[1].Attributes["NAME"])
	}
}

func TestReadSelector(t *testing.T) {
	path := writePointFile(t)
	records, err := Read(path, Options{
		Selector: func(attrs map[string]interface{}) bool {
			depth, ok := attrs["DEPTH"].(float64)
			return ok && depth > 10
		},
	})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records deeper than 10, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Attributes["NAME"] == "charlie" {
			t.Error("charlie is too shallow to pass the selector")
		}
	}
}

func TestReadAttributeFilter(t *testing.T) {
	path := writePointFile(t)
	records, err := Read(path, Options{Attributes: []string{"name"}})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("attribute filter must not drop records, got %d", len(records))
	}
	for _, rec := range records {
		if len(rec.Attributes) != 1 {
			t.Errorf("record %d attributes = %v", rec.Number, rec.Attributes)
		}
		// The filter is case-insensitive but keeps the file's field names.
		if _, ok := rec.Attributes["NAME"]; !ok {
			t.Errorf("record %d missing NAME", rec.Number)
		}
	}
}

// The selector sees the full attribute map even when the attribute filter
// later restricts what the caller receives.
func TestReadSelectorSeesAllAttributes(t *testing.T) {
	path := writePointFile(t)
	records, err := Read(path, Options{
		Attributes: []string{"NAME"},
		Selector: func(attrs map[string]interface{}) bool {
			id, ok := attrs["ID"].(int64)
			return ok && id%2 == 0
		},
	})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 even-ID records, got %d", len(records))
	}
	for _, rec := range records {
		if _, ok := rec.Attributes["ID"]; ok {
			t.Error("ID should have been pruned from the returned attributes")
		}
	}
}

func TestReadGeoCoords(t *testing.T) {
	path := writePointFile(t)
	records, err := Read(path, Options{UseGeoCoords: true})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for _, rec := range records {
		if !rec.Geographic {
			t.Errorf("record %d should be marked geographic", rec.Number)
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.shp"), Options{})
	if err == nil {
		t.Fatal("expected an error for a missing shapefile")
	}
}

func TestReadPolyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.shp")
	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		t.Fatalf("create shapefile: %v", err)
	}
	w.SetFields([]shp.Field{shp.StringField("NAME", 25)})
	line := &shp.PolyLine{
		Box:       shp.Box{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
		NumParts:  1,
		NumPoints: 3,
		Parts:     []int32{0},
		Points:    []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	}
	w.Write(line)
	w.WriteAttribute(0, 0, "ridge")
	w.Close()

	records, err := Read(path, Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	g := records[0].Geometry
	if g.Type != GeometryTypePolyLine {
		t.Errorf("geometry type = %v, want PolyLine", g.Type)
	}
	if len(g.Coordinates) != 3 || len(g.Parts) != 1 {
		t.Errorf("coordinates = %v, parts = %v", g.Coordinates, g.Parts)
	}
	if g.Bounds != (Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}) {
		t.Errorf("bounds = %+v", g.Bounds)
	}
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"contained", Bounds{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}, true},
		{"overlapping", Bounds{MinX: 8, MinY: 8, MaxX: 12, MaxY: 12}, true},
		{"touching edge", Bounds{MinX: 10, MinY: 0, MaxX: 12, MaxY: 10}, true},
		{"disjoint", Bounds{MinX: 11, MinY: 11, MaxX: 12, MaxY: 12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}
