// Package shapeproj reads ESRI shapefiles together with the map projection
// described by their .prj sidecar files.
//
// The projection is resolved from the sidecar's Well-Known-Text by name:
// the coordinate system name is extracted, normalized, looked up in a
// catalog of proj4 definitions, and translated into a Projection
// descriptor. Resolution degrades gracefully — a missing sidecar, an
// unrecognized text, or an unknown name all yield an unresolved Projection
// with a Reason, while the geometry and attribute records are still
// returned.
package shapeproj

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/beetlebugorg/shapeproj/internal/prj"
	"github.com/beetlebugorg/shapeproj/internal/shaperead"
)

// Reader reads shapefiles and resolves their map projection.
//
// Create a reader with NewReader or NewReaderConfig and use Read or
// ReadWithOptions. A Reader is safe for concurrent use.
type Reader interface {
	// Read reads the shapefile at filename and returns the resolved
	// projection followed by the geometry and attribute records.
	//
	// The projection is always returned, resolved or not; a reading error
	// only affects the records.
	Read(filename string) (*Projection, []Record, error)

	// ReadWithOptions reads a shapefile with record selection options.
	ReadWithOptions(filename string, opts ReadOptions) (*Projection, []Record, error)
}

// Config customizes reader construction.
type Config struct {
	// CatalogPath points to an external projection catalog. Empty means
	// the catalog embedded in the binary.
	CatalogPath string

	// Log receives advisory diagnostics during resolution. Nil discards
	// them.
	Log logrus.FieldLogger
}

// NewReader creates a reader over the embedded projection catalog.
//
// Example:
//
//	reader := shapeproj.NewReader()
//	proj, records, err := reader.Read("roads.shp")
func NewReader() Reader {
	r, err := NewReaderConfig(Config{})
	if err != nil {
		// The embedded catalog always parses; a failure here is a build
		// defect, not a runtime condition.
		panic(err)
	}
	return r
}

// NewReaderWithCatalog creates a reader over the projection catalog at
// path instead of the embedded one.
func NewReaderWithCatalog(path string) (Reader, error) {
	return NewReaderConfig(Config{CatalogPath: path})
}

// NewReaderConfig creates a reader from cfg. The returned error wraps
// ErrMissingCatalog if an external catalog cannot be loaded.
func NewReaderConfig(cfg Config) (Reader, error) {
	var (
		catalog *prj.Catalog
		err     error
	)
	if cfg.CatalogPath != "" {
		catalog, err = prj.LoadCatalog(cfg.CatalogPath)
	} else {
		catalog, err = prj.DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}
	return &reader{resolver: prj.NewResolver(catalog, cfg.Log)}, nil
}

// CatalogNames returns the projection names in the catalog at path, in
// file order. An empty path means the catalog embedded in the binary.
func CatalogNames(path string) ([]string, error) {
	var (
		catalog *prj.Catalog
		err     error
	)
	if path != "" {
		catalog, err = prj.LoadCatalog(path)
	} else {
		catalog, err = prj.DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}
	entries := catalog.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// reader wraps the internal resolver and record reader and converts types.
type reader struct {
	resolver *prj.Resolver
}

func (r *reader) Read(filename string) (*Projection, []Record, error) {
	return r.ReadWithOptions(filename, DefaultReadOptions())
}

func (r *reader) ReadWithOptions(filename string, opts ReadOptions) (*Projection, []Record, error) {
	// Projection resolution comes first and is independent of record
	// reading; a failed resolution never hides the records.
	proj := convertOutcome(r.resolver.Resolve(sidecarPath(filename)))

	records, err := shaperead.Read(shapePath(filename), shaperead.Options{
		RecordNumbers: opts.RecordNumbers,
		BoundingBox:   convertBoundsIn(opts.BoundingBox),
		Selector:      opts.Selector,
		Attributes:    opts.Attributes,
		UseGeoCoords:  opts.UseGeoCoords,
	})
	if err != nil {
		return proj, nil, err
	}
	return proj, convertRecords(records), nil
}

// sidecarPath locates the projection description next to the shapefile:
// same base name, .prj extension. A filename already ending in .prj is
// used as is.
func sidecarPath(filename string) string {
	ext := filepath.Ext(filename)
	if strings.EqualFold(ext, ".prj") {
		return filename
	}
	return strings.TrimSuffix(filename, ext) + ".prj"
}

// shapePath is the counterpart of sidecarPath: whatever the caller named,
// the records come from the .shp file with the same base name.
func shapePath(filename string) string {
	ext := filepath.Ext(filename)
	if strings.EqualFold(ext, ".shp") {
		return filename
	}
	return strings.TrimSuffix(filename, ext) + ".shp"
}

func convertOutcome(o prj.Outcome) *Projection {
	d := o.Descriptor
	return &Projection{
		reason:        Reason(o.Reason),
		matchedName:   o.MatchedName,
		kind:          Kind(d.Kind),
		originLat:     d.OriginLat,
		originLon:     d.OriginLon,
		originHeight:  d.OriginHeight,
		falseEasting:  d.FalseEasting,
		falseNorthing: d.FalseNorthing,
		scaleFactor:   d.ScaleFactor,
		semimajorAxis: d.SemimajorAxis,
		flattening:    d.Flattening,
		zone:          d.Zone,
		latLimits:     d.LatLimits,
		lonLimits:     d.LonLimits,
		explicit: Explicit{
			Kind:          d.Explicit.Kind,
			Origin:        d.Explicit.Origin,
			Scale:         d.Explicit.Scale,
			FalseEasting:  d.Explicit.FalseEasting,
			FalseNorthing: d.Explicit.FalseNorthing,
			Ellipsoid:     d.Explicit.Ellipsoid,
			Zone:          d.Explicit.Zone,
		},
	}
}

func convertBoundsIn(b *Bounds) *shaperead.Bounds {
	if b == nil {
		return nil
	}
	return &shaperead.Bounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

func convertRecords(in []shaperead.Record) []Record {
	out := make([]Record, len(in))
	for i, rec := range in {
		out[i] = Record{
			Number: rec.Number,
			Geometry: Geometry{
				Type:        GeometryType(rec.Geometry.Type),
				Coordinates: rec.Geometry.Coordinates,
				Parts:       rec.Geometry.Parts,
				Bounds: Bounds{
					MinX: rec.Geometry.Bounds.MinX,
					MinY: rec.Geometry.Bounds.MinY,
					MaxX: rec.Geometry.Bounds.MaxX,
					MaxY: rec.Geometry.Bounds.MaxY,
				},
			},
			Attributes: rec.Attributes,
			Geographic: rec.Geographic,
		}
	}
	return out
}
