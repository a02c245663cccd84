package shapeproj

// Kind identifies a map projection family.
//
// Constant values mirror the internal descriptor kinds; do not reorder.
type Kind int

const (
	// KindPlateCarree is the default kind. Geographic (latitude/longitude)
	// systems and unrecognized projection codes both resolve to it.
	KindPlateCarree Kind = iota
	KindTransverseMercator
	KindMercator
	KindLambertConformalConic
	KindLambertAzimuthalEqualArea
	KindAlbersEqualAreaConic
	KindAzimuthalEquidistant
	KindEquidistantConic
	KindStereographic
	KindUTM
	KindCassiniSoldner
	KindMiller
	KindPolyconic
	KindRobinson
	KindSinusoidal
	KindBonne
)

// String returns a human-readable projection name.
func (k Kind) String() string {
	switch k {
	case KindPlateCarree:
		return "Plate Carree"
	case KindTransverseMercator:
		return "Transverse Mercator"
	case KindMercator:
		return "Mercator"
	case KindLambertConformalConic:
		return "Lambert Conformal Conic"
	case KindLambertAzimuthalEqualArea:
		return "Lambert Azimuthal Equal Area"
	case KindAlbersEqualAreaConic:
		return "Albers Equal Area Conic"
	case KindAzimuthalEquidistant:
		return "Azimuthal Equidistant"
	case KindEquidistantConic:
		return "Equidistant Conic"
	case KindStereographic:
		return "Stereographic"
	case KindUTM:
		return "UTM"
	case KindCassiniSoldner:
		return "Cassini-Soldner"
	case KindMiller:
		return "Miller Cylindrical"
	case KindPolyconic:
		return "Polyconic"
	case KindRobinson:
		return "Robinson"
	case KindSinusoidal:
		return "Sinusoidal"
	case KindBonne:
		return "Bonne"
	default:
		return "Unknown"
	}
}

// Reason classifies how a projection resolution ended.
//
// Constant values mirror the internal reasons; do not reorder.
type Reason int

const (
	// ReasonOK means the projection was resolved.
	ReasonOK Reason = iota

	// ReasonNoFile means the .prj sidecar does not exist or could not be
	// read.
	ReasonNoFile

	// ReasonUnrecognizedTag means the sidecar text starts with neither
	// GEOGCS nor PROJCS.
	ReasonUnrecognizedTag

	// ReasonNameNotFound means no catalog entry matched the coordinate
	// system name.
	ReasonNameNotFound

	// ReasonNoParameters means the name matched a catalog entry that
	// carries no parameters.
	ReasonNoParameters
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "OK"
	case ReasonNoFile:
		return "no projection file"
	case ReasonUnrecognizedTag:
		return "unrecognized coordinate system tag"
	case ReasonNameNotFound:
		return "projection name not found in catalog"
	case ReasonNoParameters:
		return "projection has no parameters in catalog"
	default:
		return "unknown"
	}
}

// Explicit flags which Projection fields a matched catalog parameter
// actually set, as opposed to fields at their documented defaults. The
// final values alone cannot make that distinction — an explicit zero false
// easting looks exactly like the default.
type Explicit struct {
	Kind          bool
	Origin        bool
	Scale         bool
	FalseEasting  bool
	FalseNorthing bool
	Ellipsoid     bool
	Zone          bool
}

// Projection is the resolved map projection of a shapefile.
//
// An unresolved projection (Resolved() == false) carries the documented
// defaults in every field: Plate Carree, origin (0, 0, 0), zero false
// offsets, unit scale, the reference sphere, and no zone.
//
// All fields are private to maintain encapsulation.
type Projection struct {
	reason      Reason
	matchedName string

	kind          Kind
	originLat     float64
	originLon     float64
	originHeight  float64
	falseEasting  float64
	falseNorthing float64
	scaleFactor   float64
	semimajorAxis float64
	flattening    float64
	zone          string
	latLimits     [2]float64
	lonLimits     [2]float64
	explicit      Explicit
}

// Resolved reports whether a catalog entry with parameters was matched.
func (p *Projection) Resolved() bool { return p.reason == ReasonOK }

// Reason returns the resolution outcome classification.
func (p *Projection) Reason() Reason { return p.reason }

// MatchedName returns the catalog entry name the projection resolved to.
// Empty unless Resolved().
func (p *Projection) MatchedName() string { return p.matchedName }

// Kind returns the projection family.
func (p *Projection) Kind() Kind { return p.kind }

// Origin returns the projection origin latitude, longitude, and height in
// that order. Height is always zero for catalog-resolved projections.
func (p *Projection) Origin() (lat, lon, height float64) {
	return p.originLat, p.originLon, p.originHeight
}

// FalseEasting returns the false easting in projected units.
func (p *Projection) FalseEasting() float64 { return p.falseEasting }

// FalseNorthing returns the false northing in projected units.
func (p *Projection) FalseNorthing() float64 { return p.falseNorthing }

// ScaleFactor returns the central scale factor. Default 1.
func (p *Projection) ScaleFactor() float64 { return p.scaleFactor }

// SemimajorAxis returns the ellipsoid semimajor axis in meters. When the
// catalog expresses the coordinate system in survey feet, the axis already
// carries the feet-to-meter correction.
func (p *Projection) SemimajorAxis() float64 { return p.semimajorAxis }

// Flattening returns the ellipsoid flattening; zero means a sphere.
func (p *Projection) Flattening() float64 { return p.flattening }

// Zone returns the UTM zone code (for example "14N") and whether one was
// set.
func (p *Projection) Zone() (string, bool) { return p.zone, p.explicit.Zone }

// MapLimits returns the latitude and longitude limits of the projection's
// zone. ok is false unless the projection is zoned.
func (p *Projection) MapLimits() (latLim, lonLim [2]float64, ok bool) {
	return p.latLimits, p.lonLimits, p.explicit.Zone
}

// Explicit reports which fields were set by a matched parameter rather
// than defaulted.
func (p *Projection) Explicit() Explicit { return p.explicit }
