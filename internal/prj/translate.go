package prj

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind identifies a map projection family.
type Kind int

const (
	// PlateCarree is the default kind; geographic (longlat) definitions and
	// unrecognized projection codes both resolve to it.
	PlateCarree Kind = iota
	TransverseMercator
	Mercator
	LambertConformalConic
	LambertAzimuthalEqualArea
	AlbersEqualAreaConic
	AzimuthalEquidistant
	EquidistantConic
	Stereographic
	UTM
	CassiniSoldner
	Miller
	Polyconic
	Robinson
	Sinusoidal
	Bonne
)

// projCodes maps proj4 +proj values to projection kinds.
var projCodes = map[string]Kind{
	"tmerc":   TransverseMercator,
	"merc":    Mercator,
	"lcc":     LambertConformalConic,
	"laea":    LambertAzimuthalEqualArea,
	"aea":     AlbersEqualAreaConic,
	"aeqd":    AzimuthalEquidistant,
	"eqdc":    EquidistantConic,
	"stere":   Stereographic,
	"utm":     UTM,
	"cass":    CassiniSoldner,
	"mill":    Miller,
	"poly":    Polyconic,
	"robin":   Robinson,
	"sinu":    Sinusoidal,
	"longlat": PlateCarree,
}

// String returns a human-readable projection name.
func (k Kind) String() string {
	switch k {
	case PlateCarree:
		return "Plate Carree"
	case TransverseMercator:
		return "Transverse Mercator"
	case Mercator:
		return "Mercator"
	case LambertConformalConic:
		return "Lambert Conformal Conic"
	case LambertAzimuthalEqualArea:
		return "Lambert Azimuthal Equal Area"
	case AlbersEqualAreaConic:
		return "Albers Equal Area Conic"
	case AzimuthalEquidistant:
		return "Azimuthal Equidistant"
	case EquidistantConic:
		return "Equidistant Conic"
	case Stereographic:
		return "Stereographic"
	case UTM:
		return "UTM"
	case CassiniSoldner:
		return "Cassini-Soldner"
	case Miller:
		return "Miller Cylindrical"
	case Polyconic:
		return "Polyconic"
	case Robinson:
		return "Robinson"
	case Sinusoidal:
		return "Sinusoidal"
	case Bonne:
		return "Bonne"
	default:
		return "Unknown"
	}
}

// Explicit records which Descriptor fields were set by a matched parameter.
// The final field values alone cannot distinguish "explicitly zero" from
// "defaulted", so translation tracks presence here.
type Explicit struct {
	Kind          bool
	Origin        bool
	Scale         bool
	FalseEasting  bool
	FalseNorthing bool
	Ellipsoid     bool
	Zone          bool
}

// Descriptor is a resolved projection. Every field not set by a matched
// parameter keeps its documented default: kind Plate Carree, origin at
// (0, 0, 0), zero false offsets, unit scale, the reference sphere, and no
// zone or map limits.
type Descriptor struct {
	Kind          Kind
	OriginLat     float64
	OriginLon     float64
	OriginHeight  float64
	FalseEasting  float64
	FalseNorthing float64
	ScaleFactor   float64

	// SemimajorAxis is in meters; Flattening is zero for a sphere.
	SemimajorAxis float64
	Flattening    float64

	// Zone is a UTM zone code such as "14N"; empty unless Explicit.Zone.
	Zone      string
	LatLimits [2]float64
	LonLimits [2]float64

	Explicit Explicit
}

// NewDescriptor returns the all-defaults descriptor.
func NewDescriptor() Descriptor {
	return Descriptor{
		Kind:          PlateCarree,
		ScaleFactor:   1,
		SemimajorAxis: defaultEllipsoid.AKm * 1000,
		Flattening:    defaultEllipsoid.F,
	}
}

// Translate converts a matched catalog entry's parameter tokens into a
// Descriptor. Tokens are processed strictly in catalog order: a +to_meter
// factor scales the semimajor axis already resolved by an earlier +ellps
// token, which is how the catalog expresses survey-feet coordinate systems.
//
// The matched catalog name participates twice: a +zone token takes its
// hemisphere letter from the name's last character, and a small set of
// names force the projection kind after all tokens are processed.
//
// Unknown +proj codes and unparseable values are diagnosed on log but never
// fail the translation. log may be nil.
func Translate(name string, params []string, log logrus.FieldLogger) Descriptor {
	log = ensureLogger(log)
	d := NewDescriptor()

	for _, tok := range params {
		key, val := splitToken(tok)

		// Numeric assignment shared by most keys; leaves the field alone
		// when the value does not parse.
		num := func(dst *float64, flag *bool) {
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				log.WithField("token", tok).Debug("skipping unparseable parameter value")
				return
			}
			*dst = v
			if flag != nil {
				*flag = true
			}
		}

		switch key {
		case "proj":
			k, ok := projCodes[val]
			if !ok {
				log.WithField("code", val).Debug("unknown projection code, keeping Plate Carree")
				continue
			}
			d.Kind = k
			d.Explicit.Kind = true
		case "lat_0":
			num(&d.OriginLat, &d.Explicit.Origin)
		case "lon_0":
			num(&d.OriginLon, &d.Explicit.Origin)
		case "k":
			num(&d.ScaleFactor, &d.Explicit.Scale)
		case "x_0":
			num(&d.FalseEasting, &d.Explicit.FalseEasting)
		case "y_0":
			num(&d.FalseNorthing, &d.Explicit.FalseNorthing)
		case "ellps":
			e, ok := lookupEllipsoid(val)
			if !ok {
				log.WithField("ellipsoid", val).Warn("unknown ellipsoid, substituting reference sphere")
				e = defaultEllipsoid
			}
			d.SemimajorAxis = e.AKm * 1000
			d.Flattening = e.F
			d.Explicit.Ellipsoid = true
		case "to_meter":
			// Axis correction for catalogs expressed in feet. Depends on
			// +ellps having already been processed, hence the strict
			// in-order token walk.
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				log.WithField("token", tok).Debug("skipping unparseable parameter value")
				continue
			}
			d.SemimajorAxis *= v
		case "zone":
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				log.WithField("token", tok).Debug("skipping unparseable zone number")
				continue
			}
			// The hemisphere letter comes from the catalog name, not from
			// the token.
			code := strconv.Itoa(int(v)) + name[len(name)-1:]
			d.Zone = code
			d.Explicit.Zone = true
			latLim, lonLim, ok := lookupUTMZone(code)
			if !ok {
				log.WithField("zone", code).Warn("zone code outside UTM range, no map limits")
				continue
			}
			d.LatLimits = latLim
			d.LonLimits = lonLim
		case "datum", "pm", "towgs84":
			// Recognized but have no descriptor field.
		default:
			// Everything else is ignored silently.
		}
	}

	// Name-specific overrides. The Bonne catalog entry uses a proj4 code
	// the kind table does not carry, and the Plate Carree one guards
	// against the default kind ever changing.
	switch name {
	case "World Bonne":
		d.Kind = Bonne
		d.Explicit.Kind = true
	case "World Plate Carree":
		d.Kind = PlateCarree
		d.Explicit.Kind = true
	}

	return d
}

// splitToken splits a "+key=value" parameter token. Bare "+key" tokens
// yield an empty value.
func splitToken(tok string) (key, value string) {
	tok = strings.TrimPrefix(tok, "+")
	if i := strings.IndexByte(tok, '='); i >= 0 {
		return strings.ToLower(tok[:i]), tok[i+1:]
	}
	return strings.ToLower(tok), ""
}
