// Package prj resolves a cartographic projection from the Well-Known-Text
// description that accompanies a shapefile as a .prj sidecar.
//
// Resolution is a linear pipeline: classify the WKT tag, extract the first
// quoted coordinate system name, normalize known name irregularities, match
// the name against an ordered catalog of proj4 parameter sets, and translate
// the matched parameters into a Descriptor. Every step that cannot proceed
// degrades to an empty result carrying a Reason tag; only a missing catalog
// is an error.
//
// The package does not parse the full WKT grammar. Only the leading tag and
// the first quoted name are examined; everything else in the description is
// ignored.
package prj

import "strings"

// Tag classifies a WKT coordinate system description.
type Tag int

const (
	// TagUnrecognized means the description starts with neither GEOGCS nor
	// PROJCS (for example a geocentric GEOCCS string).
	TagUnrecognized Tag = iota

	// TagGeographic marks a geographic (latitude/longitude) system.
	TagGeographic

	// TagProjected marks a projected (planar) system.
	TagProjected
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagGeographic:
		return "Geographic"
	case TagProjected:
		return "Projected"
	default:
		return "Unrecognized"
	}
}

// Classify reports whether text describes a geographic or projected
// coordinate system. Only the first six characters are examined, and the
// comparison is case-insensitive.
func Classify(text string) Tag {
	if len(text) < 6 {
		return TagUnrecognized
	}
	switch strings.ToUpper(text[:6]) {
	case "GEOGCS":
		return TagGeographic
	case "PROJCS":
		return TagProjected
	}
	return TagUnrecognized
}

// ExtractName returns the coordinate system name, the text between the first
// two double-quote characters of a WKT description. If fewer than two quotes
// are present the name is empty, which downstream matching reports as "name
// not found".
func ExtractName(text string) string {
	i := strings.IndexByte(text, '"')
	if i < 0 {
		return ""
	}
	rest := text[i+1:]
	j := strings.IndexByte(rest, '"')
	if j < 0 {
		return ""
	}
	return rest[:j]
}
