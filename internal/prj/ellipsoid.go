package prj

import (
	"strconv"
	"strings"
)

// ellipsoid holds a reference ellipsoid's semimajor axis in kilometers and
// its flattening.
type ellipsoid struct {
	AKm float64
	F   float64
}

// defaultEllipsoid is the reference sphere used when no +ellps parameter is
// present or when an ellipsoid name is unknown. Zero flattening means a
// sphere.
var defaultEllipsoid = ellipsoid{AKm: 6371.0, F: 0}

// ellipsoids maps proj4 +ellps codes (lower-cased) to their definitions.
// Axis and inverse-flattening values follow the PROJ ellipsoid table; a few
// spelled-out aliases are included because catalog sources are not
// consistent about the short codes.
var ellipsoids = map[string]ellipsoid{
	"wgs84":      {6378.137, 1 / 298.257223563},
	"grs80":      {6378.137, 1 / 298.257222101},
	"wgs72":      {6378.135, 1 / 298.26},
	"wgs66":      {6378.145, 1 / 298.25},
	"grs67":      {6378.160, 1 / 298.247167427},
	"clrk66":     {6378.2064, 1 / 294.9786982},
	"clarke1866": {6378.2064, 1 / 294.9786982},
	"clrk80":     {6378.2491, 1 / 293.4663},
	"intl":       {6378.388, 1 / 297},
	"krass":      {6378.245, 1 / 298.3},
	"bessel":     {6377.397155, 1 / 299.1528128},
	"aust_sa":    {6378.160, 1 / 298.25},
	"airy":       {6377.563396, 1 / 299.3249646},
	"sphere":     {6370.997, 0},
}

// lookupEllipsoid returns the ellipsoid for a proj4 +ellps name. Lookup is
// case-insensitive.
func lookupEllipsoid(name string) (ellipsoid, bool) {
	e, ok := ellipsoids[strings.ToLower(name)]
	return e, ok
}

// lookupUTMZone returns the latitude and longitude limits for a UTM zone
// code such as "14N". Zones are 6 degrees of longitude wide, numbered 1-60
// eastward from 180°W; the northern hemisphere spans 0-84°N and the
// southern 80°S-0.
func lookupUTMZone(code string) (latLim, lonLim [2]float64, ok bool) {
	if len(code) < 2 {
		return latLim, lonLim, false
	}
	n, err := strconv.Atoi(code[:len(code)-1])
	if err != nil || n < 1 || n > 60 {
		return latLim, lonLim, false
	}
	west := -180 + 6*float64(n-1)
	lonLim = [2]float64{west, west + 6}
	switch code[len(code)-1] {
	case 'N', 'n':
		latLim = [2]float64{0, 84}
	case 'S', 's':
		latLim = [2]float64{-80, 0}
	default:
		return latLim, lonLim, false
	}
	return latLim, lonLim, true
}
