package prj

import (
	"math"
	"testing"
)

func TestLookupEllipsoid(t *testing.T) {
	e, ok := lookupEllipsoid("GRS80")
	if !ok {
		t.Fatal("GRS80 should be known")
	}
	if e.AKm != 6378.137 {
		t.Errorf("GRS80 axis = %v km, want 6378.137", e.AKm)
	}
	if math.Abs(e.F-1/298.257222101) > 1e-15 {
		t.Errorf("GRS80 flattening = %v", e.F)
	}

	// Lookup is case-insensitive and carries spelled-out aliases.
	if _, ok := lookupEllipsoid("wgs84"); !ok {
		t.Error("wgs84 should be known")
	}
	if _, ok := lookupEllipsoid("Clarke1866"); !ok {
		t.Error("Clarke1866 should be known")
	}
	c1, _ := lookupEllipsoid("Clarke1866")
	c2, _ := lookupEllipsoid("clrk66")
	if c1 != c2 {
		t.Error("Clarke1866 and clrk66 should be the same ellipsoid")
	}

	if _, ok := lookupEllipsoid("unobtainium"); ok {
		t.Error("unknown ellipsoid should not resolve")
	}
}

func TestLookupUTMZone(t *testing.T) {
	latLim, lonLim, ok := lookupUTMZone("14N")
	if !ok {
		t.Fatal("14N should be a valid zone")
	}
	if latLim != [2]float64{0, 84} {
		t.Errorf("14N lat limits = %v", latLim)
	}
	if lonLim != [2]float64{-102, -96} {
		t.Errorf("14N lon limits = %v", lonLim)
	}

	latLim, lonLim, ok = lookupUTMZone("23S")
	if !ok {
		t.Fatal("23S should be a valid zone")
	}
	if latLim != [2]float64{-80, 0} {
		t.Errorf("23S lat limits = %v", latLim)
	}
	if lonLim != [2]float64{-48, -42} {
		t.Errorf("23S lon limits = %v", lonLim)
	}

	// Zone 1 starts at the antimeridian.
	_, lonLim, _ = lookupUTMZone("1N")
	if lonLim != [2]float64{-180, -174} {
		t.Errorf("1N lon limits = %v", lonLim)
	}

	for _, bad := range []string{"", "N", "0N", "61N", "14X", "14", "xxN"} {
		if _, _, ok := lookupUTMZone(bad); ok {
			t.Errorf("lookupUTMZone(%q) should fail", bad)
		}
	}
}
