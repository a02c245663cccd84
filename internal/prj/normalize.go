package prj

import "strings"

// NormalizeName rewrites known irregularities in coordinate system names so
// they line up with the catalog's naming. The rules are ordered and at most
// one applies; the first rule whose prefix matches wins. Prefix tests are
// case-insensitive, the replacement itself is exact.
//
// After the rewrite, underscores become single spaces to match the catalog's
// space-separated names. Normalization is idempotent: once rewritten, no
// rule prefix matches again.
func NormalizeName(name string) string {
	switch {
	case hasPrefixFold(name, "WGS_1984"):
		name = strings.Replace(name, "WGS_1984", "WGS_84", 1)
	case hasPrefixFold(name, "NAD_1983_CSRS"):
		name = strings.Replace(name, "NAD_1983_CSRS", "NAD83(CSRS98)", 1)
	case hasPrefixFold(name, "GCS_WGS_1984"):
		name = strings.Replace(name, "GCS_WGS_1984", "WGS_84", 1)
	case hasPrefixFold(name, "NAD_1983_StatePlane"):
		// State Plane names quoting US survey feet keep their own catalog
		// entries; only the metric ones moved under the HARN realization.
		if !containsFold(name, "Feet") {
			name = strings.Replace(name, "NAD_1983_StatePlane", "NAD_1983_HARN_StatePlane", 1)
		}
	}
	return strings.ReplaceAll(name, "_", " ")
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
