package prj

import "errors"

// ErrMissingCatalog indicates the projection catalog could not be loaded.
// Unlike every other failure in this package, a missing catalog is fatal:
// no resolution can proceed without it.
var ErrMissingCatalog = errors.New("projection catalog unavailable")
