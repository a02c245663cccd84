package prj

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Reason classifies a resolution outcome.
type Reason int

const (
	// ReasonOK means a descriptor was produced.
	ReasonOK Reason = iota

	// ReasonNoFile means the projection description file does not exist or
	// could not be read.
	ReasonNoFile

	// ReasonUnrecognizedTag means the description starts with neither
	// GEOGCS nor PROJCS.
	ReasonUnrecognizedTag

	// ReasonNameNotFound means no catalog entry matched the normalized
	// coordinate system name.
	ReasonNameNotFound

	// ReasonNoParameters means a catalog entry matched the name but
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

// Outcome is the result of one resolution. Resolution is all-or-nothing:
// a non-OK outcome always carries the all-defaults descriptor and an empty
// matched name.
type Outcome struct {
	Reason      Reason
	MatchedName string
	Descriptor  Descriptor
}

// Resolved reports whether the outcome carries a usable descriptor.
func (o Outcome) Resolved() bool {
	return o.Reason == ReasonOK
}

// Resolver resolves projection descriptions against a catalog. The catalog
// is read-only, so a Resolver is safe for concurrent use.
type Resolver struct {
	catalog *Catalog
	log     logrus.FieldLogger
}

// NewResolver creates a resolver over the given catalog. log receives
// advisory diagnostics and may be nil, in which case they are discarded;
// no resolution logic depends on the diagnostics being observed.
func NewResolver(catalog *Catalog, log logrus.FieldLogger) *Resolver {
	return &Resolver{catalog: catalog, log: ensureLogger(log)}
}

// Resolve reads the projection description at path and resolves it. A
// missing or unreadable file is the NoFile degradation, not an error.
func (r *Resolver) Resolve(path string) Outcome {
	b, err := os.ReadFile(path)
	if err != nil {
		r.log.WithField("path", path).Debug("no projection description file")
		return Outcome{Reason: ReasonNoFile, Descriptor: NewDescriptor()}
	}
	return r.ResolveText(string(b))
}

// ResolveText resolves an in-memory projection description.
func (r *Resolver) ResolveText(text string) Outcome {
	tag := Classify(text)
	if tag == TagUnrecognized {
		r.log.Debug("projection text is neither GEOGCS nor PROJCS")
		return Outcome{Reason: ReasonUnrecognizedTag, Descriptor: NewDescriptor()}
	}

	name := NormalizeName(ExtractName(text))
	entry, ok := r.catalog.Match(name)
	if !ok {
		r.log.WithField("name", name).Debug("projection name not found in catalog")
		return Outcome{Reason: ReasonNameNotFound, Descriptor: NewDescriptor()}
	}
	if len(entry.Params) == 0 {
		r.log.WithField("name", entry.Name).Debug("catalog entry has no parameters")
		return Outcome{Reason: ReasonNoParameters, Descriptor: NewDescriptor()}
	}

	r.log.WithFields(logrus.Fields{"name": name, "matched": entry.Name, "tag": tag.String()}).
		Debug("resolved projection")
	return Outcome{
		Reason:      ReasonOK,
		MatchedName: entry.Name,
		Descriptor:  Translate(entry.Name, entry.Params, r.log),
	}
}

// discardLogger swallows diagnostics when the caller supplies no sink.
var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func ensureLogger(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	return discardLogger
}
