package prj

import (
	"bufio"
	"bytes"
	_ "embed" // catalog data
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Entry is one named projection definition from the catalog.
type Entry struct {
	Name string

	// Params holds the raw +key=value tokens in catalog order. An empty
	// slice means the name is known but carries no usable definition.
	Params []string
}

// Catalog is an ordered, read-only collection of projection definitions.
// Once loaded it is never mutated and is safe for concurrent readers.
type Catalog struct {
	entries []Entry
}

//go:embed data/projdefs.txt
var projdefs []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the catalog embedded in the binary, parsed once per
// process.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = ParseCatalog(bytes.NewReader(projdefs))
	})
	return defaultCatalog, defaultErr
}

// LoadCatalog reads a catalog from a file. A catalog that cannot be opened
// is fatal to resolution; the returned error wraps ErrMissingCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingCatalog, err)
	}
	defer f.Close()
	c, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingCatalog, err)
	}
	return c, nil
}

// ParseCatalog parses the flat-file catalog format. A line beginning with
// "# " introduces an entry name (with any "/ " occurrences removed); an
// immediately following line beginning with "<" carries the entry's
// parameters, with the <...> bracketed segments removed and the remainder
// split on whitespace. A name line with no parameter line yields an entry
// with an empty parameter list. All other lines are ignored.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	var pending *Entry
	flush := func() {
		if pending != nil {
			c.entries = append(c.entries, *pending)
			pending = nil
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "# "):
			flush()
			name := strings.TrimSpace(strings.ReplaceAll(line[2:], "/ ", ""))
			if name == "" {
				continue
			}
			pending = &Entry{Name: name}
		case strings.HasPrefix(line, "<") && pending != nil:
			pending.Params = strings.Fields(stripBrackets(line))
			flush()
		default:
			flush()
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return c, nil
}

// stripBrackets removes every <...> segment from a parameter line.
func stripBrackets(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Match returns the first entry whose name is a case-insensitive prefix of
// target, compared at the entry's own name length. Entries are scanned in
// file order and the first match wins, so the shipped catalog lists more
// specific names ahead of the generic ones they prefix.
func (c *Catalog) Match(target string) (Entry, bool) {
	for _, e := range c.entries {
		if len(target) >= len(e.Name) && strings.EqualFold(target[:len(e.Name)], e.Name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog entries in file order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
