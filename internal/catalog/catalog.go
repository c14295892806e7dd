// Package catalog keeps named descriptors for the reprdump command: shapes
// built by hand with the combinators, shapes derived from the store models,
// and shapes read from YAML files or Go packages.
package catalog

import (
	"github.com/pkg/errors"
	"github.com/speakeasy-api/openapi/sequencedmap"

	"typerep/internal/analyze"
	"typerep/internal/match"
	"typerep/repr"
)

var (
	ErrDuplicateEntry = errors.New("catalog entry already exists")
	ErrNotFound       = errors.New("catalog entry not found")
)

type Entry struct {
	Name   string
	Origin OriginEnum
	Desc   repr.Descriptor
}

// Catalog is an ordered set of entries. It is not safe for concurrent
// writes.
type Catalog struct {
	entries *sequencedmap.Map[string, Entry]
}

func New() *Catalog {
	return &Catalog{entries: sequencedmap.New[string, Entry]()}
}

func (c *Catalog) Len() int { return c.entries.Len() }

// Add registers d under name. Names are unique across origins.
func (c *Catalog) Add(name string, origin OriginEnum, d repr.Descriptor) error {
	if d == nil {
		return errors.Errorf("catalog: %s has a nil descriptor", name)
	}

	if prev, ok := c.entries.Get(name); ok {
		return errors.Wrapf(ErrDuplicateEntry, "%s (%s)", name, prev.Origin)
	}

	c.entries.Set(name, Entry{Name: name, Origin: origin, Desc: d})

	return nil
}

// Lookup returns the entry called name, hinting at close names when there
// is none.
func (c *Catalog) Lookup(name string) (Entry, error) {
	if e, ok := c.entries.Get(name); ok {
		return e, nil
	}

	return Entry{}, errors.Wrapf(ErrNotFound, "%q%s", name, match.Hint(name, c.Names()))
}

// Names lists entry names in insertion order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.entries.Len())
	for name := range c.entries.All() {
		names = append(names, name)
	}

	return names
}

func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, c.entries.Len())
	for _, e := range c.entries.All() {
		entries = append(entries, e)
	}

	return entries
}

// LoadShapes adds every shape of a YAML shape file, in file order.
func (c *Catalog) LoadShapes(data []byte) error {
	sf, err := ParseShapes(data)
	if err != nil {
		return err
	}

	return c.addShapes(sf)
}

func (c *Catalog) LoadShapesFile(path string) error {
	sf, err := LoadShapesFile(path)
	if err != nil {
		return err
	}

	return c.addShapes(sf)
}

func (c *Catalog) addShapes(sf *ShapeFile) error {
	table, err := sf.Build()
	if err != nil {
		return err
	}

	for _, name := range sf.Names() {
		if err := c.Add(name, OriginFile, table[name]); err != nil {
			return err
		}
	}

	return nil
}

// LoadPackages adds the exported named types of the Go packages matching
// patterns, named by their import path and type name.
func (c *Catalog) LoadPackages(patterns ...string) error {
	graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return err
	}

	table := graph.Table()
	for _, id := range graph.IDs() {
		if err := c.Add(id.String(), OriginPackage, table[id.String()]); err != nil {
			return err
		}
	}

	return nil
}
