// Package check reports well-formedness problems in a descriptor tree:
// Annot nodes that do not resolve and, when asked for, unions that are
// empty or repeat an alternative. It does not look at values.
package check

import (
	"reflect"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"typerep/options"
	"typerep/repr"
)

var (
	ErrEmptyUnion           = errors.New("union has no alternatives")
	ErrDuplicateAlternative = errors.New("duplicate union alternative")
)

type Diagnostic struct {
	Path     repr.Path
	Severity Severity
	Err      error
}

func (d Diagnostic) String() string {
	return d.Path.String() + ": " + d.Severity.String() + ": " + d.Err.Error()
}

type Diagnostics []Diagnostic

func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Err returns the first error-level diagnostic as an error, or nil.
func (ds Diagnostics) Err() error {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return errors.Wrapf(d.Err, "%s", d.Path)
		}
	}

	return nil
}

func (ds Diagnostics) String() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}

	return strings.Join(lines, "\n")
}

// Check walks d with cfg. Every Annot node is expanded once, so lazily
// recursive shapes are checked without unfolding them to the depth bound.
// The error is non-nil only for an invalid cfg.
func Check(d repr.Descriptor, cfg options.Config) (Diagnostics, error) {
	c := checker{cfg: cfg, seen: set.New[repr.Descriptor](0)}
	if err := repr.Walk(d, cfg, c.visit); err != nil {
		return nil, err
	}

	return c.found, nil
}

type checker struct {
	cfg   options.Config
	seen  *set.Set[repr.Descriptor]
	found Diagnostics
}

func (c *checker) visit(path repr.Path, d repr.Descriptor, err error) error {
	if err != nil {
		c.report(path, SeverityError, err)
		return nil
	}

	switch d := d.(type) {
	case repr.Annot:
		if !reflect.TypeOf(d).Comparable() {
			return nil
		}

		if !c.seen.Insert(d) {
			return repr.SkipChildren
		}
	case *repr.UnionRepr:
		c.union(path, d)
	}

	return nil
}

func (c *checker) union(path repr.Path, u *repr.UnionRepr) {
	if u.Len() == 0 && c.cfg.Has(options.StrictEmptyUnion) {
		c.report(path, SeverityWarning, ErrEmptyUnion)
	}

	if !c.cfg.Has(options.StrictDuplicateAlternatives) {
		return
	}

	for j := 1; j < u.Len(); j++ {
		for i := range j {
			if repr.Equal(u.At(i), u.At(j)) {
				c.report(path, SeverityWarning, errors.Wrapf(ErrDuplicateAlternative, "|%d repeats |%d", j, i))
				break
			}
		}
	}
}

func (c *checker) report(path repr.Path, severity Severity, err error) {
	c.found = append(c.found, Diagnostic{Path: path.Clone(), Severity: severity, Err: err})
}
