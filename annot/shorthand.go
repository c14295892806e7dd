package annot

import (
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"typerep/options"
	"typerep/repr"
)

const maxChain = options.DefaultMaxResolveDepth

var ErrUnknownRef = errors.New("unknown reference")

// NullableRepr is d or null.
type NullableRepr struct {
	repr.AnnotBase
	Inner repr.Descriptor
}

func Nullable(d repr.Descriptor) *NullableRepr {
	if d == nil {
		panic("nullable: nil descriptor")
	}

	return &NullableRepr{Inner: d}
}

func (n *NullableRepr) ToRepresentable() repr.Descriptor {
	return repr.Union(n.Inner, repr.Null)
}

// OptionalRepr is d or undefined.
type OptionalRepr struct {
	repr.AnnotBase
	Inner repr.Descriptor
}

func Optional(d repr.Descriptor) *OptionalRepr {
	if d == nil {
		panic("optional: nil descriptor")
	}

	return &OptionalRepr{Inner: d}
}

func (o *OptionalRepr) ToRepresentable() repr.Descriptor {
	return repr.Union(o.Inner, repr.Undefined)
}

// Table maps names to shapes for Ref lookups. It must not change once
// refs into it are shared.
type Table map[string]repr.Descriptor

// RefRepr is a named reference into a Table. It prints as its name.
type RefRepr struct {
	repr.AnnotBase
	Name  string
	table Table
}

func Ref(name string, table Table) *RefRepr {
	return &RefRepr{Name: name, table: table}
}

// ToRepresentable returns the referenced shape, or nil when the table has
// no such name; repr.Resolve reports that as repr.ErrNilResolution.
func (r *RefRepr) ToRepresentable() repr.Descriptor {
	return r.table[r.Name]
}

func (r *RefRepr) String() string { return r.Name }

// Check reports whether every Ref reachable from d names an entry of its
// table. Each name is followed once, so recursive tables are fine.
func Check(d repr.Descriptor) error {
	followed := set.New[string](0)

	return repr.Walk(d, options.Default(), func(path repr.Path, d repr.Descriptor, err error) error {
		ref, isRef := d.(*RefRepr)

		switch {
		case err != nil && isRef:
			if _, found := ref.table[ref.Name]; !found {
				return errors.Wrapf(ErrUnknownRef, "%s at %s", ref.Name, path)
			}

			return err
		case err != nil:
			return err
		case isRef && !followed.Insert(ref.Name):
			return repr.SkipChildren
		}

		return nil
	})
}
