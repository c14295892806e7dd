package derive

import (
	"reflect"

	"typerep/repr"
)

func (g *Deriver) genSlice(t reflect.Type) (repr.Descriptor, error) {
	elem, err := g.Derive(t.Elem())
	if err != nil {
		return nil, err
	}

	return repr.Array(elem), nil
}

// genArray describes [N]T as a tuple of N positions.
func (g *Deriver) genArray(t reflect.Type) (repr.Descriptor, error) {
	elem, err := g.Derive(t.Elem())
	if err != nil {
		return nil, err
	}

	items := make([]repr.Descriptor, t.Len())
	for i := range items {
		items[i] = elem
	}

	return repr.TupleOf(items), nil
}
