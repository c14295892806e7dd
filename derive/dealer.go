package derive

import (
	"reflect"

	"typerep/annot"
	"typerep/repr"
)

type slot struct{ d repr.Descriptor }

// Dealer keeps track of the types a Deriver has finished and of the ones
// it is still working on.
type Dealer struct {
	active map[reflect.Type]*slot
	done   map[reflect.Type]repr.Descriptor
}

func (d *Dealer) Lookup(t reflect.Type) (repr.Descriptor, bool) {
	desc, ok := d.done[t]
	return desc, ok
}

// Enter marks t as in progress. When t already is, ok is false and ref is
// a lazy node that resolves to t's descriptor once Done is called.
func (d *Dealer) Enter(t reflect.Type) (ref repr.Descriptor, ok bool) {
	if d.active == nil {
		d.active = make(map[reflect.Type]*slot)
	}

	if s, exists := d.active[t]; exists {
		return annot.Lazy(func() repr.Descriptor { return s.d }), false
	}

	d.active[t] = &slot{}

	return nil, true
}

func (d *Dealer) Leave(t reflect.Type) {
	delete(d.active, t)
}

func (d *Dealer) Done(t reflect.Type, desc repr.Descriptor) {
	if d.done == nil {
		d.done = make(map[reflect.Type]repr.Descriptor)
	}

	if s, exists := d.active[t]; exists {
		s.d = desc
	}

	d.done[t] = desc
}
