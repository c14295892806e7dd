package derive

import (
	"reflect"

	"github.com/pkg/errors"

	"typerep/annot"
	"typerep/primitive"
	"typerep/repr"
)

func genPrimitive(t reflect.Type) (repr.Descriptor, error) {
	p, err := repr.NewPrimitive(primitive.FromReflectType(t))
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: %v", typeStr(t), err)
	}

	return p, nil
}

func genInterface(t reflect.Type) repr.Descriptor {
	if t.NumMethod() == 0 {
		return repr.Any
	}

	return repr.Unknown
}

func genShaper(t reflect.Type) (repr.Descriptor, error) {
	v := reflect.New(t)

	var s Shaper
	if t.Implements(shaperType) {
		s = v.Elem().Interface().(Shaper)
	} else {
		s = v.Interface().(Shaper)
	}

	d := s.Shape()
	if d == nil {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: Shape returned nil", typeStr(t))
	}

	return d, nil
}

// genPointer describes *T as T or null, however deep the pointer chain.
func (g *Deriver) genPointer(t reflect.Type) (repr.Descriptor, error) {
	_, elem := ptrDepthAndBase(t)

	inner, err := g.Derive(elem)
	if err != nil {
		return nil, err
	}

	return annot.Nullable(inner), nil
}
