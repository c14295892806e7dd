package derive

import (
	"reflect"

	"github.com/pkg/errors"

	"typerep/primitive"
	"typerep/repr"
)

var ErrUnsupportedType = errors.New("type has no descriptor")

// Shaper is implemented by types that describe themselves. Shape is called
// on the zero value.
type Shaper interface {
	Shape() repr.Descriptor
}

var shaperType = reflect.TypeFor[Shaper]()

// Deriver turns Go types into descriptors. It caches finished types, so
// reusing one Deriver shares descriptors between calls. A type that refers
// back to itself is described with a lazy node at the point of recursion.
// A Deriver is not safe for concurrent use.
type Deriver struct {
	fieldNamer FieldNamer
	dealer     Dealer
}

// NewDeriver returns a Deriver naming struct fields with namer, or with
// JSONName when namer is nil.
func NewDeriver(namer FieldNamer) *Deriver {
	if namer == nil {
		namer = JSONName
	}

	return &Deriver{fieldNamer: namer}
}

// FromType derives the descriptor of t with a fresh Deriver.
func FromType(t reflect.Type) (repr.Descriptor, error) {
	return NewDeriver(nil).Derive(t)
}

func For[T any]() (repr.Descriptor, error) {
	return FromType(reflect.TypeFor[T]())
}

func MustFor[T any]() repr.Descriptor {
	d, err := For[T]()
	if err != nil {
		panic(err)
	}

	return d
}

// Dispatch picks how t is described. Pointers are unwrapped before
// Shaper is consulted, so a nil receiver is never called.
func Dispatch(t reflect.Type) DispatcherEnum {
	switch t.Kind() {
	case reflect.Interface:
		return DispatcherInterface
	case reflect.Pointer:
		return DispatcherPointer
	}

	if t.Implements(shaperType) || reflect.PointerTo(t).Implements(shaperType) {
		return DispatcherShaper
	}

	if primitive.FromReflectType(t) != 0 {
		return DispatcherPrimitive
	}

	switch t.Kind() {
	default:
		return DispatcherUnknown
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return DispatcherBytes
		}

		return DispatcherSlice
	case reflect.Array:
		return DispatcherArray
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	}
}

// Derive returns the descriptor of t.
func (g *Deriver) Derive(t reflect.Type) (repr.Descriptor, error) {
	if t == nil {
		return nil, errors.Wrap(ErrUnsupportedType, "nil type")
	}

	if d, ok := g.dealer.Lookup(t); ok {
		return d, nil
	}

	ref, ok := g.dealer.Enter(t)
	if !ok {
		return ref, nil
	}
	defer g.dealer.Leave(t)

	d, err := g.dispatch(t)
	if err != nil {
		return nil, err
	}

	g.dealer.Done(t, d)

	return d, nil
}

func (g *Deriver) dispatch(t reflect.Type) (repr.Descriptor, error) {
	switch Dispatch(t) {
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%s", typeStr(t))
	case DispatcherShaper:
		return genShaper(t)
	case DispatcherInterface:
		return genInterface(t), nil
	case DispatcherPrimitive:
		return genPrimitive(t)
	case DispatcherPointer:
		return g.genPointer(t)
	case DispatcherBytes:
		return repr.String, nil
	case DispatcherSlice:
		return g.genSlice(t)
	case DispatcherArray:
		return g.genArray(t)
	case DispatcherMap:
		return g.genMap(t)
	case DispatcherStruct:
		return g.genStruct(t)
	}
}
