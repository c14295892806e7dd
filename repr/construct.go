package repr

import (
	"maps"
	"slices"

	"github.com/pkg/errors"

	"typerep/primitive"
)

var (
	Any     = mustPrimitive(primitive.KindAny)
	Unknown = mustPrimitive(primitive.KindUnknown)
	String  = mustPrimitive(primitive.KindString)
	Boolean = mustPrimitive(primitive.KindBoolean)
	Number  = mustPrimitive(primitive.KindNumber)

	Null      = Literal(nil)
	Undefined = Literal(UndefinedValue)
)

// NewPrimitive returns the primitive descriptor for tag. Tags outside the
// primitive enumeration are rejected.
func NewPrimitive(tag primitive.KindEnum) (*PrimitiveRepr, error) {
	if !tag.IsValid() {
		return nil, errors.Wrapf(ErrUnknownPrimitive, "%s", tag)
	}

	return &PrimitiveRepr{tag: tag}, nil
}

// ParsePrimitive is NewPrimitive with the tag given by name.
func ParsePrimitive(name string) (*PrimitiveRepr, error) {
	tag, err := primitive.Parse(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownPrimitive, "%q", name)
	}

	return NewPrimitive(tag)
}

func mustPrimitive(tag primitive.KindEnum) *PrimitiveRepr {
	p, err := NewPrimitive(tag)
	if err != nil {
		panic(err)
	}

	return p
}

// Literal describes exactly the value v. Values compare with
// reflect.DeepEqual, so v should not be mutated after the call.
func Literal(v any) *LiteralRepr {
	return &LiteralRepr{value: v}
}

// Of is an alias of Literal.
func Of(v any) *LiteralRepr {
	return Literal(v)
}

func Array(elem Descriptor) *ArrayRepr {
	return &ArrayRepr{elem: mustDescriptor("array", elem)}
}

// Dict describes a mapping from string keys to elem.
func Dict(elem Descriptor) *DictRepr {
	return &DictRepr{elem: mustDescriptor("dict", elem)}
}

// Tuple describes a fixed-length sequence, one descriptor per position.
// Tuple(a, b) and Tuple(xs...) behave identically; the argument slice is
// copied either way.
func Tuple(items ...Descriptor) *TupleRepr {
	return &TupleRepr{seq: mustDescriptors("tuple", items)}
}

// TupleOf is Tuple taking the positions as one slice.
func TupleOf(items []Descriptor) *TupleRepr {
	return Tuple(items...)
}

// Union describes values matching at least one alternative. Alternatives
// keep their order and are not deduplicated; an empty union is
// uninhabited.
func Union(alternatives ...Descriptor) *UnionRepr {
	return &UnionRepr{seq: mustDescriptors("union", alternatives)}
}

// UnionOf is Union taking the alternatives as one slice.
func UnionOf(alternatives []Descriptor) *UnionRepr {
	return Union(alternatives...)
}

func Class(args ...Descriptor) *ClassRepr {
	return &ClassRepr{seq: mustDescriptors("class", args)}
}

// Record builds a record from fields. A repeated name keeps its first
// position and its last descriptor.
func Record(fields ...Field) *RecordRepr {
	r := newRecord()
	r.set("record", fields)

	return r
}

// RecordFromMap builds a record from m with fields in sorted name order.
func RecordFromMap(m map[string]Descriptor) *RecordRepr {
	r := newRecord()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		r.set("record", []Field{{Name: name, Desc: m[name]}})
	}

	return r
}

func Partial(r *RecordRepr) *PartialRepr {
	if r == nil {
		panic("partial: nil record")
	}

	return &PartialRepr{record: r}
}

func mustDescriptor(op string, d Descriptor) Descriptor {
	if d == nil {
		panic(op + ": nil descriptor")
	}

	return d
}

func mustDescriptors(op string, ds []Descriptor) seq {
	if len(ds) == 0 {
		return nil
	}

	out := make(seq, len(ds))
	for i, d := range ds {
		out[i] = mustDescriptor(op, d)
	}

	return out
}
