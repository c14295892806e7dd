package repr

import (
	"reflect"

	"github.com/pkg/errors"

	"typerep/primitive"
)

var (
	ErrUnknownPrimitive = errors.New("unknown primitive tag")
	ErrUnknownField     = errors.New("record has no such field")
	ErrAbsurd           = errors.New("absurd: unreachable code")
)

// Descriptor is implemented by every variant of the algebra. The set of
// implementations is closed: only this package's variant types and types
// embedding AnnotBase satisfy it.
type Descriptor interface {
	Kind() Kind

	// aDescriptor is a marker method to restrict implementations to this package.
	aDescriptor()
}

type base struct{}

func (base) aDescriptor() {}

type PrimitiveRepr struct {
	base
	tag primitive.KindEnum
}

func (*PrimitiveRepr) Kind() Kind { return KindPrimitive }
func (p *PrimitiveRepr) Tag() primitive.KindEnum { return p.tag }
func (p *PrimitiveRepr) String() string { return Format(p) }

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// UndefinedValue is the Go stand-in for an absent value. A nil value
// stands for null.
var UndefinedValue any = undefinedValue{}

type LiteralRepr struct {
	base
	value any
}

func (*LiteralRepr) Kind() Kind { return KindLiteral }
func (l *LiteralRepr) Value() any { return l.value }
func (l *LiteralRepr) IsNull() bool { return l.value == nil }
func (l *LiteralRepr) String() string { return Format(l) }

func (l *LiteralRepr) IsUndefined() bool {
	_, ok := l.value.(undefinedValue)
	return ok
}

// Matches reports whether v equals the literal value.
func (l *LiteralRepr) Matches(v any) bool {
	return reflect.DeepEqual(l.value, v)
}

type ArrayRepr struct {
	base
	elem Descriptor
}

func (*ArrayRepr) Kind() Kind { return KindArray }
func (a *ArrayRepr) Elem() Descriptor { return a.elem }
func (a *ArrayRepr) String() string { return Format(a) }

type DictRepr struct {
	base
	elem Descriptor
}

func (*DictRepr) Kind() Kind { return KindDict }
func (d *DictRepr) Elem() Descriptor { return d.elem }
func (d *DictRepr) String() string { return Format(d) }

// seq is the shared payload of the sequence variants.
type seq []Descriptor

func (s seq) Len() int { return len(s) }
func (s seq) At(i int) Descriptor { return s[i] }
func (s seq) items() []Descriptor { return append([]Descriptor(nil), s...) }

type TupleRepr struct {
	base
	seq
}

func (*TupleRepr) Kind() Kind { return KindTuple }
func (t *TupleRepr) Items() []Descriptor { return t.items() }
func (t *TupleRepr) String() string { return Format(t) }

type UnionRepr struct {
	base
	seq
}

func (*UnionRepr) Kind() Kind { return KindUnion }
func (u *UnionRepr) Alternatives() []Descriptor { return u.items() }
func (u *UnionRepr) String() string { return Format(u) }

// ClassRepr describes an opaque class-like value by the shapes of its
// constructor arguments.
type ClassRepr struct {
	base
	seq
}

func (*ClassRepr) Kind() Kind { return KindClass }
func (c *ClassRepr) Args() []Descriptor { return c.items() }
func (c *ClassRepr) String() string { return Format(c) }

// PartialRepr marks every field of the wrapped record optional. The field
// descriptors themselves are left untouched.
type PartialRepr struct {
	base
	record *RecordRepr
}

func (*PartialRepr) Kind() Kind { return KindPartial }
func (p *PartialRepr) Record() *RecordRepr { return p.record }
func (p *PartialRepr) String() string { return Format(p) }

// Absurd marks a branch that is unreachable when a match over the closed
// variant set is exhaustive. It always panics.
func Absurd[T any](x any) T {
	panic(errors.Wrapf(ErrAbsurd, "unexpected %T", x))
}
