package repr

import (
	"reflect"

	"github.com/hashicorp/go-set/v3"

	"typerep/options"
)

// Equal reports whether a and b describe the same shape structurally.
// Record field order is significant, literal values compare with
// reflect.DeepEqual and Annot nodes compare by what they resolve to.
// Recursive shapes compare coinductively: a pair of pointer Annots met
// again while it is being compared counts as equal, so two separately
// built but identical recursive shapes are equal.
func Equal(a, b Descriptor) bool {
	e := equality{assumed: set.New[annotPair](0)}

	return e.equal(a, b, 0)
}

type annotPair struct {
	a, b Descriptor
}

type equality struct {
	assumed *set.Set[annotPair]
}

func (e *equality) equal(a, b Descriptor, expanded int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if samePointer(a, b) {
		return true
	}

	if a.Kind() == KindAnnot || b.Kind() == KindAnnot {
		if isPointer(a) && isPointer(b) && !e.assumed.Insert(annotPair{a: a, b: b}) {
			return true
		}

		if expanded >= options.DefaultMaxResolveDepth {
			return false
		}

		ra, errA := Resolve(a)
		rb, errB := Resolve(b)
		if errA != nil || errB != nil {
			return false
		}

		return e.equal(ra, rb, expanded+1)
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	default:
		return Absurd[bool](a)
	case *PrimitiveRepr:
		return a.tag == b.(*PrimitiveRepr).tag
	case *LiteralRepr:
		return reflect.DeepEqual(a.value, b.(*LiteralRepr).value)
	case *ArrayRepr:
		return e.equal(a.elem, b.(*ArrayRepr).elem, expanded)
	case *DictRepr:
		return e.equal(a.elem, b.(*DictRepr).elem, expanded)
	case *TupleRepr:
		return e.equalSeq(a.seq, b.(*TupleRepr).seq, expanded)
	case *UnionRepr:
		return e.equalSeq(a.seq, b.(*UnionRepr).seq, expanded)
	case *ClassRepr:
		return e.equalSeq(a.seq, b.(*ClassRepr).seq, expanded)
	case *PartialRepr:
		return e.equalRecord(a.record, b.(*PartialRepr).record, expanded)
	case *RecordRepr:
		return e.equalRecord(a, b.(*RecordRepr), expanded)
	}
}

func (e *equality) equalSeq(a, b seq, expanded int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !e.equal(a[i], b[i], expanded) {
			return false
		}
	}

	return true
}

func (e *equality) equalRecord(a, b *RecordRepr, expanded int) bool {
	if a.Len() != b.Len() {
		return false
	}

	fa, fb := a.Fields(), b.Fields()
	for i := range fa {
		if fa[i].Name != fb[i].Name || !e.equal(fa[i].Desc, fb[i].Desc, expanded) {
			return false
		}
	}

	return true
}

// EqualFields reports whether a and b bind the same names to equal
// descriptors, ignoring field order.
func EqualFields(a, b *RecordRepr) bool {
	if a.Len() != b.Len() {
		return false
	}

	for name, da := range a.All() {
		db, ok := b.Field(name)
		if !ok || !Equal(da, db) {
			return false
		}
	}

	return true
}

func samePointer(a, b Descriptor) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}

	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}
