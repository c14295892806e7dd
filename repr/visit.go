package repr

// Visitor handles every variant of the closed set. Annot nodes never reach
// a visitor; Accept resolves them first.
type Visitor[T any] interface {
	VisitPrimitive(p *PrimitiveRepr) (T, error)
	VisitLiteral(l *LiteralRepr) (T, error)
	VisitArray(a *ArrayRepr) (T, error)
	VisitTuple(t *TupleRepr) (T, error)
	VisitDict(d *DictRepr) (T, error)
	VisitRecord(r *RecordRepr) (T, error)
	VisitPartial(p *PartialRepr) (T, error)
	VisitUnion(u *UnionRepr) (T, error)
	VisitClass(c *ClassRepr) (T, error)
}

// Accept resolves d and dispatches it to the matching visitor method.
// Recursion into payloads is left to the visitor.
func Accept[T any](d Descriptor, v Visitor[T]) (T, error) {
	var zero T

	resolved, err := Resolve(d)
	if err != nil {
		return zero, err
	}

	switch d := resolved.(type) {
	default:
		return Absurd[T](d), nil
	case *PrimitiveRepr:
		return v.VisitPrimitive(d)
	case *LiteralRepr:
		return v.VisitLiteral(d)
	case *ArrayRepr:
		return v.VisitArray(d)
	case *TupleRepr:
		return v.VisitTuple(d)
	case *DictRepr:
		return v.VisitDict(d)
	case *RecordRepr:
		return v.VisitRecord(d)
	case *PartialRepr:
		return v.VisitPartial(d)
	case *UnionRepr:
		return v.VisitUnion(d)
	case *ClassRepr:
		return v.VisitClass(d)
	}
}
