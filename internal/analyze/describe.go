package analyze

import (
	"go/types"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"typerep/annot"
	"typerep/internal/match"
	"typerep/repr"
)

// Table describes every named type of the graph under its TypeID string.
// Named types refer to one another through refs into the table, so
// recursive types stay finite.
func (g *TypeGraph) Table() annot.Table {
	table := make(annot.Table, len(g.Types))
	d := describer{graph: g, table: table, inlining: set.New[*TypeInfo](0)}

	for id, info := range g.Types {
		table[id.String()] = d.body(info)
	}

	return table
}

// Describe returns the descriptor of the named type id.
func (g *TypeGraph) Describe(id TypeID) (repr.Descriptor, error) {
	if g.Types[id] == nil {
		names := make([]string, 0, len(g.Types))
		for _, known := range g.IDs() {
			names = append(names, known.String())
		}

		return nil, errors.Wrapf(ErrTypeNotFound, "%s%s", id, match.Hint(id.String(), names))
	}

	return g.Table()[id.String()], nil
}

type describer struct {
	graph    *TypeGraph
	table    annot.Table
	inlining *set.Set[*TypeInfo]
}

// describe refers to named types of the graph and spells out the rest.
func (d *describer) describe(t *TypeInfo) repr.Descriptor {
	if t == nil {
		return repr.Unknown
	}

	if t.IsNamed() && d.graph.Types[t.ID] == t {
		return annot.Ref(t.ID.String(), d.table)
	}

	// unexported named types are not in the table
	if !d.inlining.Insert(t) {
		return repr.Unknown
	}
	defer d.inlining.Remove(t)

	return d.body(t)
}

func (d *describer) body(t *TypeInfo) repr.Descriptor {
	switch t.Kind {
	case TypeKindBasic:
		return basic(t.GoType)

	case TypeKindStruct:
		return d.record(t)

	case TypeKindPointer:
		return annot.Nullable(d.describe(t.ElemType))

	case TypeKindSlice:
		if isByte(t.ElemType) {
			return repr.String
		}

		return repr.Array(d.describe(t.ElemType))

	case TypeKindArray:
		elem := d.describe(t.ElemType)
		items := make([]repr.Descriptor, t.Len)
		for i := range items {
			items[i] = elem
		}

		return repr.TupleOf(items)

	case TypeKindMap:
		if t.KeyType == nil || !isTextKey(t.KeyType) {
			return repr.Unknown
		}

		return repr.Dict(d.describe(t.ElemType))

	case TypeKindInterface:
		if iface, ok := t.GoType.Underlying().(*types.Interface); ok && iface.Empty() {
			return repr.Any
		}

		return repr.Unknown

	case TypeKindAlias:
		return d.describe(t.Underlying)

	case TypeKindExternal:
		if t.ID == (TypeID{PkgPath: "time", Name: "Time"}) {
			return repr.String
		}

		return repr.Unknown

	default:
		return repr.Unknown
	}
}

// record builds a struct's record. Untagged embedded structs are
// flattened, losing to the outer fields of the same name.
func (d *describer) record(t *TypeInfo) *repr.RecordRepr {
	direct := set.New[string](len(t.Fields))
	for i := range t.Fields {
		if embeddedStruct(&t.Fields[i]) == nil {
			if name, ok := t.Fields[i].JSONName(); ok {
				direct.Insert(name)
			}
		}
	}

	var fields []repr.Field
	for i := range t.Fields {
		f := &t.Fields[i]

		if inner := embeddedStruct(f); inner != nil {
			if !d.inlining.Insert(inner) {
				continue
			}

			for name, desc := range d.record(inner).All() {
				if !direct.Contains(name) {
					fields = append(fields, repr.F(name, desc))
				}
			}

			d.inlining.Remove(inner)
			continue
		}

		name, ok := f.JSONName()
		if !ok {
			continue
		}

		desc := d.describe(f.Type)
		if f.HasOption("string") && quotable(f.Type) {
			desc = repr.String
			if f.Type.Kind == TypeKindPointer {
				desc = annot.Nullable(desc)
			}
		}

		if f.HasOption("omitempty") || f.HasOption("omitzero") {
			desc = annot.Optional(desc)
		}

		fields = append(fields, repr.F(name, desc))
	}

	return repr.Record(fields...)
}

// embeddedStruct returns the struct an untagged embedded field promotes.
func embeddedStruct(f *FieldInfo) *TypeInfo {
	if !f.Embedded || f.Tag.Get("json") != "" {
		return nil
	}

	t := f.Type
	if t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	if t == nil || t.Kind != TypeKindStruct {
		return nil
	}

	return t
}

func basic(t types.Type) repr.Descriptor {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return repr.Unknown
	}

	info := b.Info()
	switch {
	case info&types.IsBoolean != 0:
		return repr.Boolean
	case info&types.IsString != 0:
		return repr.String
	case b.Kind() == types.Uintptr || info&types.IsComplex != 0:
		return repr.Unknown
	case info&(types.IsInteger|types.IsFloat) != 0:
		return repr.Number
	default:
		return repr.Unknown
	}
}

func underlyingBasic(t *TypeInfo) (*types.Basic, bool) {
	for t != nil && t.Kind == TypeKindAlias {
		t = t.Underlying
	}

	if t == nil || t.Kind != TypeKindBasic {
		return nil, false
	}

	b, ok := t.GoType.Underlying().(*types.Basic)

	return b, ok
}

func isByte(t *TypeInfo) bool {
	b, ok := underlyingBasic(t)
	return ok && b.Kind() == types.Uint8
}

func isTextKey(t *TypeInfo) bool {
	b, ok := underlyingBasic(t)
	return ok && b.Info()&(types.IsString|types.IsInteger) != 0
}

// quotable reports whether the ",string" option applies to t.
func quotable(t *TypeInfo) bool {
	if t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	b, ok := underlyingBasic(t)

	return ok && b.Info()&(types.IsBoolean|types.IsString|types.IsNumeric) != 0
}
