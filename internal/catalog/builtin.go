package catalog

import (
	_ "embed"
	"reflect"

	"typerep/annot"
	"typerep/derive"
	"typerep/repr"
	"typerep/store"
)

//go:embed shapes.yaml
var builtinShapes []byte

// Builtin returns a catalog holding the hand-built shapes, the shapes
// derived from the store models, and the shapes of the bundled YAML file.
func Builtin() (*Catalog, error) {
	c := New()

	for _, f := range handBuilt() {
		if err := c.Add(f.Name, OriginBuiltin, f.Desc); err != nil {
			return nil, err
		}
	}

	derived, err := derivedShapes()
	if err != nil {
		return nil, err
	}

	for _, f := range derived {
		if err := c.Add(f.Name, OriginDerived, f.Desc); err != nil {
			return nil, err
		}
	}

	if err := c.LoadShapes(builtinShapes); err != nil {
		return nil, err
	}

	return c, nil
}

func handBuilt() []repr.Field {
	person := repr.Record(
		repr.F("name", repr.String),
		repr.F("age", repr.Number),
	)

	abc := repr.Record(
		repr.F("a", repr.Literal(1)),
		repr.F("b", repr.Literal(2)),
		repr.F("c", repr.Literal(3)),
	)

	json := annot.Recursive(func(self repr.Descriptor) repr.Descriptor {
		return repr.Union(repr.Null, repr.Boolean, repr.Number, repr.String, repr.Array(self), repr.Dict(self))
	})

	tree := annot.Recursive(func(self repr.Descriptor) repr.Descriptor {
		return repr.Record(
			repr.F("value", repr.Number),
			repr.F("children", repr.Array(self)),
		)
	})

	return []repr.Field{
		repr.F("person", person),
		repr.F("person.extended", person.Extend(repr.F("age", repr.String), repr.F("active", repr.Boolean))),
		repr.F("person.partial", repr.Partial(person)),
		repr.F("abc.omit_b", abc.Omit("b")),
		repr.F("abc.pick_ca", abc.Pick("c", "a")),
		repr.F("pair", repr.Tuple(repr.String, repr.Number)),
		repr.F("unit", repr.Tuple()),
		repr.F("never", repr.Union()),
		repr.F("matrix", repr.TypedArray(repr.TypedArray(repr.TNumber)).Descriptor()),
		repr.F("json", json),
		repr.F("tree", tree),
		repr.F("age.described", annot.Describe(repr.Number, "Age", "Whole years since birth.", 42)),
	}
}

func derivedShapes() ([]repr.Field, error) {
	g := derive.NewDeriver(nil)

	var out []repr.Field
	for _, m := range []struct {
		name string
		typ  any
	}{
		{"store.money", store.Money{}},
		{"store.product", store.Product{}},
		{"store.category", store.Category{}},
		{"store.customer", store.Customer{}},
		{"store.order", store.Order{}},
		{"store.order_status", store.StatusPending},
	} {
		d, err := g.Derive(reflect.TypeOf(m.typ))
		if err != nil {
			return nil, err
		}

		out = append(out, repr.F(m.name, d))
	}

	return out, nil
}
