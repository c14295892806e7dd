package derive

import (
	"reflect"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"typerep/annot"
	"typerep/primitive"
	"typerep/repr"
)

// FieldNamer names the record field for a field of struct type owner; ok
// is false for fields left out of the record.
type FieldNamer func(owner reflect.Type, f reflect.StructField) (name string, ok bool)

// JSONName names fields the way encoding/json does: the json tag name when
// present, the Go name otherwise. Unexported fields and fields tagged "-"
// are left out.
func JSONName(_ reflect.Type, f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}

	name, _ := parseTag(f.Tag.Get("json"))
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return name, true
	}
}

// WithCustomName renames the Go field named field of struct type owner.
func WithCustomName(fn FieldNamer, owner reflect.Type, field, name string) FieldNamer {
	if fn == nil {
		panic("customized namer function cannot be nil")
	}

	return func(ownerIn reflect.Type, f reflect.StructField) (string, bool) {
		if ownerIn == owner && f.Name == field {
			return name, true
		}

		return fn(ownerIn, f)
	}
}

// genStruct builds a record in field order. Untagged embedded structs are
// flattened; their fields lose to the outer struct's fields of the same
// name.
func (g *Deriver) genStruct(t reflect.Type) (repr.Descriptor, error) {
	var (
		fields   []repr.Field
		embedded = make(map[int]*repr.RecordRepr)
		direct   = set.New[string](t.NumField())
	)

	for i := range t.NumField() {
		f := t.Field(i)

		if rec, err := g.embeddedRecord(f); err != nil {
			return nil, err
		} else if rec != nil {
			embedded[i] = rec
			continue
		}

		if name, ok := g.fieldNamer(t, f); ok {
			direct.Insert(name)
		}
	}

	for i := range t.NumField() {
		f := t.Field(i)

		if rec, ok := embedded[i]; ok {
			for name, d := range rec.All() {
				if !direct.Contains(name) {
					fields = append(fields, repr.F(name, d))
				}
			}

			continue
		}

		name, ok := g.fieldNamer(t, f)
		if !ok {
			continue
		}

		d, err := g.genField(f)
		if err != nil {
			return nil, err
		}

		fields = append(fields, repr.F(name, d))
	}

	return repr.Record(fields...), nil
}

// embeddedRecord returns the record to flatten for an untagged embedded
// struct, or nil when f is an ordinary field.
func (g *Deriver) embeddedRecord(f reflect.StructField) (*repr.RecordRepr, error) {
	if !f.Anonymous || f.Tag.Get("json") != "" {
		return nil, nil
	}

	_, base := ptrDepthAndBase(f.Type)
	if base.Kind() != reflect.Struct || Dispatch(base) != DispatcherStruct {
		return nil, nil
	}

	d, err := g.Derive(base)
	if err != nil {
		return nil, err
	}

	rec, _ := d.(*repr.RecordRepr)

	return rec, nil
}

func (g *Deriver) genField(f reflect.StructField) (repr.Descriptor, error) {
	d, err := g.Derive(f.Type)
	if err != nil {
		return nil, err
	}

	_, opts := parseTag(f.Tag.Get("json"))

	if opts.Contains("string") && quotable(f.Type) {
		d = repr.String
		if f.Type.Kind() == reflect.Pointer {
			d = annot.Nullable(d)
		}
	}

	if opts.Contains("omitempty") || opts.Contains("omitzero") {
		d = annot.Optional(d)
	}

	return d, nil
}

// quotable reports whether the ",string" option applies to t.
func quotable(t reflect.Type) bool {
	_, base := ptrDepthAndBase(t)

	switch primitive.FromReflectType(base) {
	case primitive.KindBoolean, primitive.KindNumber, primitive.KindString:
		return base.Kind() != reflect.Struct
	}

	return false
}

type tagOptions string

func parseTag(tag string) (string, tagOptions) {
	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		return tag[:idx], tagOptions(tag[idx+1:])
	}

	return tag, ""
}

func (o tagOptions) Contains(name string) bool {
	for opt := range strings.SplitSeq(string(o), ",") {
		if opt == name {
			return true
		}
	}

	return false
}
