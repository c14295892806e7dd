package repr

import (
	"iter"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"github.com/speakeasy-api/openapi/sequencedmap"

	"typerep/options"
)

// Field binds a name to a descriptor inside a record.
type Field struct {
	Name string
	Desc Descriptor
}

// F is shorthand for Field{Name: name, Desc: d}.
func F(name string, d Descriptor) Field {
	return Field{Name: name, Desc: d}
}

// RecordRepr is a fixed, named field set. Field order is the insertion
// order; it carries no meaning for consumers beyond iteration.
type RecordRepr struct {
	base
	fields *sequencedmap.Map[string, Descriptor]
}

func (*RecordRepr) Kind() Kind { return KindRecord }
func (r *RecordRepr) String() string { return Format(r) }
func (r *RecordRepr) Len() int { return r.fields.Len() }

// Field returns the descriptor bound to name.
func (r *RecordRepr) Field(name string) (Descriptor, bool) {
	return r.fields.Get(name)
}

// All iterates over the fields in order.
func (r *RecordRepr) All() iter.Seq2[string, Descriptor] {
	return r.fields.All()
}

func (r *RecordRepr) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for name := range r.fields.All() {
		keys = append(keys, name)
	}

	return keys
}

// Fields returns a copy of the field list.
func (r *RecordRepr) Fields() []Field {
	fields := make([]Field, 0, r.fields.Len())
	for name, d := range r.fields.All() {
		fields = append(fields, Field{Name: name, Desc: d})
	}

	return fields
}

// Extend returns a record holding the receiver's fields merged with fields.
// On a name collision the incoming descriptor wins and keeps the receiver's
// position; new names are appended in the given order.
func (r *RecordRepr) Extend(fields ...Field) *RecordRepr {
	out := r.clone()
	out.set("extend", fields)

	return out
}

// ExtendRecord is Extend with the fields of another record.
func (r *RecordRepr) ExtendRecord(other *RecordRepr) *RecordRepr {
	out := r.clone()
	for name, d := range other.fields.All() {
		out.fields.Set(name, d)
	}

	return out
}

// Pick returns a record with only the named fields, in the requested
// order. Names the receiver does not have are skipped, so Pick never
// fails; use PickStrict to reject them.
func (r *RecordRepr) Pick(keys ...string) *RecordRepr {
	out := newRecord()
	for _, name := range keys {
		if d, ok := r.fields.Get(name); ok {
			out.fields.Set(name, d)
		}
	}

	return out
}

// PickStrict is Pick that fails with ErrUnknownField on the first name the
// receiver does not have.
func (r *RecordRepr) PickStrict(keys ...string) (*RecordRepr, error) {
	for _, name := range keys {
		if _, ok := r.fields.Get(name); !ok {
			return nil, errors.Wrapf(ErrUnknownField, "pick %q", name)
		}
	}

	return r.Pick(keys...), nil
}

// PickWith is PickStrict when cfg has options.StrictPick and Pick
// otherwise.
func (r *RecordRepr) PickWith(cfg options.Config, keys ...string) (*RecordRepr, error) {
	if cfg.Has(options.StrictPick) {
		return r.PickStrict(keys...)
	}

	return r.Pick(keys...), nil
}

// Omit returns a record without the named fields, in the receiver's order.
func (r *RecordRepr) Omit(keys ...string) *RecordRepr {
	drop := set.From(keys)

	out := newRecord()
	for name, d := range r.fields.All() {
		if !drop.Contains(name) {
			out.fields.Set(name, d)
		}
	}

	return out
}

func newRecord() *RecordRepr {
	return &RecordRepr{fields: sequencedmap.New[string, Descriptor]()}
}

func (r *RecordRepr) clone() *RecordRepr {
	out := newRecord()
	for name, d := range r.fields.All() {
		out.fields.Set(name, d)
	}

	return out
}

func (r *RecordRepr) set(op string, fields []Field) {
	for _, f := range fields {
		if f.Desc == nil {
			panic(op + ": field " + f.Name + " has a nil descriptor")
		}

		r.fields.Set(f.Name, f.Desc)
	}
}
