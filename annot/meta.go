package annot

import (
	"typerep/repr"
)

// MetaRepr attaches documentation to a shape without changing it.
type MetaRepr struct {
	repr.AnnotBase
	Title       string
	Description string
	Examples    []any
	Inner       repr.Descriptor
}

func Describe(inner repr.Descriptor, title, description string, examples ...any) *MetaRepr {
	if inner == nil {
		panic("describe: nil descriptor")
	}

	return &MetaRepr{
		Title:       title,
		Description: description,
		Examples:    append([]any(nil), examples...),
		Inner:       inner,
	}
}

func (m *MetaRepr) ToRepresentable() repr.Descriptor { return m.Inner }

// MetaOf returns the outermost metadata found on the resolution chain of d.
func MetaOf(d repr.Descriptor) (*MetaRepr, bool) {
	for i := 0; d != nil && d.Kind() == repr.KindAnnot && i < maxChain; i++ {
		if m, ok := d.(*MetaRepr); ok {
			return m, true
		}

		a, ok := d.(repr.Annot)
		if !ok {
			return nil, false
		}

		d = a.ToRepresentable()
	}

	return nil, false
}
