package repr

import (
	"fmt"
	"strconv"
	"strings"
)

// formatAnnotDepth bounds nested Annot expansions while rendering, so a
// lazily recursive shape prints finitely.
const formatAnnotDepth = 4

// Format renders d in a TypeScript-like notation, for example
// `{ name: string, tags: Array<string> }`. Annot nodes that implement
// fmt.Stringer print through it; other Annot nodes print as what they
// resolve to.
func Format(d Descriptor) string {
	var sb strings.Builder
	formatTo(&sb, d, 0)

	return sb.String()
}

func formatTo(sb *strings.Builder, d Descriptor, expanded int) {
	if d == nil {
		sb.WriteString("<nil>")
		return
	}

	if d.Kind() == KindAnnot {
		if s, ok := d.(fmt.Stringer); ok {
			sb.WriteString(s.String())
			return
		}

		if expanded >= formatAnnotDepth {
			sb.WriteString("...")
			return
		}

		resolved, err := Resolve(d)
		if err != nil {
			sb.WriteString("<" + err.Error() + ">")
			return
		}

		formatTo(sb, resolved, expanded+1)
		return
	}

	switch d := d.(type) {
	default:
		Absurd[any](d)
	case *PrimitiveRepr:
		sb.WriteString(d.tag.String())
	case *LiteralRepr:
		sb.WriteString(formatLiteral(d.value))
	case *ArrayRepr:
		sb.WriteString("Array<")
		formatTo(sb, d.elem, expanded)
		sb.WriteString(">")
	case *DictRepr:
		sb.WriteString("Record<string, ")
		formatTo(sb, d.elem, expanded)
		sb.WriteString(">")
	case *TupleRepr:
		sb.WriteString("[")
		formatList(sb, d.seq, ", ", expanded)
		sb.WriteString("]")
	case *ClassRepr:
		sb.WriteString("new (")
		formatList(sb, d.seq, ", ", expanded)
		sb.WriteString(")")
	case *UnionRepr:
		if len(d.seq) == 0 {
			sb.WriteString("never")
			return
		}

		for i, alt := range d.seq {
			if i > 0 {
				sb.WriteString(" | ")
			}

			if u, ok := alt.(*UnionRepr); ok && len(u.seq) > 1 {
				sb.WriteString("(")
				formatTo(sb, alt, expanded)
				sb.WriteString(")")
				continue
			}

			formatTo(sb, alt, expanded)
		}
	case *PartialRepr:
		sb.WriteString("Partial<")
		formatTo(sb, d.record, expanded)
		sb.WriteString(">")
	case *RecordRepr:
		if d.Len() == 0 {
			sb.WriteString("{}")
			return
		}

		sb.WriteString("{ ")
		i := 0
		for name, field := range d.fields.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			i++

			sb.WriteString(formatKey(name))
			sb.WriteString(": ")
			formatTo(sb, field, expanded)
		}
		sb.WriteString(" }")
	}
}

func formatList(sb *strings.Builder, items seq, sep string, expanded int) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}

		formatTo(sb, item, expanded)
	}
}

func formatLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatKey quotes field names that are not plain identifiers.
func formatKey(name string) string {
	if name == "" {
		return `""`
	}

	for i, r := range name {
		if r == '_' || r == '$' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || (i > 0 && '0' <= r && r <= '9') {
			continue
		}

		return strconv.Quote(name)
	}

	return name
}
