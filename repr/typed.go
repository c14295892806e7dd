package repr

// Typed carries the Go type A that values described by the wrapped
// descriptor decode to. A exists only at compile time; it lets APIs built
// on top of the algebra require, for instance, a Typed[[]string] rather
// than any descriptor.
type Typed[A any] struct {
	d Descriptor
}

var (
	TAny     = Bind[any](Any)
	TString  = Bind[string](String)
	TNumber  = Bind[float64](Number)
	TBoolean = Bind[bool](Boolean)
)

// Bind asserts that d describes values of type A. The assertion is not
// checked.
func Bind[A any](d Descriptor) Typed[A] {
	return Typed[A]{d: mustDescriptor("bind", d)}
}

func (t Typed[A]) Descriptor() Descriptor { return t.d }
func (t Typed[A]) String() string { return Format(t.d) }

func TypedLiteral[A any](v A) Typed[A] {
	return Typed[A]{d: Literal(v)}
}

func TypedArray[A any](elem Typed[A]) Typed[[]A] {
	return Typed[[]A]{d: Array(elem.d)}
}

func TypedDict[A any](elem Typed[A]) Typed[map[string]A] {
	return Typed[map[string]A]{d: Dict(elem.d)}
}

// TypedNullable describes an A that may also be null.
func TypedNullable[A any](elem Typed[A]) Typed[*A] {
	return Typed[*A]{d: Union(elem.d, Null)}
}
