package repr

import (
	"github.com/pkg/errors"

	"typerep/options"
)

var (
	ErrResolutionExceeded = errors.New("descriptor resolution exceeded")
	ErrNilResolution      = errors.New("annot resolved to nil")
	ErrNotAnnot           = errors.New("annot kind without ToRepresentable")
)

// Annot is the extension point of the algebra. Implementations embed
// AnnotBase and provide ToRepresentable, which returns a descriptor of the
// closed set or another Annot that eventually resolves.
//
// ToRepresentable must behave as a pure function: consumers call it
// whenever they meet the node, possibly repeatedly and from several
// goroutines. The returned descriptor belongs to the caller.
type Annot interface {
	Descriptor
	ToRepresentable() Descriptor
}

// AnnotBase gives an extension type the Descriptor marker and KindAnnot.
type AnnotBase struct{}

func (AnnotBase) Kind() Kind   { return KindAnnot }
func (AnnotBase) aDescriptor() {}

// Resolve follows Annot nodes until it reaches a descriptor of the closed
// set, taking at most options.DefaultMaxResolveDepth steps.
func Resolve(d Descriptor) (Descriptor, error) {
	return resolve(d, options.DefaultMaxResolveDepth)
}

// ResolveWith is Resolve bounded by cfg.MaxResolveDepth.
func ResolveWith(d Descriptor, cfg options.Config) (Descriptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return resolve(d, cfg.MaxResolveDepth)
}

func resolve(d Descriptor, limit int) (Descriptor, error) {
	for steps := 0; ; steps++ {
		if d == nil {
			return nil, ErrNilResolution
		}

		if d.Kind() != KindAnnot {
			return d, nil
		}

		if steps == limit {
			return nil, errors.Wrapf(ErrResolutionExceeded, "after %d steps", limit)
		}

		a, ok := d.(Annot)
		if !ok {
			return nil, errors.Wrapf(ErrNotAnnot, "%T", d)
		}

		next := a.ToRepresentable()
		if next == nil {
			return nil, errors.Wrapf(ErrNilResolution, "%T", a)
		}

		d = next
	}
}
