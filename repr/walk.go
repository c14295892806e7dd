package repr

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"typerep/options"
)

// SkipChildren returned by a WalkFunc stops Walk from descending into the
// current node.
var SkipChildren = errors.New("skip children")

// StepKind tells how a Step leads from a node to one of its children.
type StepKind int

const (
	StepField   StepKind = iota + 1 // record field, by name
	StepIndex                       // tuple position
	StepAlt                         // union alternative
	StepArg                         // class constructor argument
	StepElem                        // array element
	StepValue                       // dict value
	StepPartial                     // record wrapped by a partial
)

type Step struct {
	Kind  StepKind
	Name  string
	Index int
}

func (s Step) String() string {
	switch s.Kind {
	default:
		return "!" + strconv.Itoa(int(s.Kind))
	case StepField:
		return "." + s.Name
	case StepIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	case StepAlt:
		return "|" + strconv.Itoa(s.Index)
	case StepArg:
		return "(" + strconv.Itoa(s.Index) + ")"
	case StepElem:
		return "[*]"
	case StepValue:
		return "{*}"
	case StepPartial:
		return "?"
	}
}

// Path locates a node from the root of a walk.
type Path []Step

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, s := range p {
		sb.WriteString(s.String())
	}

	return sb.String()
}

// Clone returns a copy of p that stays valid after the WalkFunc returns.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// WalkFunc is called for every node. An Annot node is reported first as
// is, then at the same path as what it resolves to; returning SkipChildren
// for the Annot leaves it unresolved. An Annot met again below its own
// expansion is a back reference: it is reported but not resolved. When
// resolution fails fn is called again with the Annot and the error, and
// the walk continues with the next sibling unless fn returns an error.
// path is reused between calls.
type WalkFunc func(path Path, d Descriptor, err error) error

// Walk visits d and its descendants depth-first in pre-order. Annot nodes
// are resolved. A pointer Annot is expanded at most once per path, so a
// recursive shape built from a fixed set of nodes is unfolded once. Annots
// that build fresh nodes on every resolution are cut off after
// cfg.MaxResolveDepth expansions on one path.
func Walk(d Descriptor, cfg options.Config, fn WalkFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	w := walker{cfg: cfg, fn: fn, expanding: set.New[Descriptor](0)}
	err := w.walk(nil, d, 0)
	if errors.Is(err, SkipChildren) {
		return nil
	}

	return err
}

type walker struct {
	cfg       options.Config
	fn        WalkFunc
	expanding *set.Set[Descriptor]
}

func (w *walker) walk(path Path, d Descriptor, expanded int) error {
	if d == nil {
		return w.fail(path, d, errors.Wrapf(ErrNilResolution, "at %s", path))
	}

	if d.Kind() == KindAnnot {
		if err := w.fn(path, d, nil); err != nil {
			if errors.Is(err, SkipChildren) {
				return nil
			}

			return err
		}

		if isPointer(d) {
			if w.expanding.Contains(d) {
				return nil
			}

			w.expanding.Insert(d)
			defer w.expanding.Remove(d)
		}

		if expanded >= w.cfg.MaxResolveDepth {
			return w.fail(path, d, errors.Wrapf(ErrResolutionExceeded, "at %s", path))
		}

		resolved, err := resolve(d, w.cfg.MaxResolveDepth)
		if err != nil {
			return w.fail(path, d, errors.Wrapf(err, "at %s", path))
		}

		d, expanded = resolved, expanded+1
	}

	if err := w.fn(path, d, nil); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}

		return err
	}

	switch d := d.(type) {
	default:
		return Absurd[error](d)
	case *PrimitiveRepr, *LiteralRepr:
		return nil
	case *ArrayRepr:
		return w.walk(append(path, Step{Kind: StepElem}), d.elem, expanded)
	case *DictRepr:
		return w.walk(append(path, Step{Kind: StepValue}), d.elem, expanded)
	case *TupleRepr:
		return w.walkSeq(path, StepIndex, d.seq, expanded)
	case *UnionRepr:
		return w.walkSeq(path, StepAlt, d.seq, expanded)
	case *ClassRepr:
		return w.walkSeq(path, StepArg, d.seq, expanded)
	case *PartialRepr:
		return w.walk(append(path, Step{Kind: StepPartial}), d.record, expanded)
	case *RecordRepr:
		for name, field := range d.fields.All() {
			if err := w.walk(append(path, Step{Kind: StepField, Name: name}), field, expanded); err != nil {
				return err
			}
		}

		return nil
	}
}

// fail reports a node that cannot be resolved; it has no children to skip.
func (w *walker) fail(path Path, d Descriptor, cause error) error {
	if err := w.fn(path, d, cause); err != nil && !errors.Is(err, SkipChildren) {
		return err
	}

	return nil
}

func (w *walker) walkSeq(path Path, kind StepKind, items seq, expanded int) error {
	for i, item := range items {
		if err := w.walk(append(path, Step{Kind: kind, Index: i}), item, expanded); err != nil {
			return err
		}
	}

	return nil
}

func isPointer(d Descriptor) bool {
	return reflect.ValueOf(d).Kind() == reflect.Pointer
}
