package catalog

import (
	"fmt"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"typerep/annot"
	"typerep/internal/match"
	"typerep/options"
	"typerep/repr"
)

var (
	ErrInvalidShape = errors.New("invalid shape")
	ErrUnknownShape = errors.New("unknown shape")
)

// ShapeFile is the YAML form of a set of named shapes:
//
//	version: "1"
//	shapes:
//	  Money:
//	    record:
//	      cents: number
//	      currency: {union: [{literal: USD}, {literal: EUR}]}
//
// A scalar names a primitive, null, undefined or another shape of the file;
// a sequence is a tuple; a single-key mapping applies the named combinator.
type ShapeFile struct {
	Version string    `yaml:"version"`
	Shapes  ShapeDefs `yaml:"shapes"`
}

type ShapeDef struct {
	Name string
	Node *yaml.Node
}

// ShapeDefs keeps the definitions in file order.
type ShapeDefs []ShapeDef

func (s *ShapeDefs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Wrapf(ErrInvalidShape, "line %d: shapes must be a mapping", node.Line)
	}

	defs := make(ShapeDefs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		defs = append(defs, ShapeDef{Name: node.Content[i].Value, Node: node.Content[i+1]})
	}

	*s = defs

	return nil
}

// LoadShapesFile reads and parses a YAML shape file.
func LoadShapesFile(path string) (*ShapeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read shape file %s", path)
	}

	return ParseShapes(data)
}

func ParseShapes(data []byte) (*ShapeFile, error) {
	var sf ShapeFile

	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(err, "failed to parse shape YAML")
	}

	if sf.Version == "" {
		sf.Version = "1"
	}

	if sf.Version != "1" {
		return nil, errors.Wrapf(ErrInvalidShape, "unsupported version %q", sf.Version)
	}

	return &sf, nil
}

// Names lists the defined shapes in file order.
func (f *ShapeFile) Names() []string {
	names := make([]string, len(f.Shapes))
	for i, def := range f.Shapes {
		names[i] = def.Name
	}

	return names
}

// Build turns every definition into a descriptor. Shapes refer to each other
// through refs into the returned table, so definitions may come in any
// order and may be recursive.
func (f *ShapeFile) Build() (annot.Table, error) {
	b := builder{
		table: make(annot.Table, len(f.Shapes)),
		ops:   make(map[*annot.LazyRepr]*recordOp),
	}

	for _, def := range f.Shapes {
		d, err := b.build(def.Node)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %s", def.Name)
		}

		b.table[def.Name] = d
	}

	names := f.Names()
	for _, ref := range b.refs {
		if _, ok := b.table[ref.name]; !ok {
			return nil, errors.Wrapf(ErrUnknownShape, "line %d: %q%s", ref.line, ref.name, match.Hint(ref.name, names))
		}
	}

	for _, op := range b.deferred {
		if _, err := b.run(op); err != nil {
			return nil, errors.Wrapf(err, "line %d", op.line)
		}
	}

	return b.table, nil
}

type pendingRef struct {
	name string
	line int
}

type opState int

const (
	opPending opState = iota
	opRunning
	opDone
)

// recordOp is a record transform whose operand is only known once the
// whole file is built.
type recordOp struct {
	line  int
	from  repr.Descriptor
	fn    func(*repr.RecordRepr) (repr.Descriptor, error)
	state opState
	value repr.Descriptor
	err   error
}

type builder struct {
	table    annot.Table
	refs     []pendingRef
	deferred []*recordOp
	ops      map[*annot.LazyRepr]*recordOp
}

func (b *builder) build(n *yaml.Node) (repr.Descriptor, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return b.build(n.Alias)
	case yaml.ScalarNode:
		return b.scalar(n)
	case yaml.SequenceNode:
		items, err := b.buildAll(n)
		if err != nil {
			return nil, err
		}

		return repr.TupleOf(items), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, invalid(n, "a combinator mapping needs exactly one key")
		}

		return b.combinator(n.Content[0].Value, n.Content[1])
	default:
		return nil, invalid(n, "unexpected node")
	}
}

func (b *builder) buildAll(n *yaml.Node) ([]repr.Descriptor, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, invalid(n, "expected a sequence")
	}

	items := make([]repr.Descriptor, 0, len(n.Content))
	for _, item := range n.Content {
		d, err := b.build(item)
		if err != nil {
			return nil, err
		}

		items = append(items, d)
	}

	return items, nil
}

func (b *builder) scalar(n *yaml.Node) (repr.Descriptor, error) {
	if n.Tag == "!!null" {
		return repr.Null, nil
	}

	if n.Value == "undefined" {
		return repr.Undefined, nil
	}

	if p, err := repr.ParsePrimitive(n.Value); err == nil {
		return p, nil
	}

	return b.ref(n)
}

func (b *builder) ref(n *yaml.Node) (repr.Descriptor, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return nil, invalid(n, "expected a shape name")
	}

	b.refs = append(b.refs, pendingRef{name: n.Value, line: n.Line})

	return annot.Ref(n.Value, b.table), nil
}

func (b *builder) combinator(key string, n *yaml.Node) (repr.Descriptor, error) {
	switch key {
	case "literal":
		if n.Kind != yaml.ScalarNode {
			return nil, invalid(n, "literal must be a scalar")
		}

		var v any
		if err := n.Decode(&v); err != nil {
			return nil, invalid(n, err.Error())
		}

		return repr.Literal(v), nil
	case "ref":
		return b.ref(n)
	case "array", "dict", "nullable", "optional":
		inner, err := b.build(n)
		if err != nil {
			return nil, err
		}

		return wrap(key, inner), nil
	case "tuple", "union", "class":
		items, err := b.buildAll(n)
		if err != nil {
			return nil, err
		}

		switch key {
		case "tuple":
			return repr.TupleOf(items), nil
		case "union":
			return repr.UnionOf(items), nil
		default:
			return repr.Class(items...), nil
		}
	case "record":
		return b.record(n)
	case "partial":
		from, err := b.build(n)
		if err != nil {
			return nil, err
		}

		return b.transform(n, from, func(r *repr.RecordRepr) (repr.Descriptor, error) {
			return repr.Partial(r), nil
		})
	case "pick", "omit":
		return b.projection(key, n)
	case "extend":
		return b.extend(n)
	case "describe":
		return b.describe(n)
	default:
		return nil, invalid(n, "unknown combinator "+key+match.Hint(key, combinators))
	}
}

var combinators = []string{
	"literal", "ref", "array", "dict", "nullable", "optional", "tuple", "union",
	"class", "record", "partial", "pick", "omit", "extend", "describe",
}

func wrap(key string, inner repr.Descriptor) repr.Descriptor {
	switch key {
	case "array":
		return repr.Array(inner)
	case "dict":
		return repr.Dict(inner)
	case "nullable":
		return annot.Nullable(inner)
	default:
		return annot.Optional(inner)
	}
}

func (b *builder) record(n *yaml.Node) (*repr.RecordRepr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, invalid(n, "record must be a mapping")
	}

	fields := make([]repr.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		d, err := b.build(n.Content[i+1])
		if err != nil {
			return nil, err
		}

		fields = append(fields, repr.F(n.Content[i].Value, d))
	}

	return repr.Record(fields...), nil
}

// transform applies fn to from right away when from is a record, and
// lazily otherwise; Build runs the lazy ones once every shape exists, so
// the returned node only ever hands out a computed result.
func (b *builder) transform(n *yaml.Node, from repr.Descriptor, fn func(*repr.RecordRepr) (repr.Descriptor, error)) (repr.Descriptor, error) {
	if r, ok := from.(*repr.RecordRepr); ok {
		return fn(r)
	}

	op := &recordOp{line: n.Line, from: from, fn: fn}
	b.deferred = append(b.deferred, op)

	lazy := annot.Lazy(func() repr.Descriptor { return op.value })
	b.ops[lazy] = op

	return lazy, nil
}

func (b *builder) run(op *recordOp) (repr.Descriptor, error) {
	switch op.state {
	case opDone:
		return op.value, op.err
	case opRunning:
		return nil, errors.Wrap(ErrInvalidShape, "transform refers back to itself")
	}

	op.state = opRunning
	op.value, op.err = b.apply(op)
	op.state = opDone

	return op.value, op.err
}

func (b *builder) apply(op *recordOp) (repr.Descriptor, error) {
	resolved, err := b.resolve(op.from)
	if err != nil {
		return nil, err
	}

	r, ok := resolved.(*repr.RecordRepr)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "expected a record, got %s", resolved.Kind())
	}

	return op.fn(r)
}

// resolve follows an annot chain like repr.Resolve, except that a pending
// transform on the way is run here instead of through its lazy node.
func (b *builder) resolve(d repr.Descriptor) (repr.Descriptor, error) {
	for steps := 0; ; steps++ {
		if l, ok := d.(*annot.LazyRepr); ok && b.ops[l] != nil {
			v, err := b.run(b.ops[l])
			if err != nil {
				return nil, err
			}

			d = v
		}

		if d.Kind() != repr.KindAnnot {
			return d, nil
		}

		if steps == options.DefaultMaxResolveDepth {
			return nil, errors.Wrapf(repr.ErrResolutionExceeded, "after %d steps", steps)
		}

		a, ok := d.(repr.Annot)
		if !ok {
			return nil, errors.Wrapf(repr.ErrNotAnnot, "%T", d)
		}

		if d = a.ToRepresentable(); d == nil {
			return nil, errors.Wrapf(repr.ErrNilResolution, "%T", a)
		}
	}
}

// fields reads the keys of a {from, ...} mapping.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, invalid(n, "expected a mapping")
	}

	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return nil, invalid(key, "unexpected key "+key.Value+match.Hint(key.Value, allowed))
		}

		out[key.Value] = n.Content[i+1]
	}

	if out["from"] == nil && slices.Contains(allowed, "from") {
		return nil, invalid(n, "missing from")
	}

	return out, nil
}

func (b *builder) projection(key string, n *yaml.Node) (repr.Descriptor, error) {
	allowed := []string{"from", "keys"}
	if key == "pick" {
		allowed = append(allowed, "strict")
	}

	args, err := fields(n, allowed...)
	if err != nil {
		return nil, err
	}

	var keys []string
	if kn := args["keys"]; kn != nil {
		if err := kn.Decode(&keys); err != nil {
			return nil, invalid(kn, "keys must be a list of names")
		}
	}

	cfg := options.Default()
	cfg.Strict = options.StrictPick
	if sn := args["strict"]; sn != nil {
		var strict bool
		if err := sn.Decode(&strict); err != nil {
			return nil, invalid(sn, "strict must be a boolean")
		}

		if !strict {
			cfg.Strict = options.StrictNone
		}
	}

	from, err := b.build(args["from"])
	if err != nil {
		return nil, err
	}

	return b.transform(n, from, func(r *repr.RecordRepr) (repr.Descriptor, error) {
		if key == "omit" {
			return r.Omit(keys...), nil
		}

		picked, err := r.PickWith(cfg, keys...)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, match.Hint(missingKey(r, keys), r.Keys()))
		}

		return picked, nil
	})
}

func missingKey(r *repr.RecordRepr, keys []string) string {
	for _, k := range keys {
		if _, ok := r.Field(k); !ok {
			return k
		}
	}

	return ""
}

func (b *builder) extend(n *yaml.Node) (repr.Descriptor, error) {
	args, err := fields(n, "from", "fields")
	if err != nil {
		return nil, err
	}

	extra := repr.Record()
	if fn := args["fields"]; fn != nil {
		if extra, err = b.record(fn); err != nil {
			return nil, err
		}
	}

	from, err := b.build(args["from"])
	if err != nil {
		return nil, err
	}

	return b.transform(n, from, func(r *repr.RecordRepr) (repr.Descriptor, error) {
		return r.ExtendRecord(extra), nil
	})
}

func (b *builder) describe(n *yaml.Node) (repr.Descriptor, error) {
	args, err := fields(n, "title", "description", "examples", "shape")
	if err != nil {
		return nil, err
	}

	if args["shape"] == nil {
		return nil, invalid(n, "missing shape")
	}

	var meta struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Examples    []any  `yaml:"examples"`
	}
	if err := n.Decode(&meta); err != nil {
		return nil, invalid(n, err.Error())
	}

	inner, err := b.build(args["shape"])
	if err != nil {
		return nil, err
	}

	return annot.Describe(inner, meta.Title, meta.Description, meta.Examples...), nil
}

func invalid(n *yaml.Node, msg string) error {
	return errors.Wrapf(ErrInvalidShape, "line %d: %s", n.Line, msg)
}
