package annot_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typerep/annot"
	"typerep/options"
	"typerep/repr"
)

func ExampleRecursive() {
	list := annot.Recursive(func(self repr.Descriptor) repr.Descriptor {
		return repr.Record(
			repr.F("head", repr.Number),
			repr.F("tail", annot.Nullable(self)),
		)
	})

	d, err := repr.Resolve(list)
	fmt.Println(d.Kind(), err)

	tail, _ := d.(*repr.RecordRepr).Field("tail")
	fmt.Println(repr.Format(tail)[:40])
	// Output:
	// record <nil>
	// { head: number, tail: { head: number, ta
}

func TestLazy_CallsThunkOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	l := annot.Lazy(func() repr.Descriptor {
		calls++
		return repr.Array(repr.String)
	})
	assert.Zero(t, calls)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := repr.Resolve(l)
			assert.NoError(t, err)
			assert.Equal(t, repr.KindArray, d.Kind())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	assert.Same(t, l.ToRepresentable(), l.ToRepresentable())
	assert.Panics(t, func() { annot.Lazy(nil) })
}

func TestLazy_PanicIsSticky(t *testing.T) {
	t.Parallel()

	calls := 0
	l := annot.Lazy(func() repr.Descriptor {
		calls++
		panic("no shape")
	})

	assert.PanicsWithValue(t, "no shape", func() { l.ToRepresentable() })
	assert.PanicsWithValue(t, "no shape", func() { l.ToRepresentable() })
	assert.Equal(t, 1, calls)
}

func TestRecursive_WalkStopsAtBackReference(t *testing.T) {
	t.Parallel()

	list := annot.Recursive(func(self repr.Descriptor) repr.Descriptor {
		return repr.Record(repr.F("head", repr.Number), repr.F("tail", annot.Optional(self)))
	})

	var visited []string
	err := repr.Walk(list, options.Config{MaxResolveDepth: 5}, func(path repr.Path, d repr.Descriptor, err error) error {
		visited = append(visited, path.String()+" "+d.Kind().String())
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"$ annot",
		"$ record",
		"$.head primitive",
		"$.tail annot",
		"$.tail union",
		"$.tail|0 annot",
		"$.tail|1 literal",
	}, visited)
}

func TestRecursive_WalkTwoBranches(t *testing.T) {
	t.Parallel()

	tree := annot.Recursive(func(self repr.Descriptor) repr.Descriptor {
		return repr.Record(repr.F("v", repr.Number), repr.F("l", self), repr.F("r", self))
	})

	calls := 0
	err := repr.Walk(tree, options.Default(), func(_ repr.Path, _ repr.Descriptor, err error) error {
		calls++
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 5, calls)

	require.NoError(t, annot.Check(tree))
}

func TestRecursive_EqualSeparateBuilds(t *testing.T) {
	t.Parallel()

	list := func(elem repr.Descriptor) repr.Descriptor {
		return annot.Recursive(func(self repr.Descriptor) repr.Descriptor {
			return repr.Record(repr.F("head", elem), repr.F("tail", annot.Nullable(self)))
		})
	}

	a, b := list(repr.Number), list(repr.Number)
	assert.True(t, repr.Equal(a, a))
	assert.True(t, repr.Equal(a, b))
	assert.True(t, repr.Equal(b, a))
	assert.False(t, repr.Equal(a, list(repr.String)))

	unrolled := repr.Record(repr.F("head", repr.Number), repr.F("tail", repr.Null))
	assert.False(t, repr.Equal(a, unrolled))
}

func TestMeta(t *testing.T) {
	t.Parallel()

	id := annot.Describe(repr.String, "ID", "opaque identifier", "u_1", "u_2")
	assert.Equal(t, "string", repr.Format(id))
	assert.True(t, repr.Equal(id, repr.String))

	m, ok := annot.MetaOf(annot.Lazy(func() repr.Descriptor { return id }))
	require.True(t, ok)
	assert.Equal(t, "ID", m.Title)
	assert.Equal(t, []any{"u_1", "u_2"}, m.Examples)

	_, ok = annot.MetaOf(repr.String)
	assert.False(t, ok)
	_, ok = annot.MetaOf(annot.Nullable(repr.String))
	assert.False(t, ok)

	assert.Panics(t, func() { annot.Describe(nil, "", "") })
}

func TestNullableOptional(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string | null", repr.Format(annot.Nullable(repr.String)))
	assert.Equal(t, "number | undefined", repr.Format(annot.Optional(repr.Number)))
	assert.True(t, repr.Equal(annot.Nullable(repr.String), repr.Union(repr.String, repr.Null)))

	assert.Panics(t, func() { annot.Nullable(nil) })
	assert.Panics(t, func() { annot.Optional(nil) })
}

func TestRef(t *testing.T) {
	t.Parallel()

	table := annot.Table{}
	table["Node"] = repr.Record(
		repr.F("value", repr.Number),
		repr.F("children", repr.Array(annot.Ref("Node", table))),
		repr.F("parent", annot.Nullable(annot.Ref("Node", table))),
	)
	table["Forest"] = repr.Array(annot.Ref("Node", table))

	forest := annot.Ref("Forest", table)
	assert.Equal(t, "Forest", repr.Format(forest))
	assert.Equal(t, "Array<Node>", repr.Format(table["Forest"]))

	require.NoError(t, annot.Check(forest))

	table["Broken"] = repr.Tuple(annot.Ref("Node", table), annot.Ref("Missing", table))
	err := annot.Check(annot.Ref("Broken", table))
	require.ErrorIs(t, err, annot.ErrUnknownRef)
	assert.Contains(t, err.Error(), "Missing at $[1]")

	_, err = repr.Resolve(annot.Ref("Missing", table))
	require.ErrorIs(t, err, repr.ErrNilResolution)
}
