package repr_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typerep/options"
	"typerep/repr"
)

// alias resolves to a fixed descriptor.
type alias struct {
	repr.AnnotBase
	to repr.Descriptor
}

func (a alias) ToRepresentable() repr.Descriptor { return a.to }

// spin resolves to itself forever.
type spin struct {
	repr.AnnotBase
	mu    *sync.Mutex
	calls *int
}

func newSpin() spin {
	return spin{mu: &sync.Mutex{}, calls: new(int)}
}

func (s spin) ToRepresentable() repr.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.calls++

	return s
}

// bare claims KindAnnot without resolving.
type bare struct {
	repr.AnnotBase
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("closed variant is returned as is", func(t *testing.T) {
		t.Parallel()

		d, err := repr.Resolve(repr.String)
		require.NoError(t, err)
		assert.Same(t, repr.String, d)
	})

	t.Run("chain", func(t *testing.T) {
		t.Parallel()

		r := repr.Record(repr.F("a", repr.Number))
		d, err := repr.Resolve(alias{to: alias{to: alias{to: r}}})
		require.NoError(t, err)
		assert.Same(t, r, d)
	})

	t.Run("exceeded", func(t *testing.T) {
		t.Parallel()

		s := newSpin()
		_, err := repr.Resolve(s)
		require.ErrorIs(t, err, repr.ErrResolutionExceeded)
		assert.Equal(t, options.DefaultMaxResolveDepth, *s.calls)
	})

	t.Run("custom bound", func(t *testing.T) {
		t.Parallel()

		d := alias{to: alias{to: repr.Boolean}}

		_, err := repr.ResolveWith(d, options.Config{MaxResolveDepth: 1})
		require.ErrorIs(t, err, repr.ErrResolutionExceeded)

		got, err := repr.ResolveWith(d, options.Config{MaxResolveDepth: 2})
		require.NoError(t, err)
		assert.Same(t, repr.Boolean, got)

		_, err = repr.ResolveWith(d, options.Config{})
		require.ErrorIs(t, err, options.ErrInvalidConfig)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		_, err := repr.Resolve(alias{})
		require.ErrorIs(t, err, repr.ErrNilResolution)

		_, err = repr.Resolve(nil)
		require.ErrorIs(t, err, repr.ErrNilResolution)
	})

	t.Run("annot kind without method", func(t *testing.T) {
		t.Parallel()

		_, err := repr.Resolve(bare{})
		require.ErrorIs(t, err, repr.ErrNotAnnot)
	})
}

func TestResolve_Concurrent(t *testing.T) {
	t.Parallel()

	shared := alias{to: repr.Array(alias{to: repr.String})}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			d, err := repr.Resolve(shared)
			assert.NoError(t, err)
			assert.Equal(t, "Array<string>", repr.Format(d))
		}()
	}
	wg.Wait()
}

func TestAnnot_Embedded(t *testing.T) {
	t.Parallel()

	r := repr.Record(
		repr.F("id", alias{to: repr.String}),
		repr.F("tags", repr.Array(alias{to: repr.String})),
	)

	assert.Equal(t, "{ id: string, tags: Array<string> }", r.String())
	assert.True(t, repr.Equal(r, repr.Record(repr.F("id", repr.String), repr.F("tags", repr.Array(repr.String)))))
	assert.False(t, repr.Equal(repr.Array(newSpin()), repr.Array(repr.String)))
}
