package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typerep/options"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := options.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, options.DefaultMaxResolveDepth, cfg.MaxResolveDepth)
	assert.False(t, cfg.Has(options.StrictPick))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("depth out of range", func(t *testing.T) {
		t.Parallel()

		cfg := options.Default()
		cfg.MaxResolveDepth = 0
		require.ErrorIs(t, cfg.Validate(), options.ErrInvalidConfig)

		cfg.MaxResolveDepth = options.MaxResolveDepthLimit + 1
		require.ErrorIs(t, cfg.Validate(), options.ErrInvalidConfig)
	})

	t.Run("depth bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		cfg := options.Default()
		cfg.MaxResolveDepth = 1
		require.NoError(t, cfg.Validate())

		cfg.MaxResolveDepth = options.MaxResolveDepthLimit
		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown flags", func(t *testing.T) {
		t.Parallel()

		cfg := options.Default()
		cfg.Strict = options.StrictAll + 1
		require.ErrorIs(t, cfg.Validate(), options.ErrInvalidConfig)
	})

	t.Run("combined flags", func(t *testing.T) {
		t.Parallel()

		cfg := options.Config{MaxResolveDepth: 4, Strict: options.StrictPick | options.StrictEmptyUnion}
		require.NoError(t, cfg.Validate())
		assert.True(t, cfg.Has(options.StrictPick))
		assert.True(t, cfg.Has(options.StrictPick|options.StrictEmptyUnion))
		assert.False(t, cfg.Has(options.StrictDuplicateAlternatives))
	})
}
