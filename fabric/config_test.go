package fabric_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/spacefabric/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		opts, err := fabric.ParseOptions([]byte("rows = 30\ncolumns = 12\nfalloff = 2\n"))
		require.NoError(t, err)

		assert.Equal(t, 30, opts.Rows)
		assert.Equal(t, 12, opts.Columns)
		assert.Equal(t, fabric.InverseSquare, opts.Falloff)
		assert.Equal(t, fabric.DefaultOptions().Spacing, opts.Spacing)
		assert.Equal(t, fabric.DefaultEpsilon, opts.Epsilon)
	})

	t.Run("empty document is the default", func(t *testing.T) {
		opts, err := fabric.ParseOptions(nil)
		require.NoError(t, err)
		assert.Equal(t, fabric.DefaultOptions(), opts)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := fabric.ParseOptions([]byte("rows = 1\n"))
		assert.ErrorIs(t, err, fabric.ErrInvalidDimension)

		_, err = fabric.ParseOptions([]byte("spacing = -1.0\n"))
		assert.ErrorIs(t, err, fabric.ErrInvalidSpacing)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := fabric.ParseOptions([]byte("rows = \"many\"\n"))
		assert.Error(t, err)
	})
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric.toml")
	require.NoError(t, os.WriteFile(path, []byte("spacing = 0.25\nepsilon = 0.01\n"), 0o644))

	opts, err := fabric.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, opts.Spacing)
	assert.Equal(t, 0.01, opts.Epsilon)

	m, err := fabric.New(opts)
	require.NoError(t, err)
	assert.Equal(t, 400, m.Len())

	_, err = fabric.LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
