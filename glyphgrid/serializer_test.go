package glyphgrid_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/pixtext/glyphgrid"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	conv, err := glyphgrid.NewConverter(
		glyphgrid.WithScalePercent(100),
		glyphgrid.WithAspectRatio(1),
		glyphgrid.WithRichText(false),
		glyphgrid.WithGlyph("x"),
	)
	require.NoError(t, err)

	res := conv.Convert(solidNRGBA(2, 2, color.NRGBA{A: 0xff}))

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")

		err := glyphgrid.WriteFile(path, res)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, res.Text(), string(data))
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("previous content, much longer than the grid"), 0o644))

		err := glyphgrid.WriteFile(path, res)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, res.Text(), string(data))
	})

	t.Run("unwritable destination", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		// A file where a parent directory is needed.
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		err := glyphgrid.WriteFile(filepath.Join(blocker, "out.txt"), res)
		require.ErrorIs(t, err, glyphgrid.ErrWriteOutput)
	})
}
