package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/presettools/presetdiff/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "preset.txt", fs.TextPath("preset.html"))
	assert.Equal(t, "noext.txt", fs.TextPath("noext"))
	assert.Equal(t, filepath.Join("some", "dir", "a.txt"), fs.TextPath(filepath.Join("some", "dir", "a.html")))
}

func TestStem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "preset", fs.Stem("preset.html"))
	assert.Equal(t, "preset", fs.Stem(filepath.Join("some", "dir", "preset.html")))
	assert.Equal(t, "noext", fs.Stem("noext"))
}

func TestWriter_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("creates the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		w := fs.NewWriter()

		require.NoError(t, w.WriteText(path, "hello\n"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(got))
	})

	t.Run("overwrites changed content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		w := fs.NewWriter()

		require.NoError(t, w.WriteText(path, "first\n"))
		require.NoError(t, w.WriteText(path, "second\n"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second\n", string(got))
	})

	t.Run("skips the write when content is unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		w := fs.NewWriter()
		require.NoError(t, w.WriteText(path, "same\n"))

		past := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(path, past, past))

		require.NoError(t, w.WriteText(path, "same\n"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.WithinDuration(t, past, info.ModTime(), time.Minute)
	})
}
