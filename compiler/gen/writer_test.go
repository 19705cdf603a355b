package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("writes units", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "nested", "out")
		w := NewWriter(out).WithWorkers(2)
		err := w.Write(context.Background(), []*Unit{
			{Name: "AUI.g.cs", Content: []byte("class A {}\n")},
			{Name: "BUI.g.cs", Content: []byte("class B {}\n")},
		})
		require.NoError(t, err)

		b, err := os.ReadFile(filepath.Join(out, "AUI.g.cs"))
		require.NoError(t, err)
		assert.Equal(t, "class A {}\n", string(b))
		assert.Equal(t, 2, w.Metrics().FilesGenerated)
		assert.Equal(t, int64(22), w.Metrics().TotalBytes)
	})

	t.Run("formats go units", func(t *testing.T) {
		out := t.TempDir()
		w := NewWriter(out)
		err := w.Write(context.Background(), []*Unit{
			{Name: "AUI.g.go", Content: []byte("package ui\nfunc  A( )  int {return 1}\n")},
		})
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(out, "AUI.g.go"))
		require.NoError(t, err)
		assert.Equal(t, "package ui\n\nfunc A() int { return 1 }\n", string(b))
	})

	t.Run("keeps unformatted go output on error", func(t *testing.T) {
		out := t.TempDir()
		w := NewWriter(out)
		err := w.Write(context.Background(), []*Unit{
			{Name: "BadUI.g.go", Content: []byte("package ui\nfunc {")},
		})
		require.Error(t, err)
		assert.True(t, IsGenerationError(err))
		assert.FileExists(t, filepath.Join(out, "BadUI.g.go.error"))
		assert.NoFileExists(t, filepath.Join(out, "BadUI.g.go"))
		assert.Zero(t, w.Metrics().FilesGenerated)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewWriter(t.TempDir()).Write(ctx, []*Unit{{Name: "AUI.g.cs"}})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("output directory is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		err := NewWriter(file).Write(context.Background(), []*Unit{{Name: "AUI.g.cs"}})
		assert.True(t, IsGenerationError(err))
	})

	t.Run("ignores non-positive worker count", func(t *testing.T) {
		w := NewWriter(t.TempDir())
		n := w.workers
		assert.Equal(t, n, w.WithWorkers(0).workers)
		assert.Equal(t, 3, w.WithWorkers(3).workers)
	})
}

func TestWriterPrune(t *testing.T) {
	t.Run("removes stale accessors", func(t *testing.T) {
		out := t.TempDir()
		for _, name := range []string{"OldUI.g.cs", "KeepUI.g.cs", "notes.txt", "OldUI.g.go"} {
			require.NoError(t, os.WriteFile(filepath.Join(out, name), []byte("x"), 0o644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(out, "DirUI.g.cs"), 0o755))

		w := NewWriter(out)
		removed, err := w.Prune("UI.g.cs", []*Unit{{Name: "KeepUI.g.cs"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"OldUI.g.cs"}, removed)
		assert.Equal(t, 1, w.Metrics().FilesRemoved)
		assert.NoFileExists(t, filepath.Join(out, "OldUI.g.cs"))
		assert.FileExists(t, filepath.Join(out, "KeepUI.g.cs"))
		assert.FileExists(t, filepath.Join(out, "notes.txt"))
		assert.FileExists(t, filepath.Join(out, "OldUI.g.go"))
		assert.DirExists(t, filepath.Join(out, "DirUI.g.cs"))
	})

	t.Run("missing output directory", func(t *testing.T) {
		removed, err := NewWriter(filepath.Join(t.TempDir(), "missing")).Prune("UI.g.cs", nil)
		require.NoError(t, err)
		assert.Empty(t, removed)
	})
}
