package gen

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Writer writes generated units to an output directory in parallel.
// Go sources are run through goimports before they are written.
type Writer struct {
	outDir  string
	workers int

	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks written output.
type WriterMetrics struct {
	FilesGenerated int
	FilesRemoved   int
	TotalBytes     int64
}

// NewWriter creates a writer for outDir.
func NewWriter(outDir string) *Writer {
	return &Writer{
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the write metrics.
func (w *Writer) Metrics() *WriterMetrics {
	return w.metrics
}

// Write writes every unit to the output directory. It stops at the first
// error and returns it.
func (w *Writer) Write(ctx context.Context, units []*Unit) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return NewGenerationError("write", w.outDir, "create output directory", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, u := range units {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(u)
			}
		})
	}

	return eg.Wait()
}

// writeFile writes a single unit.
func (w *Writer) writeFile(u *Unit) error {
	fullPath := filepath.Join(w.outDir, u.Name)
	content := u.Content

	if strings.HasSuffix(u.Name, ".go") {
		formatted, err := imports.Process(fullPath, content, nil)
		if err != nil {
			// Keep the unformatted output around for debugging; the write
			// errors are ignored since we are already failing.
			debugPath := fullPath + ".error"
			_ = os.WriteFile(debugPath, content, 0o644)
			return NewGenerationError("format", u.Name, "unformatted output written to "+debugPath, err)
		}
		content = formatted
	}

	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return NewGenerationError("write", u.Name, "", err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(content))
	w.mu.Unlock()

	return nil
}

// Prune removes the regular files of the output directory whose name ends
// with suffix and that no unit produced, e.g. the accessor of a layout that
// was deleted. It returns the names of the removed files. A missing output
// directory is not an error.
func (w *Writer) Prune(suffix string, units []*Unit) ([]string, error) {
	entries, err := os.ReadDir(w.outDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, NewGenerationError("prune", w.outDir, "read output directory", err)
	}
	keep := make(map[string]struct{}, len(units))
	for _, u := range units {
		keep[u.Name] = struct{}{}
	}
	var removed []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.HasSuffix(name, suffix) {
			continue
		}
		if _, ok := keep[name]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(w.outDir, name)); err != nil {
			return removed, NewGenerationError("prune", name, "", err)
		}
		removed = append(removed, name)
	}
	w.mu.Lock()
	w.metrics.FilesRemoved += len(removed)
	w.mu.Unlock()
	return removed, nil
}
