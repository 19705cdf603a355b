package compiler

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period a Watcher waits for after the last
// change before it reports.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes under a directory tree. Bursts of events are
// coalesced: OnChange is called once per quiet period with the changed paths.
type Watcher struct {
	// Dir is the root of the watched tree. Directories created under it
	// are watched as they appear.
	Dir string
	// Debounce is the quiet period. Zero means DefaultDebounce.
	Debounce time.Duration
	// Filter selects the paths that trigger OnChange. Nil selects all.
	Filter func(path string) bool
	// OnChange is called with the sorted, distinct changed paths.
	OnChange func(ctx context.Context, paths []string)
	// Logger receives watcher errors. Nil means slog.Default().
	Logger *slog.Logger
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return fmt.Errorf("myragen: watch %s: OnChange is not set", w.Dir)
	}
	log := w.Logger
	if log == nil {
		log = slog.Default()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("myragen: create watcher: %w", err)
	}
	defer fw.Close()
	if err := addTree(fw, w.Dir); err != nil {
		return fmt.Errorf("myragen: watch %s: %w", w.Dir, err)
	}
	log.Debug("watching", "dir", w.Dir, "debounce", debounce)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	var pending []string
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addTree(fw, ev.Name); err != nil {
						log.Warn("watch new directory", "dir", ev.Name, "error", err)
					}
				}
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if w.Filter != nil && !w.Filter(ev.Name) {
				continue
			}
			pending = append(pending, ev.Name)
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		case <-timer.C:
			slices.Sort(pending)
			paths := slices.Compact(pending)
			pending = nil
			w.OnChange(ctx, paths)
		}
	}
}

// addTree adds dir and its subdirectories to fw, skipping dot directories.
func addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(p)
	})
}
