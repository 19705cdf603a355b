// Package compiler runs generation over a directory tree and writes the
// generated accessor classes to disk. It is the host used by the myragen
// command.
package compiler

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/syssam/myragen/compiler/gen"
	"github.com/syssam/myragen/compiler/gen/csharp"
	"github.com/syssam/myragen/compiler/gen/golang"
	"github.com/syssam/myragen/compiler/load"
)

// DialectOption configures a dialect created by NewDialect.
type DialectOption struct {
	// Toolkit replaces the default widget toolkit: a C# namespace for the
	// csharp dialect and an import path for the go dialect.
	Toolkit string
}

var dialects = map[string]func(DialectOption) gen.Dialect{
	"csharp": func(o DialectOption) gen.Dialect {
		return csharp.NewDialect(csharp.WithToolkit(o.Toolkit))
	},
	"go": func(o DialectOption) gen.Dialect {
		return golang.NewDialect(golang.WithToolkit(o.Toolkit))
	},
}

// Dialects returns the names of the registered dialects, sorted.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDialect returns the dialect registered under name.
func NewDialect(name string, o DialectOption) (gen.Dialect, error) {
	newDialect, ok := dialects[name]
	if !ok {
		return nil, gen.NewConfigError("Target", name, fmt.Sprintf("unknown target, available: %v", Dialects()))
	}
	return newDialect(o), nil
}

// Load returns every file under dir as a candidate. Candidate paths are
// slash-separated and relative to dir.
func Load(dir string) ([]*load.Candidate, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("myragen: load %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("myragen: load %s: not a directory", dir)
	}
	cs, err := load.Walk(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("myragen: load %s: %w", dir, err)
	}
	return cs, nil
}

// Generate runs one generation pass over the files under dir. The units are
// written by w; a nil writer leaves the output in the result only. The
// output directory then holds exactly the accessors of this pass: accessor
// files the pass did not produce are removed, unless the run reported an
// error diagnostic. The result is returned even when writing fails.
func Generate(ctx context.Context, cfg *gen.Config, dir string, w *gen.Writer) (*gen.Result, error) {
	g, err := gen.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	cs, err := Load(dir)
	if err != nil {
		return nil, err
	}
	res := g.Run(cs)
	if w == nil {
		return res, nil
	}
	if len(res.Units) > 0 {
		if err := w.Write(ctx, res.Units); err != nil {
			return res, err
		}
	}
	if res.HasErrors() {
		return res, nil
	}
	if _, err := w.Prune("UI"+cfg.Dialect.Ext(), res.Units); err != nil {
		return res, err
	}
	return res, nil
}
