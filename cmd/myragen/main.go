// myragen generates typed accessor classes for Myra UI layout documents.
//
//	myragen -namespace MyGame.UI -out Generated .
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/syssam/myragen/compiler"
	"github.com/syssam/myragen/compiler/gen"
	"github.com/syssam/myragen/compiler/load"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and performs one generation pass, or keeps regenerating
// until ctx is done when -watch is set.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, exit, err := parse(args, stdout)
	if err != nil || exit {
		return err
	}
	log := newLogger(o.LogLevel, o.LogFormat, stderr)
	if o.Out == "" {
		o.Out = filepath.Join(o.Dir, "Generated")
	}

	if !o.Watch {
		return generate(ctx, o, log)
	}
	if err := generate(ctx, o, log); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Code == 2 {
			return err
		}
		log.Error("generation failed", "error", err)
	}
	w := &compiler.Watcher{
		Dir:    o.Dir,
		Filter: watchFilter(o),
		Logger: log,
		OnChange: func(ctx context.Context, paths []string) {
			log.Info("regenerating", "changed", len(paths))
			if err := generate(ctx, o, log); err != nil {
				log.Error("generation failed", "error", err)
			}
		},
	}
	return w.Run(ctx)
}

// generate performs one full generation pass and logs its diagnostics.
func generate(ctx context.Context, o *options, log *slog.Logger) error {
	cfg, err := buildConfig(o, log)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	var w *gen.Writer
	if !o.DryRun {
		w = gen.NewWriter(o.Out).WithWorkers(o.Workers)
	}
	res, err := compiler.Generate(ctx, cfg, o.Dir, w)
	if res != nil {
		for _, d := range res.Diagnostics {
			d.Log(log)
		}
	}
	if err != nil {
		return err
	}
	if w != nil {
		m := w.Metrics()
		log.Info("files written", "dir", o.Out, "files", m.FilesGenerated, "removed", m.FilesRemoved, "bytes", m.TotalBytes)
	}
	if o.Strict && res.HasErrors() {
		return &ExitError{Code: 1, Message: "myragen: generation reported errors"}
	}
	return nil
}

// buildConfig assembles the generator config. The options file is read on
// every call, so a watch pass sees its latest content.
func buildConfig(o *options, log *slog.Logger) (*gen.Config, error) {
	d, err := compiler.NewDialect(o.Target, compiler.DialectOption{Toolkit: o.Toolkit})
	if err != nil {
		return nil, err
	}
	opts := []gen.Option{
		gen.WithLogger(log),
		gen.WithDialect(d),
		gen.WithFeatureNames(o.Features...),
	}
	if o.Options != "" {
		f, err := load.ReadOptions(os.DirFS(filepath.Dir(o.Options)), filepath.Base(o.Options))
		if err != nil {
			return nil, fmt.Errorf("myragen: %s: %w", o.Options, err)
		}
		opts = append(opts, gen.WithSources(gen.SourcesFromOptions(f)))
	}
	if o.Namespace != "" {
		opts = append(opts, gen.WithGlobalOption(gen.KeyNamespace, o.Namespace))
	}
	if o.XMLDir != "" {
		opts = append(opts, gen.WithGlobalOption(gen.KeyDirectory, o.XMLDir))
	}
	return gen.NewConfig(opts...)
}

// watchFilter selects layout documents and the options file.
func watchFilter(o *options) func(string) bool {
	optionsPath := ""
	if o.Options != "" {
		if abs, err := filepath.Abs(o.Options); err == nil {
			optionsPath = abs
		}
	}
	return func(p string) bool {
		if strings.EqualFold(filepath.Ext(p), load.Ext) {
			return true
		}
		abs, err := filepath.Abs(p)
		return err == nil && abs == optionsPath
	}
}
