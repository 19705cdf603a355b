package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/syssam/myragen/compiler"
	"github.com/syssam/myragen/compiler/gen"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// options are the parsed command-line options.
type options struct {
	Dir       string
	Out       string
	Namespace string
	XMLDir    string
	Options   string
	Target    string
	Toolkit   string
	Features  []string
	Workers   int
	DryRun    bool
	Watch     bool
	Strict    bool
	LogLevel  string
	LogFormat string
}

// listFlag collects the values of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

// parse processes command-line arguments. It returns the options, whether the
// program should exit cleanly, or an ExitError.
func parse(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("myragen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
myragen - typed accessor classes for Myra UI layout documents.

Usage:
  myragen [options] [DIR]

Arguments:
  DIR
    Project directory holding the layout documents. Defaults to ".".

Options:
`)
		fs.PrintDefaults()
	}

	var (
		o        options
		features listFlag
	)
	fs.StringVar(&o.Out, "out", "", "Output directory. Defaults to DIR/Generated.")
	fs.StringVar(&o.Namespace, "namespace", "", "Namespace of the generated classes. Overrides the options file.")
	fs.StringVar(&o.XMLDir, "xml-dir", "", "Directory pattern selecting the layout documents. Overrides the options file.")
	fs.StringVar(&o.Options, "options", "", "Path to a YAML options file.")
	fs.StringVar(&o.Target, "target", "csharp", fmt.Sprintf("Target language. Options: %s.", strings.Join(compiler.Dialects(), ", ")))
	fs.StringVar(&o.Toolkit, "toolkit", "", "Widget toolkit: a C# namespace or a Go import path.")
	fs.Var(&features, "feature", "Enable an experimental feature. Repeatable. Options: "+featureNames()+".")
	fs.IntVar(&o.Workers, "workers", 0, "Number of parallel file writers. 0 uses GOMAXPROCS.")
	fs.BoolVar(&o.DryRun, "dry-run", false, "Report diagnostics without writing files.")
	fs.BoolVar(&o.Watch, "watch", false, "Regenerate whenever a layout document changes.")
	fs.BoolVar(&o.Strict, "strict", false, "Exit with code 1 if an error diagnostic is reported.")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&o.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed.", "args", args)

	switch fs.NArg() {
	case 0:
		o.Dir = "."
	case 1:
		o.Dir = fs.Arg(0)
	default:
		return nil, false, &ExitError{Code: 2, Message: "at most one DIR argument is accepted"}
	}
	o.Features = features

	o.LogFormat = strings.ToLower(o.LogFormat)
	if o.LogFormat != "text" && o.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	o.LogLevel = strings.ToLower(o.LogLevel)
	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if o.Workers < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must not be negative"}
	}
	return &o, false, nil
}

func featureNames() string {
	names := make([]string, len(gen.AllFeatures))
	for i, f := range gen.AllFeatures {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

// newLogger returns a logger writing to w at the given level and format.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: l}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
