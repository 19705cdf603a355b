package gen

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/syssam/myragen"
	"github.com/syssam/myragen/compiler/load"
)

// Unit is one generated file.
type Unit struct {
	// Name is the generated file name, e.g. "TitleScreenUI.g.cs".
	Name string
	// Source is the path of the layout document the unit was generated from.
	Source string
	// Content is the generated text.
	Content []byte
}

// Result is the outcome of one generation run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// Config is the configuration resolved for the run.
	Config ResolvedConfig
	// Units are the generated files, in document order.
	Units []*Unit
	// Diagnostics are the messages reported by the run, in report order.
	Diagnostics []*Diagnostic
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Filter returns the diagnostics with the given code.
func (r *Result) Filter(code string) []*Diagnostic {
	var ds []*Diagnostic
	for _, d := range r.Diagnostics {
		if d.Code == code {
			ds = append(ds, d)
		}
	}
	return ds
}

// Unit returns the unit with the given file name, or nil.
func (r *Result) Unit(name string) *Unit {
	for _, u := range r.Units {
		if u.Name == name {
			return u
		}
	}
	return nil
}

func (r *Result) report(desc *Descriptor, err error, args ...any) {
	r.Diagnostics = append(r.Diagnostics, &Diagnostic{Descriptor: desc, Args: args, Err: err})
}

// Generator turns layout documents into accessor classes.
type Generator struct {
	config  *Config
	dialect Dialect
	log     *slog.Logger
}

// NewGenerator returns a generator for the given config.
// The config must carry a dialect.
func NewGenerator(c *Config) (*Generator, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if c.Dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: use WithDialect()")
	}
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{
		config:  c,
		dialect: c.Dialect,
		log:     log,
	}, nil
}

// Config returns the generator config.
func (g *Generator) Config() *Config {
	return g.config
}

// Run performs one generation pass over candidates. Configuration is resolved
// once, then every selected document is parsed, its widgets extracted and
// its accessor class synthesized. A failing document is reported and skipped;
// a failure outside document processing is reported as MYRA999. Run never
// panics and always returns the units produced so far.
func (g *Generator) Run(candidates []*load.Candidate) (res *Result) {
	res = &Result{RunID: uuid.NewString()}
	log := g.log.With("run_id", res.RunID)
	defer func() {
		if r := recover(); r != nil {
			err := myragen.NewUnexpectedError(r)
			res.report(DiagUnexpected, err, err.Error())
			log.Error("generation aborted", "error", err)
		}
	}()

	cfg := ResolveConfig(g.config.Sources, candidates)
	res.Config = cfg
	res.report(DiagRunStarted, nil, cfg.Namespace, cfg.Directory, len(candidates))
	log.Debug("configuration resolved", "namespace", cfg.Namespace, "directory", cfg.Directory, "dialect", g.dialect.Name())

	docs := load.Select(candidates, cfg.Directory, g.config.MatchMode())
	res.report(DiagDocumentsSelected, nil, len(docs), cfg.Directory)

	emitted := make(map[string]string, len(docs))
	for _, c := range docs {
		l, u, err := g.process(c, cfg)
		if err == nil && u != nil {
			if prev, ok := emitted[u.Name]; ok {
				err = NewGenerationError("emit", u.Name, "file name already generated from "+prev, nil)
			}
		}
		switch {
		case err != nil:
			derr := NewDocumentError(c.Path, err)
			res.report(DiagDocumentFailed, derr, c.Path, err.Error())
			log.Debug("document skipped", "path", c.Path, "error", err)
		case l == nil:
			log.Debug("document is empty", "path", c.Path)
		case u == nil:
			res.report(DiagNoWidgets, nil, l.SourceFile())
		default:
			emitted[u.Name] = c.Path
			res.Units = append(res.Units, u)
			res.report(DiagUnitGenerated, nil, l.Name, len(l.Widgets))
		}
	}
	log.Info("generation finished", "documents", len(docs), "units", len(res.Units))
	return res
}

// process runs one selected document through parsing, extraction and
// synthesis. It returns a nil layout for an empty document and a nil unit for
// a document without identified widgets.
func (g *Generator) process(c *load.Candidate, cfg ResolvedConfig) (l *Layout, u *Unit, err error) {
	defer func() {
		if r := recover(); r != nil {
			l, u, err = nil, nil, myragen.NewUnexpectedError(r)
		}
	}()
	text, err := c.Text()
	if err != nil {
		return nil, nil, err
	}
	if text == "" || text == "\ufeff" {
		return nil, nil, nil
	}
	root, err := load.ParseDocument(c.Path, text)
	if err != nil {
		return nil, nil, err
	}
	widgets := load.ExtractWidgets(root)
	if g.config.featureEnabled(FeatureDedupe) {
		widgets = load.UniqueWidgets(widgets)
	}
	l = NewLayout(c, cfg.Namespace, widgets)
	if len(l.Widgets) == 0 {
		return l, nil, nil
	}
	name := l.FileName(g.dialect)
	content, err := g.dialect.Synthesize(l)
	if err != nil {
		return l, nil, NewGenerationError("synthesize", name, "", err)
	}
	return l, &Unit{Name: name, Source: c.Path, Content: content}, nil
}
