// Package csharp renders layout accessor classes as C# partial classes for
// the Myra UI toolkit.
//
// For Content/UI/TitleScreen.xml holding <Label Id="Title"/> the dialect
// writes TitleScreenUI.g.cs:
//
//	using Myra.Graphics2D.UI;
//	using System;
//
//	namespace GeneratedUI;
//
//	public partial class TitleScreenUI
//	{
//	    public Label Title { get; private set; }
//
//	    public void Initialize(Widget root)
//	    {
//	        Title = root.FindChildById("Title") as Label;
//	    }
//	}
package csharp

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/syssam/myragen/compiler/gen"
)

// DefaultToolkit is the namespace of the Myra widget types.
const DefaultToolkit = "Myra.Graphics2D.UI"

//go:embed template/*
var templateDir embed.FS

var templates = template.Must(template.New("csharp").
	Funcs(template.FuncMap{"quote": quote}).
	ParseFS(templateDir, "template/*.tmpl"))

// Dialect implements gen.Dialect for C#.
type Dialect struct {
	toolkit string
}

// Option configures the dialect.
type Option func(*Dialect)

// WithToolkit sets the namespace imported for the widget types.
func WithToolkit(namespace string) Option {
	return func(d *Dialect) {
		if namespace != "" {
			d.toolkit = namespace
		}
	}
}

// NewDialect creates a new C# dialect.
func NewDialect(opts ...Option) *Dialect {
	d := &Dialect{toolkit: DefaultToolkit}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "csharp"
}

// Ext returns the generated file suffix.
func (d *Dialect) Ext() string {
	return ".g.cs"
}

// Synthesize renders the accessor class of l.
func (d *Dialect) Synthesize(l *gen.Layout) ([]byte, error) {
	var buf bytes.Buffer
	data := &struct {
		*gen.Layout
		Toolkit string
	}{l, d.toolkit}
	if err := templates.ExecuteTemplate(&buf, "accessor.tmpl", data); err != nil {
		return nil, gen.NewGenerationError("synthesize", l.FileName(d), "execute template", err)
	}
	return buf.Bytes(), nil
}

// quote returns s as a C# regular string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

var _ gen.Dialect = (*Dialect)(nil)
