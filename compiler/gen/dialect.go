package gen

// Dialect renders the accessor class of a layout in a target language.
//
// The rendered class declares one field per widget, typed as the widget
// element and named after its Field, readable by callers and assigned only by
// the class itself. Its initialization operation takes the root of a loaded
// widget tree and, for every widget in order, looks the identifier up and
// assigns the result cast to the element type. A missing widget or a failed
// cast leaves the field absent; it never raises.
type Dialect interface {
	// Name returns the dialect name, e.g. "csharp".
	Name() string
	// Ext returns the suffix appended to the class name to form the
	// generated file name, e.g. ".g.cs".
	Ext() string
	// Synthesize renders the accessor class of l. l has at least one widget.
	Synthesize(l *Layout) ([]byte, error)
}

// FileName returns the generated file name of l for dialect d.
func (l *Layout) FileName(d Dialect) string {
	return l.ClassName() + d.Ext()
}
