package gen

import "github.com/syssam/myragen/compiler/load"

// Layout is a layout document ready for synthesis.
type Layout struct {
	// Name is the document file name without directory and extension.
	Name string
	// Path is the document path as supplied by the host.
	Path string
	// Namespace is the resolved namespace of the generated class.
	Namespace string
	// Widgets are the identified widgets in document order.
	Widgets []*load.Widget
}

// NewLayout returns the layout of candidate c.
func NewLayout(c *load.Candidate, namespace string, widgets []*load.Widget) *Layout {
	return &Layout{
		Name:      c.Name(),
		Path:      c.Path,
		Namespace: namespace,
		Widgets:   widgets,
	}
}

// ClassName returns the name of the generated accessor class.
func (l *Layout) ClassName() string {
	return l.Name + "UI"
}

// SourceFile returns the document file name, e.g. "TitleScreen.xml".
func (l *Layout) SourceFile() string {
	return l.Name + load.Ext
}
