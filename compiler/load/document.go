package load

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// IDAttr is the attribute that names a widget for lookup at runtime.
const IDAttr = "Id"

// Node is an element of a parsed layout document.
type Node struct {
	Name     string     // local element name, e.g. "Label".
	Attrs    []xml.Attr // attributes in document order.
	Line     int        // line of the start tag.
	Children []*Node    // child elements in document order.
}

// Attr returns the value of the un-namespaced attribute with the given name.
// Attribute names are case-sensitive.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn stops the descent below that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Widget is an element that carries a non-empty identifier.
type Widget struct {
	ID      string // value of the Id attribute.
	Element string // element name, used as the declared type.
	Field   string // name of the generated field.
	Line    int    // line of the element in its document.
}

// bom is the byte-order mark some editors write at the start of a file.
const bom = "\ufeff"

// ParseDocument parses the text of the layout document at path into its
// root element. The document must be well-formed and hold exactly one root
// element; any other input yields a *ParseError. A leading byte-order mark is
// ignored. The text is already decoded, so an encoding named by the XML
// declaration is not applied.
func ParseDocument(path, text string) (*Node, error) {
	var (
		root  *Node
		stack []*Node
		d     = xml.NewDecoder(strings.NewReader(strings.TrimPrefix(text, bom)))
	)
	d.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) {
		return r, nil
	}
	for {
		tok, err := d.Token()
		line, _ := d.InputPos()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var serr *xml.SyntaxError
			if errors.As(err, &serr) {
				line = serr.Line
			}
			return nil, NewParseError(path, line, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if name, ok := repeatedAttr(t.Attr); ok {
				return nil, NewParseError(path, line, errors.New("duplicate attribute "+name+" on element "+t.Name.Local))
			}
			n := &Node{Name: t.Name.Local, Attrs: t.Attr, Line: line}
			switch {
			case len(stack) > 0:
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			case root != nil:
				return nil, NewParseError(path, line, errors.New("multiple root elements"))
			default:
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && strings.TrimSpace(string(t)) != "" {
				return nil, NewParseError(path, line, errors.New("text outside of root element"))
			}
		}
	}
	switch {
	case root == nil:
		return nil, NewParseError(path, 0, errors.New("missing root element"))
	case len(stack) > 0:
		return nil, NewParseError(path, stack[len(stack)-1].Line, errors.New("unclosed element "+stack[len(stack)-1].Name))
	}
	return root, nil
}

// repeatedAttr returns the first attribute name that occurs twice in attrs.
func repeatedAttr(attrs []xml.Attr) (string, bool) {
	for i := 1; i < len(attrs); i++ {
		for _, prev := range attrs[:i] {
			if prev.Name == attrs[i].Name {
				if attrs[i].Name.Space != "" {
					return attrs[i].Name.Space + ":" + attrs[i].Name.Local, true
				}
				return attrs[i].Name.Local, true
			}
		}
	}
	return "", false
}

// ExtractWidgets returns one widget for every element under root, root
// included, that carries a non-empty Id attribute. Widgets are in document
// order and identifiers are not deduplicated.
func ExtractWidgets(root *Node) []*Widget {
	var ws []*Widget
	root.Walk(func(n *Node) bool {
		if id, ok := n.Attr(IDAttr); ok && id != "" {
			ws = append(ws, &Widget{ID: id, Element: n.Name, Field: id, Line: n.Line})
		}
		return true
	})
	return ws
}

// UniqueWidgets returns ws without the widgets whose identifier was already
// seen, keeping the first occurrence.
func UniqueWidgets(ws []*Widget) []*Widget {
	seen := make(map[string]struct{}, len(ws))
	unique := make([]*Widget, 0, len(ws))
	for _, w := range ws {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		unique = append(unique, w)
	}
	return unique
}
