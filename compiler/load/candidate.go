// Package load discovers layout documents among build inputs and extracts the
// identified widgets from each of them.
package load

import (
	"io/fs"
	"path"
	"strings"
)

// Candidate is one build input: a path plus text that is read on first use.
// A Candidate is not safe for concurrent use.
type Candidate struct {
	Path string

	read   func() (string, error)
	loaded bool
	text   string
	err    error
}

// NewCandidate returns a candidate whose text is already in memory.
func NewCandidate(path, text string) *Candidate {
	return &Candidate{Path: path, text: text, loaded: true}
}

// NewLazyCandidate returns a candidate that calls read the first time its
// text is requested. The result, including an error, is kept for later calls.
func NewLazyCandidate(path string, read func() (string, error)) *Candidate {
	return &Candidate{Path: path, read: read}
}

// Text returns the candidate content.
func (c *Candidate) Text() (string, error) {
	if !c.loaded {
		c.text, c.err = c.read()
		c.loaded = true
	}
	return c.text, c.err
}

// Name returns the file name of the candidate without directory and extension.
// Both slash and backslash separators are honored.
func (c *Candidate) Name() string {
	base := path.Base(normalize(c.Path))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Walk returns every regular file under root in fsys as a candidate, in
// lexical order. Paths are slash-separated and relative to fsys. Directories
// whose name starts with a dot are skipped, except root itself.
func Walk(fsys fs.FS, root string) ([]*Candidate, error) {
	var cs []*Candidate
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		cs = append(cs, NewLazyCandidate(p, func() (string, error) {
			b, err := fs.ReadFile(fsys, p)
			return string(b), err
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// normalize maps backslashes to forward slashes.
func normalize(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
