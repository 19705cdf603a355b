package load

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
)

// Ext is the file extension of layout documents.
const Ext = ".xml"

// MatchMode controls how a directory pattern is compared with a path.
type MatchMode uint

const (
	// MatchSubstring accepts a path that contains the pattern anywhere.
	// "UI" matches "Content/UI/Title.xml" and also "Content/BUILD/Title.xml".
	MatchSubstring MatchMode = iota

	// MatchSegment accepts a path whose directory contains the pattern as a
	// run of whole path segments.
	MatchSegment
)

// String implements fmt.Stringer.
func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Select returns the candidates that are layout documents under the
// directory pattern, in input order. Extension and pattern are compared
// case-insensitively after mapping backslashes to slashes.
func Select(candidates []*Candidate, pattern string, mode MatchMode) []*Candidate {
	var selected []*Candidate
	for _, c := range candidates {
		if Matches(c.Path, pattern, mode) {
			selected = append(selected, c)
		}
	}
	return selected
}

// Matches reports whether p names a layout document under pattern.
func Matches(p, pattern string, mode MatchMode) bool {
	// Full Unicode case folding: "ß" matches "SS", which an ordinal
	// case-insensitive comparison would not.
	fold := cases.Fold()
	p = fold.String(normalize(p))
	if !strings.HasSuffix(p, Ext) {
		return false
	}
	pattern = fold.String(normalize(pattern))
	switch mode {
	case MatchSegment:
		pattern = strings.Trim(pattern, "/")
		if pattern == "" {
			return true
		}
		return strings.Contains("/"+path.Dir(p)+"/", "/"+pattern+"/")
	default:
		return strings.Contains(p, pattern)
	}
}
