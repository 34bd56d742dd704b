// Package denote implements the filename convention that makes notes
// self-describing without an external index:
//
//	<identifier>--<title-slug>[__<kw1>_<kw2>..]<extension>
//
// Encode and Decode form the wire codec for this grammar. Decode is a
// total function: any filename, including hidden files and foreign
// files, decodes into a (possibly partial) Identity.
package denote

import (
	"path/filepath"
	"strings"
	"time"
)

// IdentifierLayout is the timestamp format of a note identifier,
// e.g. 20240105T093000, in local time at creation.
const IdentifierLayout = "20060102T150405"

// Identity is the decoded form of a note filename. Fields a name does
// not carry are left at their zero values.
type Identity struct {
	Identifier string
	TitleSlug  string
	Keywords   []string
	Extension  string // without the leading dot
}

// NewIdentifier formats t as a note identifier.
func NewIdentifier(t time.Time) string {
	return t.Format(IdentifierLayout)
}

// Encode builds a denote filename from raw prompt input: a possibly
// multi-word title and a space-separated keyword string. Whitespace runs
// in the title collapse to single hyphens; keywords are joined with "_"
// behind a "__" separator, omitted entirely when there are none.
func Encode(identifier, title, keywords string, ft FileType) string {
	slug := strings.Join(strings.Fields(title), "-")

	segment := ""
	if kws := SplitKeywords(keywords); len(kws) > 0 {
		segment = "__" + strings.Join(kws, "_")
	}

	return identifier + "--" + slug + segment + ft.Ext()
}

// SplitKeywords splits a raw space-separated keyword string into trimmed
// tokens, dropping empties.
func SplitKeywords(raw string) []string {
	return strings.Fields(raw)
}

// Decode parses a filename (or path; only the base name is considered)
// into an Identity. It never fails: a name without "--" has no
// identifier, a name without "__" has no keywords, and a name without a
// "." has no extension. Empty keyword tokens are dropped; duplicates are
// kept so re-encoding reproduces the name.
func Decode(name string) Identity {
	name = filepath.Base(name)

	var id Identity
	tail := name
	if ident, rest, found := strings.Cut(name, "--"); found {
		id.Identifier = ident
		tail = rest
	}

	if title, kwTail, found := strings.Cut(tail, "__"); found {
		id.TitleSlug = title
		kwPart := kwTail
		if dot := strings.LastIndex(kwTail, "."); dot >= 0 {
			kwPart = kwTail[:dot]
			id.Extension = kwTail[dot+1:]
		}
		for _, kw := range strings.Split(kwPart, "_") {
			if kw != "" {
				id.Keywords = append(id.Keywords, kw)
			}
		}
		return id
	}

	// No keyword segment: the extension hangs off the title part.
	if dot := strings.LastIndex(tail, "."); dot >= 0 {
		id.Extension = tail[dot+1:]
		tail = tail[:dot]
	}
	id.TitleSlug = tail
	return id
}

// Date returns the calendar date encoded in the identifier, at midnight
// local time. ok is false when the identifier does not parse as a
// timestamp; such notes are simply excluded from date-based search.
func (id Identity) Date() (date time.Time, ok bool) {
	ts, err := time.ParseInLocation(IdentifierLayout, id.Identifier, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), true
}
