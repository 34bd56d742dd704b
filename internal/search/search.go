// Package search locates notes by the metadata encoded in their
// filenames. There is no persisted index: the keyword universe and every
// filter are linear scans over the collection, rebuilt on each run.
package search

import (
	"time"

	"github.com/ShilohAlleyne/decoy/internal/denote"
)

// Keywords returns the deduplicated keyword universe across the
// collection, in first-seen order. Names without keywords contribute
// nothing.
func Keywords(names []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range names {
		for _, kw := range denote.Decode(name).Keywords {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

// ByKeywords keeps the notes whose keyword set intersects selected: a
// single shared tag is enough (OR semantics). An empty selection is the
// no-filter case and returns the collection unchanged. Relative order is
// preserved.
func ByKeywords(names []string, selected []string) []string {
	if len(selected) == 0 {
		return names
	}
	want := make(map[string]struct{}, len(selected))
	for _, kw := range selected {
		want[kw] = struct{}{}
	}

	var out []string
	for _, name := range names {
		for _, kw := range denote.Decode(name).Keywords {
			if _, ok := want[kw]; ok {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// ByDate keeps the notes whose identifier parses as a timestamp and
// whose calendar date equals day (time of day ignored). Notes without a
// parsable identifier never match.
func ByDate(names []string, day time.Time) []string {
	y, m, d := day.Date()

	var out []string
	for _, name := range names {
		date, ok := denote.Decode(name).Date()
		if !ok {
			continue
		}
		ny, nm, nd := date.Date()
		if ny == y && nm == m && nd == d {
			out = append(out, name)
		}
	}
	return out
}
