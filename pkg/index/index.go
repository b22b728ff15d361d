// Package index derives read-only views over a loaded collection: entries of
// a day, entries carrying a hashtag, and hashtag usage counts. Nothing here
// touches the backend.
package index

import (
	"sort"

	"tableflip.dev/plannow/pkg/entry"
)

// ByDate returns the entries dated day in collection order. Positions in the
// result are what journal.Store.DeleteWithinDate addresses.
func ByDate(entries []*entry.Entry, day entry.Day) []*entry.Entry {
	out := make([]*entry.Entry, 0)
	for _, e := range entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}

// ByHashtag returns the entries whose hashtags contain tag. Matching is exact
// and case sensitive; tag includes the leading '#'.
func ByHashtag(entries []*entry.Entry, tag string) []*entry.Entry {
	out := make([]*entry.Entry, 0)
	for _, e := range entries {
		if e.HasHashtag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// Open returns the tasks that are not completed.
func Open(entries []*entry.Entry) []*entry.Entry {
	out := make([]*entry.Entry, 0)
	for _, e := range entries {
		if e.IsTask() && !e.Completed {
			out = append(out, e)
		}
	}
	return out
}

// Tags lists the distinct hashtags of entries in first-seen order.
func Tags(entries []*entry.Entry) []string {
	return HashtagCounts(entries).Tags()
}

// Dates lists the distinct days that have entries, oldest first.
func Dates(entries []*entry.Entry) []entry.Day {
	seen := make(map[entry.Day]struct{})
	out := make([]entry.Day, 0)
	for _, e := range entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		out = append(out, e.Date)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
