package index

import (
	"bytes"
	"encoding/json"

	"tableflip.dev/plannow/pkg/entry"
)

// TagCount is one hashtag and the number of entries carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Counts maps hashtags to usage counts, ordered by first appearance in the
// collection.
type Counts []TagCount

// HashtagCounts counts, for each hashtag, the entries that carry it.
func HashtagCounts(entries []*entry.Entry) Counts {
	pos := make(map[string]int)
	out := make(Counts, 0)
	for _, e := range entries {
		for _, tag := range e.Hashtags {
			if i, ok := pos[tag]; ok {
				out[i].Count++
				continue
			}
			pos[tag] = len(out)
			out = append(out, TagCount{Tag: tag, Count: 1})
		}
	}
	return out
}

// Get returns the count for tag, zero when absent.
func (c Counts) Get(tag string) int {
	for _, tc := range c {
		if tc.Tag == tag {
			return tc.Count
		}
	}
	return 0
}

func (c Counts) Tags() []string {
	out := make([]string, 0, len(c))
	for _, tc := range c {
		out = append(out, tc.Tag)
	}
	return out
}

// MarshalJSON renders the counts as a JSON object keeping first-seen key
// order, e.g. {"#a":2,"#b":1}.
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tc := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(tc.Tag)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, _ := json.Marshal(tc.Count)
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
