package index

import (
	"encoding/json"
	"fmt"
	"testing"

	"tableflip.dev/plannow/pkg/entry"
)

func mk(t *testing.T, day entry.Day, title, text string, typ entry.Type) *entry.Entry {
	t.Helper()
	e, err := entry.New("u1", day, title, text, typ, "")
	if err != nil {
		t.Fatalf("entry.New: %v", err)
	}
	return e
}

func titles(entries []*entry.Entry) string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return fmt.Sprint(out)
}

func sample(t *testing.T) []*entry.Entry {
	return []*entry.Entry{
		mk(t, "2024-03-02", "A", "#a #b", entry.TypeEntry),
		mk(t, "2024-03-01", "B", "#a", entry.TypeTask),
		mk(t, "2024-03-02", "C", "", entry.TypeTask),
		mk(t, "2024-03-03", "D", "#Work", entry.TypeEntry),
	}
}

func TestByDate(t *testing.T) {
	entries := sample(t)
	if got := titles(ByDate(entries, "2024-03-02")); got != "[A C]" {
		t.Fatalf("ByDate = %s", got)
	}
	if got := ByDate(entries, "2025-01-01"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestByHashtag(t *testing.T) {
	entries := sample(t)
	tests := []struct {
		tag  string
		want string
	}{
		{"#a", "[A B]"},
		{"#b", "[A]"},
		{"#Work", "[D]"},
		{"#work", "[]"},
		{"a", "[]"},
	}
	for _, tt := range tests {
		if got := titles(ByHashtag(entries, tt.tag)); got != tt.want {
			t.Errorf("ByHashtag(%q) = %s, want %s", tt.tag, got, tt.want)
		}
	}
}

func TestHashtagCounts(t *testing.T) {
	counts := HashtagCounts(sample(t))
	b, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"#a":2,"#b":1,"#Work":1}` {
		t.Fatalf("unexpected counts %s", b)
	}
	if counts.Get("#a") != 2 || counts.Get("#missing") != 0 {
		t.Fatalf("Get mismatch: %v", counts)
	}
	if fmt.Sprint(Tags(sample(t))) != "[#a #b #Work]" {
		t.Fatalf("Tags mismatch")
	}
}

func TestHashtagCountsEmpty(t *testing.T) {
	b, _ := json.Marshal(HashtagCounts(nil))
	if string(b) != "{}" {
		t.Fatalf("expected {}, got %s", b)
	}
}

func TestOpenAndDates(t *testing.T) {
	entries := sample(t)
	entries[1].Toggle()
	if got := titles(Open(entries)); got != "[C]" {
		t.Fatalf("Open = %s", got)
	}
	if got := fmt.Sprint(Dates(entries)); got != "[2024-03-01 2024-03-02 2024-03-03]" {
		t.Fatalf("Dates = %s", got)
	}
}
