package glyph

import (
	"testing"

	"tableflip.dev/plannow/pkg/entry"
)

func TestFor(t *testing.T) {
	note := &entry.Entry{Type: entry.TypeEntry}
	task := &entry.Entry{Type: entry.TypeTask}
	done := &entry.Entry{Type: entry.TypeTask, Completed: true}
	tests := []struct {
		e    *entry.Entry
		want Bullet
	}{
		{nil, Note},
		{note, Note},
		{task, Task},
		{done, Completed},
	}
	for _, tt := range tests {
		if got := For(tt.e); got != tt.want {
			t.Errorf("For(%+v) = %v, want %v", tt.e, got, tt.want)
		}
	}
	if Completed.String() != "✘" {
		t.Fatalf("unexpected symbol %q", Completed.String())
	}
}
