package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/entry"
)

func TestGetDay(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.March, 10, 15, 0, 0, 0, time.Local) }
	tests := map[string]entry.Day{
		"":           "",
		"today":      "2024-03-10",
		"yesterday":  "2024-03-09",
		"tomorrow":   "2024-03-11",
		"2024-3-1":   "2024-03-01",
		"2024-03-01": "2024-03-01",
		"2/28":       "2024-02-28",
	}
	for in, want := range tests {
		o := &OnOptions{OnString: in, now: now}
		got, err := o.GetDay()
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s, want %s", in, got, want)
		}
	}

	o := &OnOptions{OnString: "someday", now: now}
	if _, err := o.GetDay(); !errors.Is(err, entry.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEditPatchOnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{}
	o := &EditOptions{}
	AddEditArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"--text", "new #tag", "--image", ""}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := o.Patch(cmd)
	if p.Title != nil {
		t.Fatalf("title should not be patched")
	}
	if p.Text == nil || *p.Text != "new #tag" {
		t.Fatalf("unexpected text %v", p.Text)
	}
	if p.ImageURI == nil || *p.ImageURI != "" {
		t.Fatalf("expected image cleared, got %v", p.ImageURI)
	}
}

func TestResolvePassword(t *testing.T) {
	o := &AccountOptions{}
	pw, err := o.ResolvePassword(strings.NewReader("hunter22\nrest"), nil)
	if err != nil || pw != "hunter22" {
		t.Fatalf("got %q %v", pw, err)
	}
	if _, err := o.ResolvePassword(strings.NewReader(""), nil); err == nil {
		t.Fatal("expected error for empty input")
	}
	o.Password = "flag"
	if pw, _ := o.ResolvePassword(strings.NewReader("stdin"), nil); pw != "flag" {
		t.Fatalf("flag should win, got %q", pw)
	}
}

func TestHandleError(t *testing.T) {
	o := &OutputOptions{}
	boom := errors.New("boom")
	if err := o.HandleError(boom); err != boom {
		t.Fatalf("expected error passthrough")
	}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("expected nil")
	}

	var out bytes.Buffer
	o = &OutputOptions{JSON: true, Out: &out}
	if err := o.HandleError(boom); err != nil {
		t.Fatalf("json errors are printed, got %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `{"error":"boom"}` {
		t.Errorf("got %s", got)
	}
}
