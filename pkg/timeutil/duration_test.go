package timeutil

import "testing"

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7 days, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	tests := map[string]struct {
		days  int
		label string
	}{
		"1w2d":   {9, "1w2d"},
		"10d":    {10, "1w3d"},
		"2 days": {2, "2d"},
		"3W":     {21, "3w"},
	}
	for in, want := range tests {
		days, label, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if days != want.days || label != want.label {
			t.Errorf("%s: got %d %q, want %d %q", in, days, label, want.days, want.label)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "1w-"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
