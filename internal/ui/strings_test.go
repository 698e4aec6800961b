package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"abcdef", 3, "abc"},
		{"Chicken Tikka Masala", 10, "Chicken..."},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("wine_pairing"); got != "Wine Pairing" {
		t.Fatalf("titleCase = %q, want Wine Pairing", got)
	}
	if got := titleCase("  "); got != "" {
		t.Fatalf("titleCase blank = %q, want empty", got)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("dice the onions and fry them gently", 12)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Fatalf("line %q longer than 12", line)
		}
	}
	if wrap("keep", 0) != "keep" {
		t.Fatalf("wrap with zero width changed text")
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 3) != 2 || clamp(-1, 3) != 0 || clamp(2, 0) != 0 {
		t.Fatalf("clamp returned unexpected values")
	}
}
