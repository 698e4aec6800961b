package ui

import "testing"

func TestThemeLookups(t *testing.T) {
	if got := GetTheme(ThemeDark).Name; got != ThemeDark {
		t.Fatalf("GetTheme(dark).Name = %q, want dark", got)
	}
	if got := GetTheme("neon").Name; got != ThemeLight {
		t.Fatalf("GetTheme(unknown).Name = %q, want light", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	if got := NextTheme(ThemeLight); got != ThemeDark {
		t.Fatalf("NextTheme(light) = %q, want dark", got)
	}
	if got := NextTheme(NextTheme(ThemeLight)); got != ThemeLight {
		t.Fatalf("two toggles = %q, want light", got)
	}
	if got := NextTheme("bogus"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(bogus) = %q, want %q", got, ThemeNames()[0])
	}
}
