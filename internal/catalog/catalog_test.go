package catalog

import (
	"errors"
	"testing"
)

func TestParseEnums(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %q, %v", d, got, err)
		}
	}
	for _, th := range Themes {
		got, err := ParseTheme(th.String())
		if err != nil || got != th {
			t.Errorf("ParseTheme(%q) = %q, %v", th, got, err)
		}
	}

	if _, err := ParseMode("spin"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if _, err := ParseDifficulty("expert"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
	if _, err := ParseTheme("plaid"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestTitles(t *testing.T) {
	if ModeDouble.Title() != "Double" {
		t.Errorf("ModeDouble.Title() = %q", ModeDouble.Title())
	}
	if DifficultyExplorer.Title() != "Explorer" {
		t.Errorf("DifficultyExplorer.Title() = %q", DifficultyExplorer.Title())
	}
}

func TestPalettes(t *testing.T) {
	for _, th := range Themes {
		p := PaletteFor(th)
		if len(p.Colors) != 8 {
			t.Errorf("theme %s has %d colors, expected 8", th, len(p.Colors))
		}
	}
	if PaletteFor("plaid").Background != PaletteFor(ThemeDefault).Background {
		t.Error("unknown themes should fall back to the default palette")
	}
}

func TestTimeLimited(t *testing.T) {
	if !ModeCatch.TimeLimited() || !ModeDrag.TimeLimited() {
		t.Error("catch and drag run against a countdown")
	}
	if ModeClick.TimeLimited() || ModeDouble.TimeLimited() {
		t.Error("click and double have no countdown")
	}
}
