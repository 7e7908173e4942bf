package catalog

import "fmt"

// Theme is a color palette players can unlock with coins.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemePastel  Theme = "pastel"
	ThemeNeon    Theme = "neon"
	ThemeRainbow Theme = "rainbow"
)

// Themes lists all themes in unlock order.
var Themes = []Theme{ThemeDefault, ThemePastel, ThemeNeon, ThemeRainbow}

// Palette holds the colors of a theme as hex strings.
type Palette struct {
	Colors     []string
	Background string
	Accent     string
}

var palettes = map[Theme]Palette{
	ThemeDefault: {
		Colors:     []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F"},
		Background: "#F8F9FA",
		Accent:     "#6C5CE7",
	},
	ThemePastel: {
		Colors:     []string{"#FFB5BA", "#B5DEFF", "#C3FFC3", "#FFFFC3", "#E8C3FF", "#FFD9C3", "#C3FFFF", "#FFC3E8"},
		Background: "#FFF5F5",
		Accent:     "#B5B5FF",
	},
	ThemeNeon: {
		Colors:     []string{"#FF0080", "#00FF80", "#8000FF", "#FF8000", "#00FFFF", "#FFFF00", "#FF00FF", "#80FF00"},
		Background: "#1A1A2E",
		Accent:     "#00FFFF",
	},
	ThemeRainbow: {
		Colors:     []string{"#FF0000", "#FF7F00", "#FFFF00", "#00FF00", "#0000FF", "#4B0082", "#9400D3", "#FF1493"},
		Background: "#FFFAF0",
		Accent:     "#FF69B4",
	},
}

// ParseTheme converts a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// String returns the theme identifier.
func (t Theme) String() string {
	return string(t)
}

// PaletteFor returns the palette of a theme, falling back to the default.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeDefault]
}
