package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/language"
)

// DefaultFontPath is a font present on most desktop Linux installs.
// It has no Han, Kana or Hangul glyphs.
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// CJKFontPaths are tried in order when the UI language needs CJK glyphs
// and no font was configured.
var CJKFontPaths = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/wenquanyi/wqy-microhei/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
}

var cjkBases = map[string]bool{"zh": true, "ja": true, "ko": true}

// ResolveFontPath swaps the default font for an installed CJK-capable one
// when tag is Chinese, Japanese or Korean. A configured font is kept as is,
// as is the default when no candidate exists.
func ResolveFontPath(fontPath string, tag language.Tag, exists func(string) bool) string {
	if fontPath != DefaultFontPath {
		return fontPath
	}
	base, _ := tag.Base()
	if !cjkBases[base.String()] {
		return fontPath
	}
	for _, candidate := range CJKFontPaths {
		if exists(candidate) {
			return candidate
		}
	}
	return fontPath
}

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Theme defines the visual appearance of the screens.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background, footer button background
	AccentColor          sdl.Color // Map button, pills
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted rows
	HintColor            sdl.Color // Footer hints, status line
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the UI font
}

// themeFile is the TOML layout of a theme file. Colors are "#RRGGBB" or
// "0xRRGGBB"; missing keys keep the default.
type themeFile struct {
	Highlight       string `toml:"highlight"`
	Accent          string `toml:"accent"`
	ButtonLabel     string `toml:"button_label"`
	Text            string `toml:"text"`
	HighlightedText string `toml:"highlighted_text"`
	Hint            string `toml:"hint"`
	Background      string `toml:"background"`
	Font            string `toml:"font"`
}

var currentTheme = DefaultTheme()

// DefaultTheme is a dark theme with a teal accent.
func DefaultTheme() Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x008080),
		ButtonLabelColor:     HexToColor(0xFFFFFF),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0xB4B4B4),
		BackgroundColor:      HexToColor(0x101418),
		FontPath:             DefaultFontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(raw) != 6 {
		return sdl.Color{}, fmt.Errorf("theme: color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("theme: color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}

// LoadTheme reads a TOML theme file on top of base.
func LoadTheme(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("theme: %w", err)
	}

	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("theme: decode %s: %w", path, err)
	}

	theme := base
	for _, c := range []struct {
		raw string
		dst *sdl.Color
	}{
		{f.Highlight, &theme.HighlightColor},
		{f.Accent, &theme.AccentColor},
		{f.ButtonLabel, &theme.ButtonLabelColor},
		{f.Text, &theme.TextColor},
		{f.HighlightedText, &theme.HighlightedTextColor},
		{f.Hint, &theme.HintColor},
		{f.Background, &theme.BackgroundColor},
	} {
		if c.raw == "" {
			continue
		}
		color, err := ParseHexColor(c.raw)
		if err != nil {
			return base, err
		}
		*c.dst = color
	}

	if f.Font != "" {
		theme.FontPath = f.Font
	}
	return theme, nil
}
