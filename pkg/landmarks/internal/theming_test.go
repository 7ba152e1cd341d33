package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/language"
)

func TestParseHexColor(t *testing.T) {
	for _, s := range []string{"#008080", "0x008080", "008080", " #008080 "} {
		c, err := ParseHexColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, sdl.Color{R: 0, G: 0x80, B: 0x80, A: 255}, c)
	}

	for _, s := range []string{"", "#fff", "#gggggg", "#12345678"} {
		_, err := ParseHexColor(s)
		assert.Error(t, err, s)
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
accent = "#FF8800"
background = "0x000000"
font = "/mnt/SDCARD/font.ttf"
`), 0o644))

	base := DefaultTheme()
	theme, err := LoadTheme(path, base)
	require.NoError(t, err)

	assert.Equal(t, HexToColor(0xFF8800), theme.AccentColor)
	assert.Equal(t, HexToColor(0x000000), theme.BackgroundColor)
	assert.Equal(t, "/mnt/SDCARD/font.ttf", theme.FontPath)
	assert.Equal(t, base.TextColor, theme.TextColor)
}

func TestLoadThemeErrors(t *testing.T) {
	base := DefaultTheme()

	_, err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml"), base)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`accent = "orange"`), 0o644))
	theme, err := LoadTheme(path, base)
	assert.Error(t, err)
	assert.Equal(t, base, theme)
}

func TestResolveFontPathTraditionalChinese(t *testing.T) {
	wqy := "/usr/share/fonts/truetype/wqy/wqy-microhei.ttc"
	installed := func(path string) bool { return path == wqy }

	assert.Equal(t, wqy, ResolveFontPath(DefaultFontPath, language.MustParse("zh-TW"), installed))
	assert.Equal(t, wqy, ResolveFontPath(DefaultFontPath, language.Japanese, installed))
}

func TestResolveFontPathKeepsFont(t *testing.T) {
	installed := func(string) bool { return true }

	assert.Equal(t, DefaultFontPath, ResolveFontPath(DefaultFontPath, language.English, installed))
	assert.Equal(t, "/mnt/SDCARD/font.ttf",
		ResolveFontPath("/mnt/SDCARD/font.ttf", language.MustParse("zh-TW"), installed))

	none := func(string) bool { return false }
	assert.Equal(t, DefaultFontPath, ResolveFontPath(DefaultFontPath, language.MustParse("zh-TW"), none))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("ttf"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.ttf")))
}
