package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders a single line to a texture. Returns nil for empty text
// or when rendering fails.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "error", err)
		return nil
	}
	return texture
}

// DrawText renders text at x,y aligned inside width and returns the height
// used.
func DrawText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y, width int32, align constants.TextAlign) int32 {
	texture := RenderText(renderer, text, font, color)
	if texture == nil {
		return 0
	}
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0
	}

	drawW := Min32(w, width)
	switch align {
	case constants.TextAlignCenter:
		x += (width - drawW) / 2
	case constants.TextAlignRight:
		x += width - drawW
	}

	renderer.Copy(texture, &sdl.Rect{W: drawW, H: h}, &sdl.Rect{X: x, Y: y, W: drawW, H: h})
	return h
}

// TextWidth measures text with font.
func TextWidth(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// LineHeight is the font height plus line spacing.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + h*3/10
}

// WrapText breaks text into lines no wider than maxWidth according to
// measure. Lines break on spaces; runs without spaces (CJK text, long
// words) break between runes.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	for _, paragraph := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	line := ""

	for _, word := range splitWords(paragraph) {
		candidate := line + word
		if line == "" {
			candidate = strings.TrimLeftFunc(word, unicode.IsSpace)
		}

		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}

		if line != "" {
			lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
		}
		line = strings.TrimLeftFunc(word, unicode.IsSpace)

		// A single word wider than the line is broken between runes.
		for measure(line) > maxWidth && utf8.RuneCountInString(line) > 1 {
			cut := fitPrefix(line, maxWidth, measure)
			lines = append(lines, line[:cut])
			line = line[cut:]
		}
	}

	if line != "" {
		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return lines
}

// splitWords splits on spaces, keeping each space attached to the word that
// follows it, and makes every CJK rune its own word.
func splitWords(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		switch {
		case r == ' ' && i > start:
			words = append(words, s[start:i])
			start = i
		case isWideRune(r):
			if i > start {
				words = append(words, s[start:i])
			}
			end := i + utf8.RuneLen(r)
			words = append(words, s[i:end])
			start = end
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

func isWideRune(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) ||
		(r >= 0x3000 && r <= 0x303F) || (r >= 0xFF00 && r <= 0xFFEF)
}

// fitPrefix returns the byte length of the longest rune prefix of s that fits.
// At least one rune is always returned.
func fitPrefix(s string, maxWidth int32, measure func(string) int32) int {
	cut := 0
	for i, r := range s {
		end := i + utf8.RuneLen(r)
		if measure(s[:end]) > maxWidth {
			break
		}
		cut = end
	}
	if cut == 0 {
		_, size := utf8.DecodeRuneInString(s)
		cut = size
	}
	return cut
}

// DrawWrappedText renders text wrapped to width and returns the total height.
// Lines outside [0, clipBottom) are measured but not drawn.
func DrawWrappedText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y, width, clipBottom int32) int32 {
	lineHeight := LineHeight(font)
	lines := WrapText(text, width, func(s string) int32 { return TextWidth(font, s) })

	for i, line := range lines {
		lineY := y + int32(i)*lineHeight
		if line == "" || lineY+lineHeight < 0 || lineY > clipBottom {
			continue
		}
		DrawText(renderer, line, font, color, x, lineY, width, constants.TextAlignLeft)
	}
	return int32(len(lines)) * lineHeight
}

// WrappedTextHeight is the height DrawWrappedText would use.
func WrappedTextHeight(text string, font *ttf.Font, width int32) int32 {
	lines := WrapText(text, width, func(s string) int32 { return TextWidth(font, s) })
	return int32(len(lines)) * LineHeight(font)
}
