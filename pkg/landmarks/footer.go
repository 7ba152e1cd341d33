package landmarks

import (
	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/internal"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	footerPillPadding int32 = 8
	footerItemGap     int32 = 24
)

// footerHeight is the vertical space reserved for the footer.
func footerHeight(font *ttf.Font, margins internal.Padding) int32 {
	return internal.LineHeight(font) + margins.Bottom
}

// splitHints puts the first hint on the left and the rest on the right.
func splitHints(hints []view.Hint) (left, right []view.Hint) {
	if len(hints) == 0 {
		return nil, nil
	}
	return hints[:1], hints[1:]
}

// renderFooter draws hints along the bottom edge as a button pill followed
// by its label.
func renderFooter(window *internal.Window, font *ttf.Font, hints []view.Hint, margins internal.Padding) {
	if len(hints) == 0 {
		return
	}

	lineHeight := internal.LineHeight(font)
	y := window.GetHeight() - margins.Bottom - lineHeight

	left, right := splitHints(hints)

	x := margins.Left
	for _, hint := range left {
		x += renderHint(window.Renderer, font, hint, x, y, lineHeight) + footerItemGap
	}

	var rightWidth int32
	for i, hint := range right {
		if i > 0 {
			rightWidth += footerItemGap
		}
		rightWidth += hintWidth(font, hint)
	}

	x = window.GetWidth() - margins.Right - rightWidth
	for _, hint := range right {
		x += renderHint(window.Renderer, font, hint, x, y, lineHeight) + footerItemGap
	}
}

func hintWidth(font *ttf.Font, hint view.Hint) int32 {
	pill := internal.TextWidth(font, hint.Button.GetName()) + footerPillPadding*2
	return pill + footerPillPadding + internal.TextWidth(font, hint.Label)
}

func renderHint(renderer *sdl.Renderer, font *ttf.Font, hint view.Hint, x, y, height int32) int32 {
	theme := internal.GetTheme()
	name := hint.Button.GetName()
	pillWidth := internal.TextWidth(font, name) + footerPillPadding*2

	renderer.SetDrawColor(theme.HighlightColor.R, theme.HighlightColor.G, theme.HighlightColor.B, theme.HighlightColor.A)
	renderer.FillRect(&sdl.Rect{X: x, Y: y, W: pillWidth, H: height})

	textY := y + (height-int32(font.Height()))/2
	internal.DrawText(renderer, name, font, theme.HighlightedTextColor, x, textY, pillWidth, constants.TextAlignCenter)

	labelX := x + pillWidth + footerPillPadding
	labelWidth := internal.TextWidth(font, hint.Label)
	internal.DrawText(renderer, hint.Label, font, theme.HintColor, labelX, textY, labelWidth, constants.TextAlignLeft)

	return pillWidth + footerPillPadding + labelWidth
}
