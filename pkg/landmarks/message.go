package landmarks

import (
	"time"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/internal"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
)

type messageController struct {
	Title      string
	Body       string
	Hints      []view.Hint
	Margins    internal.Padding
	InputDelay time.Duration

	lastInputTime time.Time
	done          bool
	result        view.DetailOutput
}

func newMessageController(in view.NotFoundInput) *messageController {
	return &messageController{
		Title:      in.Title,
		Body:       in.Body,
		Hints:      in.Hints,
		Margins:    internal.UniformPadding(20),
		InputDelay: constants.DefaultInputDelay,
	}
}

// NotFound tells the user the requested attraction does not exist and waits
// for them to go back.
func NotFound(in view.NotFoundInput) (view.DetailOutput, error) {
	c := newMessageController(in)

	quit, err := runScreen(c)
	if err != nil {
		return view.DetailOutput{}, err
	}
	if quit {
		return view.DetailOutput{Action: view.DetailActionQuit}, nil
	}
	return c.result, nil
}

func (c *messageController) finished() bool {
	return c.done
}

func (c *messageController) handleInput(inputEvent *internal.Event, now time.Time) {
	if !inputEvent.Pressed || now.Sub(c.lastInputTime) < c.InputDelay {
		return
	}
	c.lastInputTime = now

	switch inputEvent.Button {
	case constants.VirtualButtonA, constants.VirtualButtonB:
		c.done = true
		c.result = view.DetailOutput{Action: view.DetailActionBack}
	}
}

func (c *messageController) update(time.Time) {}

func (c *messageController) render(window *internal.Window, _ time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	width := window.GetWidth() - c.Margins.Left - c.Margins.Right
	bodyFont := internal.Fonts.MediumFont

	titleHeight := internal.LineHeight(internal.Fonts.LargeFont)
	bodyHeight := internal.WrappedTextHeight(c.Body, bodyFont, width)
	total := titleHeight + constants.DefaultTitleSpacing*4 + bodyHeight

	y := internal.Max32(c.Margins.Top, (window.GetHeight()-total)/2)
	y += internal.DrawText(renderer, c.Title, internal.Fonts.LargeFont, theme.TextColor, c.Margins.Left, y, width, constants.TextAlignCenter)
	y += constants.DefaultTitleSpacing * 4

	for i, line := range internal.WrapText(c.Body, width, func(s string) int32 { return internal.TextWidth(bodyFont, s) }) {
		lineY := y + int32(i)*internal.LineHeight(bodyFont)
		internal.DrawText(renderer, line, bodyFont, theme.HintColor, c.Margins.Left, lineY, width, constants.TextAlignCenter)
	}

	renderFooter(window, internal.Fonts.SmallFont, c.Hints, c.Margins)
}
