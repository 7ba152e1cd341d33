package landmarks

import (
	"time"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/internal"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxVisibleItems = 8

type listSettings struct {
	Margins     internal.Padding
	ItemPadding int32
	InputDelay  time.Duration
}

func defaultListSettings() listSettings {
	return listSettings{
		Margins:     internal.UniformPadding(20),
		ItemPadding: 10,
		InputDelay:  constants.DefaultInputDelay,
	}
}

type listController struct {
	Title        string
	Items        []string
	EmptyMessage string
	Hints        []view.Hint
	Settings     listSettings

	SelectedIndex     int
	VisibleStartIndex int
	MaxVisibleItems   int

	lastInputTime    time.Time
	directionalInput internal.DirectionalInput

	done   bool
	result view.ListOutput
}

func newListController(in view.ListInput) *listController {
	c := &listController{
		Title:            in.Title,
		Items:            in.Items,
		EmptyMessage:     in.EmptyMessage,
		Hints:            in.Hints,
		Settings:         defaultListSettings(),
		MaxVisibleItems:  defaultMaxVisibleItems,
		directionalInput: internal.NewDirectionalInput(),
	}

	if in.Position.SelectedIndex > 0 && in.Position.SelectedIndex < len(c.Items) {
		c.SelectedIndex = in.Position.SelectedIndex
	}
	if in.Position.VisibleStartIndex > 0 && in.Position.VisibleStartIndex < len(c.Items) {
		c.VisibleStartIndex = in.Position.VisibleStartIndex
	}
	c.ensureSelectedVisible()

	return c
}

// List shows the attraction names and blocks until one is chosen, Back is
// pressed or the window is closed.
func List(in view.ListInput) (view.ListOutput, error) {
	c := newListController(in)

	quit, err := runScreen(c)
	if err != nil {
		return view.ListOutput{}, err
	}
	if quit {
		return view.ListOutput{Action: view.ListActionQuit, Position: c.position()}, nil
	}
	return c.result, nil
}

func (c *listController) finished() bool {
	return c.done
}

func (c *listController) position() view.ListPosition {
	return view.ListPosition{
		SelectedIndex:     c.SelectedIndex,
		VisibleStartIndex: c.VisibleStartIndex,
	}
}

func (c *listController) finish(action view.ListAction) {
	c.done = true
	c.result = view.ListOutput{
		Action:   action,
		Index:    c.SelectedIndex,
		Position: c.position(),
	}
}

func (c *listController) handleInput(inputEvent *internal.Event, now time.Time) {
	if !inputEvent.Pressed {
		c.directionalInput.SetHeld(inputEvent.Button, false, now)
		return
	}

	if now.Sub(c.lastInputTime) < c.Settings.InputDelay {
		return
	}
	c.lastInputTime = now

	switch inputEvent.Button {
	case constants.VirtualButtonUp:
		c.directionalInput.SetHeld(inputEvent.Button, true, now)
		c.moveSelection(-1)
	case constants.VirtualButtonDown:
		c.directionalInput.SetHeld(inputEvent.Button, true, now)
		c.moveSelection(1)
	case constants.VirtualButtonA:
		if len(c.Items) > 0 {
			c.finish(view.ListActionSelected)
		}
	case constants.VirtualButtonB:
		c.finish(view.ListActionBack)
	}
}

func (c *listController) update(now time.Time) {
	if dir := c.directionalInput.Update(now); dir != internal.DirectionNone {
		c.moveSelection(dir.Delta())
	}
}

// moveSelection moves by one row, wrapping at both ends.
func (c *listController) moveSelection(direction int) {
	if len(c.Items) == 0 {
		return
	}

	c.SelectedIndex += direction
	switch {
	case c.SelectedIndex >= len(c.Items):
		c.SelectedIndex = 0
		c.VisibleStartIndex = 0
	case c.SelectedIndex < 0:
		c.SelectedIndex = len(c.Items) - 1
		c.VisibleStartIndex = max(0, len(c.Items)-c.MaxVisibleItems)
	}

	c.scrollTo(c.SelectedIndex)
}

// scrollTo positions the window so index has some context above it.
func (c *listController) scrollTo(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}

	contextItems := max(1, c.MaxVisibleItems/4)
	newStart := max(0, index-contextItems)

	maxStart := max(0, len(c.Items)-c.MaxVisibleItems)
	if newStart > maxStart {
		newStart = maxStart
	}

	c.VisibleStartIndex = newStart
}

func (c *listController) ensureSelectedVisible() {
	maxStart := max(0, len(c.Items)-c.MaxVisibleItems)
	if c.VisibleStartIndex > maxStart {
		c.VisibleStartIndex = maxStart
	}
	if c.SelectedIndex < c.VisibleStartIndex || c.SelectedIndex >= c.VisibleStartIndex+c.MaxVisibleItems {
		c.scrollTo(c.SelectedIndex)
	}
}

func (c *listController) setMaxVisibleItems(n int) {
	n = max(1, n)
	if n == c.MaxVisibleItems {
		return
	}
	c.MaxVisibleItems = n
	c.ensureSelectedVisible()
}

func (c *listController) render(window *internal.Window, _ time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	margins := c.Settings.Margins
	titleFont := internal.Fonts.LargeFont
	font := internal.Fonts.MediumFont
	contentWidth := window.GetWidth() - margins.Left - margins.Right

	y := margins.Top
	if c.Title != "" {
		y += internal.DrawText(renderer, c.Title, titleFont, theme.TextColor, margins.Left, y, contentWidth, constants.TextAlignLeft)
		y += constants.DefaultTitleSpacing + c.Settings.ItemPadding
	}

	footer := footerHeight(internal.Fonts.SmallFont, margins)
	rowHeight := internal.LineHeight(font) + c.Settings.ItemPadding
	available := window.GetHeight() - y - footer
	c.setMaxVisibleItems(int(available / rowHeight))

	if len(c.Items) == 0 {
		centerY := y + (available-int32(font.Height()))/2
		internal.DrawText(renderer, c.EmptyMessage, font, theme.HintColor, margins.Left, centerY, contentWidth, constants.TextAlignCenter)
	}

	end := min(len(c.Items), c.VisibleStartIndex+c.MaxVisibleItems)
	for i := c.VisibleStartIndex; i < end; i++ {
		itemY := y + int32(i-c.VisibleStartIndex)*rowHeight
		textColor := theme.TextColor

		if i == c.SelectedIndex {
			bg := theme.HighlightColor
			renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
			renderer.FillRect(&sdl.Rect{
				X: margins.Left - 10,
				Y: itemY,
				W: contentWidth + 20,
				H: rowHeight,
			})
			textColor = theme.HighlightedTextColor
		}

		textY := itemY + (rowHeight-int32(font.Height()))/2
		internal.DrawText(renderer, c.Items[i], font, textColor, margins.Left, textY, contentWidth, constants.TextAlignLeft)
	}

	c.renderScrollIndicator(window, y, available)
	renderFooter(window, internal.Fonts.SmallFont, c.Hints, margins)
}

// renderScrollIndicator draws a thin bar on the right edge when the list
// does not fit.
func (c *listController) renderScrollIndicator(window *internal.Window, top, height int32) {
	if len(c.Items) <= c.MaxVisibleItems || height <= 0 {
		return
	}

	const barWidth int32 = 6
	handleHeight := internal.Max32(20, height*int32(c.MaxVisibleItems)/int32(len(c.Items)))
	maxStart := len(c.Items) - c.MaxVisibleItems
	handleY := top + (height-handleHeight)*int32(c.VisibleStartIndex)/int32(maxStart)

	hint := internal.GetTheme().HintColor
	window.Renderer.SetDrawColor(hint.R, hint.G, hint.B, hint.A)
	window.Renderer.FillRect(&sdl.Rect{
		X: window.GetWidth() - barWidth - 4,
		Y: handleY,
		W: barWidth,
		H: handleHeight,
	})
}
