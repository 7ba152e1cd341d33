package landmarks

import (
	"time"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/internal"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
	"github.com/veandco/go-sdl2/sdl"
)

type detailSettings struct {
	Margins              internal.Padding
	SectionSpacing       int32
	ScrollStep           int32
	ScrollAnimationSpeed float32
	InputDelay           time.Duration
	StatusDuration       time.Duration
}

func defaultDetailSettings() detailSettings {
	return detailSettings{
		Margins:              internal.UniformPadding(20),
		SectionSpacing:       16,
		ScrollStep:           85,
		ScrollAnimationSpeed: 0.15,
		InputDelay:           constants.DefaultInputDelay,
		StatusDuration:       constants.StatusMessageDuration,
	}
}

type detailController struct {
	Input    view.DetailInput
	Settings detailSettings

	scrollY       int32
	targetScrollY int32
	maxScrollY    int32

	status      view.Status
	statusUntil time.Time

	lastInputTime    time.Time
	directionalInput internal.DirectionalInput

	placeholder *sdl.Texture
	pin         *sdl.Texture

	done   bool
	result view.DetailOutput
}

func newDetailController(in view.DetailInput) *detailController {
	return &detailController{
		Input:            in,
		Settings:         defaultDetailSettings(),
		directionalInput: internal.NewDirectionalInputWithTiming(150*time.Millisecond, 50*time.Millisecond),
	}
}

// Detail shows one attraction and blocks until Back is pressed or the
// window is closed. A opens the map and keeps the screen up.
func Detail(in view.DetailInput) (view.DetailOutput, error) {
	c := newDetailController(in)
	defer c.cleanup()

	quit, err := runScreen(c)
	if err != nil {
		return view.DetailOutput{}, err
	}
	if quit {
		return view.DetailOutput{Action: view.DetailActionQuit}, nil
	}
	return c.result, nil
}

func (c *detailController) finished() bool {
	return c.done
}

func (c *detailController) handleInput(inputEvent *internal.Event, now time.Time) {
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
		c.scroll(-1)
	case constants.VirtualButtonDown:
		c.directionalInput.SetHeld(inputEvent.Button, true, now)
		c.scroll(1)
	case constants.VirtualButtonA:
		c.openMap(now)
	case constants.VirtualButtonB:
		c.done = true
		c.result = view.DetailOutput{Action: view.DetailActionBack}
	}
}

func (c *detailController) openMap(now time.Time) {
	if c.Input.OpenMap == nil {
		return
	}
	c.status = c.Input.OpenMap()
	c.statusUntil = now.Add(c.Settings.StatusDuration)
}

// currentStatus returns the status line if it has not expired.
func (c *detailController) currentStatus(now time.Time) (view.Status, bool) {
	if c.status.Message == "" || !now.Before(c.statusUntil) {
		return view.Status{}, false
	}
	return c.status, true
}

func (c *detailController) scroll(direction int) {
	c.targetScrollY += int32(direction) * c.Settings.ScrollStep
	c.targetScrollY = internal.Max32(0, internal.Min32(c.maxScrollY, c.targetScrollY))
}

// setContentHeight updates the scroll range once the content is laid out.
func (c *detailController) setContentHeight(content, viewport int32) {
	c.maxScrollY = internal.Max32(0, content-viewport)
	c.targetScrollY = internal.Min32(c.maxScrollY, c.targetScrollY)
	c.scrollY = internal.Min32(c.maxScrollY, c.scrollY)
}

func (c *detailController) update(now time.Time) {
	if dir := c.directionalInput.Update(now); dir != internal.DirectionNone {
		c.scroll(dir.Delta())
	}

	if _, ok := c.currentStatus(now); !ok {
		c.status = view.Status{}
	}

	delta := c.targetScrollY - c.scrollY
	step := int32(float32(delta) * c.Settings.ScrollAnimationSpeed)
	if step == 0 && delta != 0 {
		step = delta
	}
	c.scrollY += step
}

func (c *detailController) render(window *internal.Window, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	margins := c.Settings.Margins
	contentWidth := window.GetWidth() - margins.Left - margins.Right
	viewportBottom := window.GetHeight() - footerHeight(internal.Fonts.SmallFont, margins)

	top := margins.Top
	y := top - c.scrollY

	y += internal.DrawText(renderer, c.Input.Name, internal.Fonts.LargeFont, theme.TextColor, margins.Left, y, contentWidth, constants.TextAlignLeft)
	y += c.Settings.SectionSpacing

	y += c.renderImage(window, y, contentWidth, viewportBottom-top) + c.Settings.SectionSpacing
	y += internal.DrawWrappedText(renderer, c.Input.Description, internal.Fonts.SmallFont, theme.TextColor, margins.Left, y, contentWidth, viewportBottom)
	y += c.Settings.SectionSpacing
	y += c.renderLocation(window, y, contentWidth) + c.Settings.SectionSpacing
	y += c.renderMapButton(window, y)

	c.setContentHeight(y+c.scrollY-top, viewportBottom-top-margins.Bottom)

	// Content scrolls under the footer band; repaint it before drawing hints.
	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.FillRect(&sdl.Rect{X: 0, Y: viewportBottom, W: window.GetWidth(), H: window.GetHeight() - viewportBottom})

	c.renderStatus(window, now, viewportBottom)
	renderFooter(window, internal.Fonts.SmallFont, c.Input.Hints, margins)
}

func (c *detailController) renderImage(window *internal.Window, y, maxWidth, viewportHeight int32) int32 {
	maxHeight := viewportHeight / 2
	margins := c.Settings.Margins

	var (
		texture *sdl.Texture
		w, h    int32
	)

	if c.Input.ImagePath != "" {
		cached, err := window.Images.LoadImage(window.Renderer, c.Input.ImagePath)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load attraction image", "path", c.Input.ImagePath, "error", err)
			c.Input.ImagePath = ""
		} else {
			texture, w, h = cached.Texture, cached.W, cached.H
		}
	}

	if texture == nil {
		if c.placeholder == nil {
			placeholder, err := internal.SVGTexture(window.Renderer, internal.PlaceholderImage, 320, 200)
			if err != nil {
				internal.GetInternalLogger().Error("Failed to rasterize placeholder", "error", err)
				return 0
			}
			c.placeholder = placeholder
		}
		texture, w, h = c.placeholder, 320, 200
	}

	w, h = internal.ScaleToFit(w, h, maxWidth, maxHeight)
	x := margins.Left + (maxWidth-w)/2
	window.Renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return h
}

func (c *detailController) renderLocation(window *internal.Window, y, maxWidth int32) int32 {
	if c.Input.Location == "" {
		return 0
	}

	font := internal.Fonts.SmallFont
	theme := internal.GetTheme()
	x := c.Settings.Margins.Left
	size := int32(font.Height())

	if pin := c.pinTexture(window, size); pin != nil {
		window.Renderer.Copy(pin, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
		x += size + footerPillPadding
	}

	text := c.Input.LocationLabel + ": " + c.Input.Location
	internal.DrawText(window.Renderer, text, font, theme.HintColor, x, y, maxWidth-(x-c.Settings.Margins.Left), constants.TextAlignLeft)
	return internal.LineHeight(font)
}

func (c *detailController) renderMapButton(window *internal.Window, y int32) int32 {
	if c.Input.MapTarget == "" {
		return 0
	}

	font := internal.Fonts.MediumFont
	theme := internal.GetTheme()
	padding := c.Settings.Margins.Left / 2
	iconSize := int32(font.Height())
	labelWidth := internal.TextWidth(font, c.Input.OpenMapLabel)

	rect := sdl.Rect{
		X: c.Settings.Margins.Left,
		Y: y,
		W: padding + iconSize + footerPillPadding + labelWidth + padding,
		H: internal.LineHeight(font) + padding,
	}

	accent := theme.AccentColor
	window.Renderer.SetDrawColor(accent.R, accent.G, accent.B, accent.A)
	window.Renderer.FillRect(&rect)

	x := rect.X + padding
	iconY := rect.Y + (rect.H-iconSize)/2
	if pin := c.pinTexture(window, iconSize); pin != nil {
		window.Renderer.Copy(pin, nil, &sdl.Rect{X: x, Y: iconY, W: iconSize, H: iconSize})
	}
	x += iconSize + footerPillPadding

	internal.DrawText(window.Renderer, c.Input.OpenMapLabel, font, theme.ButtonLabelColor, x, iconY, labelWidth, constants.TextAlignLeft)
	return rect.H
}

func (c *detailController) pinTexture(window *internal.Window, size int32) *sdl.Texture {
	if c.pin != nil {
		return c.pin
	}
	pin, err := internal.SVGTexture(window.Renderer, internal.MapPinIcon, size, size)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterize map pin", "error", err)
		return nil
	}
	c.pin = pin
	return pin
}

func (c *detailController) renderStatus(window *internal.Window, now time.Time, bottom int32) {
	status, ok := c.currentStatus(now)
	if !ok {
		return
	}

	font := internal.Fonts.SmallFont
	color := internal.GetTheme().HintColor
	if status.Failed {
		color = internal.GetTheme().AccentColor
	}

	margins := c.Settings.Margins
	y := bottom - internal.LineHeight(font)
	internal.DrawText(window.Renderer, status.Message, font, color, margins.Left, y, window.GetWidth()-margins.Left-margins.Right, constants.TextAlignCenter)
}

func (c *detailController) cleanup() {
	if c.placeholder != nil {
		c.placeholder.Destroy()
		c.placeholder = nil
	}
	if c.pin != nil {
		c.pin.Destroy()
		c.pin = nil
	}
}
