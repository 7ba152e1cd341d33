package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

// Window wraps the SDL window and renderer shared by every screen.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
	Images   *TextureCache

	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = devWindowWidth, devWindowHeight
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, devWindowWidth)
		height = envSize(constants.WindowHeightEnvVar, devWindowHeight)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		Images:   NewTextureCache(),
		hasVSync: vsync,
	}, nil
}

func envSize(key string, fallback int32) int32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window size; using default", "variable", key, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) closeWindow() {
	w.Images.Destroy()
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width every screen lays out against.
func (w *Window) GetWidth() int32 {
	lw, _ := w.Renderer.GetLogicalSize()
	if lw == 0 {
		lw, _ = w.Window.GetSize()
	}
	return lw
}

// GetHeight returns the logical height every screen lays out against.
func (w *Window) GetHeight() int32 {
	_, lh := w.Renderer.GetLogicalSize()
	if lh == 0 {
		_, lh = w.Window.GetSize()
	}
	return lh
}

// Clear fills the screen with the theme background.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
