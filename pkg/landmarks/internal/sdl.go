package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var powerButton *PowerButtonWatcher

// Init brings up SDL, the window, input and fonts. powerDevice may be empty.
func Init(title string, winOpts WindowOptions, powerDevice string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		GetInternalLogger().Warn("Image format support incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	var err error
	if window, err = initWindow(title, winOpts); err != nil {
		return err
	}

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes); err != nil {
		return err
	}

	if powerDevice != "" {
		powerButton, err = WatchPowerButton(powerDevice, PushQuitEvent)
		if err != nil {
			GetInternalLogger().Warn("Power button handling disabled", "device", powerDevice, "error", err)
		}
	}

	return nil
}

// PushQuitEvent asks the running screen to close as if the window was closed.
func PushQuitEvent() {
	if _, err := sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT}); err != nil {
		GetInternalLogger().Error("Failed to push quit event", "error", err)
	}
}

func SDLCleanup() {
	if powerButton != nil {
		powerButton.Close()
	}
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
