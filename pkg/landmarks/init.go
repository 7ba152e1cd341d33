// Package landmarks draws the attraction browser on SDL2: a scrolling list
// of attraction names, a detail screen with image, description and a map
// button, and a not-found message.
//
// The package handles SDL initialization, input processing and theming.
// Screens are reached through Views, which implements view.Views.
package landmarks

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/internal"
)

// Options configures UI initialization.
type Options struct {
	WindowTitle       string       // Window title displayed in windowed mode
	Fullscreen        bool         // Cover the display; windowed and resizable otherwise
	Borderless        bool         // Drop window decorations in windowed mode
	ThemePath         string       // Optional TOML theme file layered over the default theme
	FontPath          string       // Overrides the theme's font
	Language          language.Tag // UI language; CJK languages get a CJK font when none is set
	LogPath           string       // Full path for log file including filename (creates parent directories)
	LogLevel          string       // "debug", "info", "warn" or "error"
	FlipFaceButtons   bool         // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	PowerButtonDevice string       // evdev node whose power key closes the app; empty disables
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	// Set face button flip preference before the input processor is created
	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	theme := internal.DefaultTheme()
	if options.ThemePath != "" {
		loaded, err := internal.LoadTheme(options.ThemePath, theme)
		if err != nil {
			return NewInfrastructureError("load_theme", err)
		}
		theme = loaded
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	theme.FontPath = internal.ResolveFontPath(theme.FontPath, options.Language, internal.FileExists)
	internal.SetTheme(theme)

	winOpts := internal.WindowOptions{
		Fullscreen: options.Fullscreen,
		Borderless: options.Borderless,
		Resizable:  !options.Fullscreen,
	}
	if err := internal.Init(options.WindowTitle, winOpts, options.PowerButtonDevice); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the UI.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// PushQuit closes the screen currently shown as if the window was closed.
// Safe to call from any goroutine.
func PushQuit() {
	internal.PushQuitEvent()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
