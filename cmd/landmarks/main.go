// Command landmarks is a handheld-friendly browser for famous attractions.
// Pick one from the list to read about it, press A to open it in a map
// application, press B to go back.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tourguide/landmarks/internal/app"
	"github.com/tourguide/landmarks/internal/config"
	"github.com/tourguide/landmarks/pkg/landmarks"
	"github.com/tourguide/landmarks/pkg/landmarks/catalog"
	"github.com/tourguide/landmarks/pkg/landmarks/launcher"
	"github.com/tourguide/landmarks/pkg/landmarks/locale"
)

const windowTitle = "Landmarks"

// SDL must be driven from the thread that initialized it.
func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	landmarks.SetLogPath(cfg.LogPath)
	landmarks.SetRawLogLevel(cfg.LogLevel)
	logger := landmarks.GetLogger()

	if err := run(cfg, logger); err != nil {
		code := 1
		if landmarks.IsInfrastructureError(err) {
			logger.Error("UI failed", "error", err)
			code = 2
		} else {
			logger.Error("Exiting with error", "error", err)
		}
		landmarks.Close()
		os.Exit(code)
	}
	landmarks.Close()
}

func run(cfg config.Config, logger *slog.Logger) error {
	attractions, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	localizer, err := locale.New(cfg.Language)
	if err != nil {
		return err
	}

	err = landmarks.Init(landmarks.Options{
		WindowTitle:       windowTitle,
		Fullscreen:        cfg.Fullscreen,
		ThemePath:         cfg.ThemePath,
		FontPath:          cfg.FontPath,
		Language:          localizer.Language(),
		LogPath:           cfg.LogPath,
		LogLevel:          cfg.LogLevel,
		FlipFaceButtons:   cfg.FlipFaceButtons,
		PowerButtonDevice: cfg.PowerButtonDevice,
	})
	if err != nil {
		return err
	}

	a, err := app.New(app.Options{
		Catalog:   attractions,
		Localizer: localizer,
		Launcher:  newLauncher(cfg, logger),
		Views:     landmarks.Views{},
		AssetsDir: cfg.AssetsDir,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A signal closes whichever screen is up; the router then unwinds.
	stopQuit := context.AfterFunc(ctx, landmarks.PushQuit)
	defer stopQuit()

	return a.Run(ctx)
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

// newLauncher logs map requests in development instead of spawning a map
// application on the desktop.
func newLauncher(cfg config.Config, logger *slog.Logger) launcher.URILauncher {
	if cfg.IsDevMode() && cfg.MapOpener == "" {
		return launcher.NewLog(logger)
	}

	command, args := cfg.MapOpenerCommand()
	if command == "" {
		command = launcher.DefaultOpener
	}
	return launcher.NewExec(logger, command, args...)
}
