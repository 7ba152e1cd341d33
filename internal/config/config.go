// Package config reads the app's settings from the environment.
//
// A .env file in the working directory (or the path in LANDMARKS_ENV_FILE)
// is loaded first; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvFileEnvVar          = "LANDMARKS_ENV_FILE"
	EnvironmentEnvVar      = "ENVIRONMENT"
	LogPathEnvVar          = "LOG_PATH"
	LogLevelEnvVar         = "LOG_LEVEL"
	LanguageEnvVar         = "LANGUAGE"
	CatalogPathEnvVar      = "CATALOG_PATH"
	AssetsDirEnvVar        = "ASSETS_DIR"
	ThemePathEnvVar        = "THEME_PATH"
	FontPathEnvVar         = "FONT_PATH"
	MapOpenerEnvVar        = "MAP_OPENER"
	PowerButtonEnvVar      = "POWER_BUTTON_DEVICE"
	FullscreenEnvVar       = "FULLSCREEN"
	FlipFaceButtonsEnvVar  = "FLIP_FACE_BUTTONS"
	defaultLogPath         = "logs/landmarks.log"
	defaultAssetsDir       = "assets"
	defaultLanguage        = "en"
	defaultLogLevel        = "info"
	developmentEnvironment = "DEV"
)

// Config holds everything cmd/landmarks needs to start.
type Config struct {
	Environment       string
	LogPath           string
	LogLevel          string
	Language          string
	CatalogPath       string // Empty selects the built-in catalog
	AssetsDir         string
	ThemePath         string // Optional TOML theme file
	FontPath          string // Overrides the theme's font
	MapOpener         string // Command plus arguments, URI appended
	PowerButtonDevice string // evdev device to watch for the power key
	Fullscreen        bool
	FlipFaceButtons   bool
}

// IsDevMode reports whether ENVIRONMENT=DEV.
func (c Config) IsDevMode() bool {
	return c.Environment == developmentEnvironment
}

// MapOpenerCommand splits MapOpener into a command and its arguments.
func (c Config) MapOpenerCommand() (string, []string) {
	fields := strings.Fields(c.MapOpener)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Load reads the .env file, if any, and then the environment.
func Load() (Config, error) {
	envFile := os.Getenv(EnvFileEnvVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	cfg := Config{
		Environment:       os.Getenv(EnvironmentEnvVar),
		LogPath:           getEnv(LogPathEnvVar, defaultLogPath),
		LogLevel:          getEnv(LogLevelEnvVar, defaultLogLevel),
		Language:          getEnv(LanguageEnvVar, defaultLanguage),
		CatalogPath:       os.Getenv(CatalogPathEnvVar),
		AssetsDir:         getEnv(AssetsDirEnvVar, defaultAssetsDir),
		ThemePath:         os.Getenv(ThemePathEnvVar),
		FontPath:          os.Getenv(FontPathEnvVar),
		MapOpener:         os.Getenv(MapOpenerEnvVar),
		PowerButtonDevice: os.Getenv(PowerButtonEnvVar),
	}

	var err error
	if cfg.Fullscreen, err = getBool(FullscreenEnvVar); err != nil {
		return Config{}, err
	}
	if cfg.FlipFaceButtons, err = getBool(FlipFaceButtonsEnvVar); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
