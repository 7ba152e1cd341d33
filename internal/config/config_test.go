package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	EnvironmentEnvVar, LogPathEnvVar, LogLevelEnvVar, LanguageEnvVar, CatalogPathEnvVar,
	AssetsDirEnvVar, ThemePathEnvVar, FontPathEnvVar, MapOpenerEnvVar, PowerButtonEnvVar,
	FullscreenEnvVar, FlipFaceButtonsEnvVar,
}

// isolate clears every variable Load reads and points it at a missing .env.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range allVars {
		t.Setenv(key, "")
	}
	t.Setenv(EnvFileEnvVar, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "logs/landmarks.log", cfg.LogPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.Fullscreen)
	assert.False(t, cfg.IsDevMode())

	cmd, args := cfg.MapOpenerCommand()
	assert.Empty(t, cmd)
	assert.Empty(t, args)
}

func TestLoadFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(EnvironmentEnvVar, "DEV")
	t.Setenv(LanguageEnvVar, "zh-TW")
	t.Setenv(MapOpenerEnvVar, "gio open")
	t.Setenv(FullscreenEnvVar, "true")
	t.Setenv(FlipFaceButtonsEnvVar, "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevMode())
	assert.Equal(t, "zh-TW", cfg.Language)
	assert.True(t, cfg.Fullscreen)
	assert.True(t, cfg.FlipFaceButtons)

	cmd, args := cfg.MapOpenerCommand()
	assert.Equal(t, "gio", cmd)
	assert.Equal(t, []string{"open"}, args)
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv(LanguageEnvVar)
	os.Unsetenv(AssetsDirEnvVar)
	t.Cleanup(func() {
		os.Unsetenv(LanguageEnvVar)
		os.Unsetenv(AssetsDirEnvVar)
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LANGUAGE=zh-TW\nASSETS_DIR=/mnt/SDCARD/landmarks\n"), 0o644))
	t.Setenv(EnvFileEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "zh-TW", cfg.Language)
	assert.Equal(t, "/mnt/SDCARD/landmarks", cfg.AssetsDir)
}

func TestLoadInvalidBool(t *testing.T) {
	isolate(t)
	t.Setenv(FullscreenEnvVar, "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, FullscreenEnvVar)
}
