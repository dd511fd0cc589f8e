package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base directory at a temp dir so tests never
// touch the real home directory or pick up a developer's config file.
func isolateXDG(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("GAUCHOBITES_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Chdir(tmp)
	return tmp
}

func TestManager_LoadDefaults(t *testing.T) {
	isolateXDG(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, strings.HasSuffix(cfg.Database.Path, "gauchobites.sqlite"))
	assert.Empty(t, cfg.Appearance.SansFont)
}

func TestManager_LoadFromFile(t *testing.T) {
	isolateXDG(t)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configFile), dirPerm))

	content := `
[logging]
level = "debug"

[appearance]
sans_font = "Atkinson Hyperlegible"

[appearance.dark_palette]
accent = "#ff8800"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), filePerm))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format) // unset keeps default
	assert.Equal(t, "Atkinson Hyperlegible", cfg.Appearance.SansFont)
	assert.Equal(t, "#ff8800", cfg.Appearance.DarkPalette.Accent)
	assert.Empty(t, cfg.Appearance.LightPalette.Accent)
}

func TestManager_EnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("GAUCHOBITES_LOG_LEVEL", "error")
	t.Setenv("GAUCHOBITES_DATABASE_PATH", "/tmp/custom.sqlite")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/tmp/custom.sqlite", cfg.Database.Path)
}

func TestManager_WatchReloadsAndNotifies(t *testing.T) {
	isolateXDG(t)

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(configDir, dirPerm))

	configFile := filepath.Join(configDir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[logging]\nlevel = \"info\"\n"), filePerm))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var mu sync.Mutex
	var notified *Config
	m.OnConfigChange(func(cfg *Config) {
		mu.Lock()
		defer mu.Unlock()
		notified = cfg
	})
	require.NoError(t, m.Watch())
	// Second Watch is a no-op, not a second watcher.
	require.NoError(t, m.Watch())

	require.NoError(t, os.WriteFile(configFile, []byte("[logging]\nlevel = \"debug\"\n"), filePerm))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return notified != nil && notified.Logging.Level == "debug"
	}, 5*time.Second, 20*time.Millisecond, "config change callback never fired")

	assert.Equal(t, "debug", m.Get().Logging.Level)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	first := m.Get()
	first.Logging.Level = "mutated"

	assert.Equal(t, "info", m.Get().Logging.Level)
}

func TestGetXDGDirs(t *testing.T) {
	tmp := isolateXDG(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "config", "gauchobites"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(tmp, "data", "gauchobites"), dirs.DataHome)
}

func TestGetConfigFile(t *testing.T) {
	tmp := isolateXDG(t)

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "config", "gauchobites", "config.toml"), path)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, ".dev", "gauchobites"), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}

func TestEnsureDirectories(t *testing.T) {
	isolateXDG(t)

	require.NoError(t, EnsureDirectories())

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "database")
	assert.Contains(t, s, "appearance")
	assert.Contains(t, s, "dark_palette")
}
