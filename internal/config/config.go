// Package config provides configuration management for gauchobites with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for the theming engine.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" json:"appearance"`
}

// DatabaseConfig holds preference-store configuration.
type DatabaseConfig struct {
	// Path to the sqlite file holding user preferences.
	// Empty means the XDG data directory default.
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// ColorPalette holds optional hex overrides for one theme's palette.
// Empty values fall back to the built-in defaults.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" json:"background,omitempty"`
	Surface        string `mapstructure:"surface" yaml:"surface" json:"surface,omitempty"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" json:"surface_variant,omitempty"`
	Text           string `mapstructure:"text" yaml:"text" json:"text,omitempty"`
	Muted          string `mapstructure:"muted" yaml:"muted" json:"muted,omitempty"`
	Accent         string `mapstructure:"accent" yaml:"accent" json:"accent,omitempty"`
	Border         string `mapstructure:"border" yaml:"border" json:"border,omitempty"`
}

// AppearanceConfig holds theme customization.
// The overlay is applied once at startup when the theme catalog is built;
// runtime theme switching only ever selects between the two built themes.
type AppearanceConfig struct {
	SansFont      string       `mapstructure:"sans_font" yaml:"sans_font" json:"sans_font,omitempty"`
	MonospaceFont string       `mapstructure:"monospace_font" yaml:"monospace_font" json:"monospace_font,omitempty"`
	LightPalette  ColorPalette `mapstructure:"light_palette" yaml:"light_palette" json:"light_palette,omitempty"`
	DarkPalette   ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" json:"dark_palette,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Appearance: AppearanceConfig{},
	}
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	if configFile := os.Getenv("GAUCHOBITES_CONFIG"); configFile != "" {
		// Explicit file wins over the search path.
		v.SetConfigFile(configFile)
	} else {
		// Supports yaml, json, toml automatically
		v.SetConfigName("config")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	v.SetEnvPrefix("GAUCHOBITES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"database.path":             "DATABASE_PATH",
		"logging.level":             "LOG_LEVEL",
		"logging.format":            "LOG_FORMAT",
		"appearance.sans_font":      "SANS_FONT",
		"appearance.monospace_font": "MONOSPACE_FONT",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "GAUCHOBITES_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing config file is fine; defaults and env vars apply.
	}

	return m.unmarshalLocked()
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload reloads the configuration from disk.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.unmarshalLocked()
}

// unmarshalLocked unmarshals viper state into m.config.
// Caller must hold m.mu for write.
func (m *Manager) unmarshalLocked() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("appearance.sans_font", defaults.Appearance.SansFont)
	m.viper.SetDefault("appearance.monospace_font", defaults.Appearance.MonospaceFont)
}
