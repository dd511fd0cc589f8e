package colorscheme

import (
	"os"
	"strings"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 50
)

// EnvDetector detects the color scheme from the GTK_THEME environment
// variable, for users who set their theme explicitly via environment.
type EnvDetector struct{}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (*EnvDetector) Available() bool {
	return os.Getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
// A GTK_THEME containing "dark" (case-insensitive) means dark mode.
func (*EnvDetector) Detect() (entity.ColorScheme, bool) {
	gtkTheme := os.Getenv("GTK_THEME")
	if gtkTheme == "" {
		return entity.SchemeUnknown, false
	}

	if strings.Contains(strings.ToLower(gtkTheme), "dark") {
		return entity.SchemeDark, true
	}
	return entity.SchemeLight, true
}
