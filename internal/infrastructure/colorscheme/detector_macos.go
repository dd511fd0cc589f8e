package colorscheme

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

const (
	detectorNameMacOS = "macos-defaults"
	priorityMacOS     = 100
)

// MacOSDetector reads AppleInterfaceStyle to determine dark/light mode.
type MacOSDetector struct{}

// NewMacOSDetector creates a new macOS defaults-based detector.
func NewMacOSDetector() *MacOSDetector {
	return &MacOSDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*MacOSDetector) Name() string {
	return detectorNameMacOS
}

// Priority implements port.ColorSchemeDetector.
func (*MacOSDetector) Priority() int {
	return priorityMacOS
}

// Available implements port.ColorSchemeDetector.
func (*MacOSDetector) Available() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := exec.LookPath("defaults")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (*MacOSDetector) Detect() (entity.ColorScheme, bool) {
	cmd := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle")
	output, err := cmd.Output()
	if err != nil {
		// The property is absent entirely in light mode
		return entity.SchemeLight, true
	}
	if strings.TrimSpace(string(output)) == "Dark" {
		return entity.SchemeDark, true
	}
	return entity.SchemeLight, true
}
