package colorscheme

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 10
)

// TerminalDetector infers the scheme from the terminal background color.
// Lowest priority: a heuristic for the dev CLI when no desktop settings
// daemon answered.
type TerminalDetector struct{}

// NewTerminalDetector creates a new terminal background detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (*TerminalDetector) Available() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Detect implements port.ColorSchemeDetector.
func (*TerminalDetector) Detect() (entity.ColorScheme, bool) {
	if lipgloss.HasDarkBackground() {
		return entity.SchemeDark, true
	}
	return entity.SchemeLight, true
}
