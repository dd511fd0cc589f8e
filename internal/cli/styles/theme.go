// Package styles provides reusable lipgloss-based TUI components derived
// from the canonical themes.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

// Styles holds lipgloss colors and styles derived from one theme.
type Styles struct {
	// Base colors
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Success        lipgloss.Color
	Warning        lipgloss.Color
	Destructive    lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Swatch lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// FromTheme derives terminal styles from a canonical theme.
func FromTheme(theme *entity.Theme) *Styles {
	p := theme.Colors

	s := &Styles{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Success:        lipgloss.Color(p.Success),
		Warning:        lipgloss.Color(p.Warning),
		Destructive:    lipgloss.Color(p.Destructive),
	}

	s.buildStyles()
	return s
}

// buildStyles creates all derived lipgloss styles.
func (s *Styles) buildStyles() {
	s.Title = lipgloss.NewStyle().
		Foreground(s.Text).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(s.Muted).
		Bold(true)

	s.Normal = lipgloss.NewStyle().
		Foreground(s.Text)

	s.Subtle = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.Highlight = lipgloss.NewStyle().
		Foreground(s.Accent).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.Destructive)

	s.SuccessStyle = lipgloss.NewStyle().
		Foreground(s.Success)

	s.ListItem = lipgloss.NewStyle().
		Foreground(s.Text).
		PaddingLeft(2)

	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(s.Accent).
		Background(s.SurfaceVariant).
		PaddingLeft(2).
		Bold(true)

	s.Badge = lipgloss.NewStyle().
		Foreground(s.Background).
		Background(s.Accent).
		Padding(0, 1)

	s.BadgeMuted = lipgloss.NewStyle().
		Foreground(s.Text).
		Background(s.SurfaceVariant).
		Padding(0, 1)

	s.Swatch = lipgloss.NewStyle().
		Padding(0, 2)

	s.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(1, 2)

	s.BoxHeader = lipgloss.NewStyle().
		Foreground(s.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(s.Border).
		MarginBottom(1)
}
