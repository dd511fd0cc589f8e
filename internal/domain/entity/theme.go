package entity

import "fmt"

// ThemeMode is the user-facing theme preference. It represents intent,
// not a rendered theme: ThemeModeSystem means "defer to the OS".
type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// ParseThemeMode validates a mode string strictly. Anything outside the
// three enumerated values is a programming error on the caller's side.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(s) {
	case ThemeModeLight, ThemeModeDark, ThemeModeSystem:
		return ThemeMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidThemeMode, s)
	}
}

// ThemeModeOrDefault parses leniently: an absent, corrupted, or
// unrecognized value falls back to ThemeModeSystem. Used when loading the
// persisted preference, where bad data must never surface as an error.
func ThemeModeOrDefault(s string) ThemeMode {
	mode, err := ParseThemeMode(s)
	if err != nil {
		return ThemeModeSystem
	}
	return mode
}

// Valid reports whether the mode is one of the three enumerated values.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeModeLight, ThemeModeDark, ThemeModeSystem:
		return true
	}
	return false
}

func (m ThemeMode) String() string {
	return string(m)
}

// ColorScheme is the operating system's reported color preference.
// It is owned by the OS and read-only to this system; SchemeUnknown means
// the platform has not reported one (unsupported or not yet initialized).
type ColorScheme string

const (
	SchemeLight   ColorScheme = "light"
	SchemeDark    ColorScheme = "dark"
	SchemeUnknown ColorScheme = "unknown"
)

func (s ColorScheme) String() string {
	return string(s)
}

// Theme is an immutable aggregate of the design tokens for one visual
// theme. Exactly two canonical Theme values exist at any build (light and
// dark); the resolver only ever selects one of the two, never constructs
// new ones. Mode here is always ThemeModeLight or ThemeModeDark.
type Theme struct {
	Mode         ThemeMode
	Colors       ColorPalette
	Typography   Typography
	Spacing      SpacingScale
	BorderRadius RadiusScale
}

// IsDark reports whether this is the dark theme.
func (t *Theme) IsDark() bool {
	return t.Mode == ThemeModeDark
}

// ColorPalette holds semantic color tokens for theming.
type ColorPalette struct {
	Background     string // Main background color
	Surface        string // Elevated surfaces (cards, popups)
	SurfaceVariant string // Secondary surfaces
	Text           string // Primary text color
	Muted          string // Secondary/disabled text
	Accent         string // Primary accent color (actions, highlights)
	Border         string // Border and divider lines
	// Semantic status colors (derived defaults, not user-editable)
	Success     string // Positive feedback (calories on target, logged meal)
	Warning     string // Caution feedback (allergen notes, estimates)
	Destructive string // Errors and destructive actions
}

// Typography holds the font family and the type scale.
type Typography struct {
	FontFamily string
	MonoFamily string
	Sizes      TypeScale
	Weights    WeightScale
	LineHeight float64
}

// TypeScale is the font-size ladder in points.
type TypeScale struct {
	XS    float64
	SM    float64
	Base  float64
	LG    float64
	XL    float64
	XXL   float64
	Title float64
}

// WeightScale is the font-weight ladder.
type WeightScale struct {
	Regular  int
	Medium   int
	Semibold int
	Bold     int
}

// SpacingScale is the spacing ladder in points.
type SpacingScale struct {
	XS  float64
	SM  float64
	MD  float64
	LG  float64
	XL  float64
	XXL float64
}

// RadiusScale is the corner-radius ladder in points.
type RadiusScale struct {
	SM   float64
	MD   float64
	LG   float64
	Full float64
}
