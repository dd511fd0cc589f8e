package catalog

import (
	"fmt"
	"sync"

	"github.com/gauchobites/gauchobites/internal/config"
	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

// Catalog holds the two canonical theme instances. Both are built once and
// never mutated afterwards; Light and Dark return the same pointer on every
// call so consumers that memoize on theme identity stay stable.
type Catalog struct {
	light *entity.Theme
	dark  *entity.Theme
}

// Light returns the canonical light theme.
func (c *Catalog) Light() *entity.Theme {
	return c.light
}

// Dark returns the canonical dark theme.
func (c *Catalog) Dark() *entity.Theme {
	return c.dark
}

var defaultOnce = sync.OnceValue(func() *Catalog {
	c, err := FromConfig(nil)
	if err != nil {
		// Unreachable: the built-in palettes are valid hex by construction.
		panic(fmt.Sprintf("catalog: default themes invalid: %v", err))
	}
	return c
})

// Default returns the catalog built from the built-in defaults.
func Default() *Catalog {
	return defaultOnce()
}

// FromConfig builds the canonical theme pair, overlaying palette and font
// overrides from config. A nil appearance config yields the defaults.
// Invalid hex overrides are rejected here, at startup, so the resolver
// never has to deal with a malformed theme.
func FromConfig(appearance *config.AppearanceConfig) (*Catalog, error) {
	var lightOverrides, darkOverrides *config.ColorPalette
	typography := defaultTypography()

	if appearance != nil {
		lightOverrides = &appearance.LightPalette
		darkOverrides = &appearance.DarkPalette
		typography.FontFamily = Coalesce(appearance.SansFont, typography.FontFamily)
		typography.MonoFamily = Coalesce(appearance.MonospaceFont, typography.MonoFamily)
	}

	lightPalette := PaletteFromConfig(lightOverrides, false)
	if err := ValidatePalette(lightPalette); err != nil {
		return nil, fmt.Errorf("light palette: %w", err)
	}

	darkPalette := PaletteFromConfig(darkOverrides, true)
	if err := ValidatePalette(darkPalette); err != nil {
		return nil, fmt.Errorf("dark palette: %w", err)
	}

	return &Catalog{
		light: &entity.Theme{
			Mode:         entity.ThemeModeLight,
			Colors:       lightPalette,
			Typography:   typography,
			Spacing:      defaultSpacing(),
			BorderRadius: defaultRadius(),
		},
		dark: &entity.Theme{
			Mode:         entity.ThemeModeDark,
			Colors:       darkPalette,
			Typography:   typography,
			Spacing:      defaultSpacing(),
			BorderRadius: defaultRadius(),
		},
	}, nil
}

func defaultTypography() entity.Typography {
	return entity.Typography{
		FontFamily: "Inter",
		MonoFamily: "JetBrains Mono",
		Sizes: entity.TypeScale{
			XS:    12,
			SM:    14,
			Base:  16,
			LG:    18,
			XL:    20,
			XXL:   24,
			Title: 32,
		},
		Weights: entity.WeightScale{
			Regular:  400,
			Medium:   500,
			Semibold: 600,
			Bold:     700,
		},
		LineHeight: 1.4,
	}
}

func defaultSpacing() entity.SpacingScale {
	return entity.SpacingScale{
		XS:  4,
		SM:  8,
		MD:  12,
		LG:  16,
		XL:  24,
		XXL: 32,
	}
}

func defaultRadius() entity.RadiusScale {
	return entity.RadiusScale{
		SM:   4,
		MD:   8,
		LG:   16,
		Full: 9999,
	}
}
