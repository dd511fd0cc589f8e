// Package repository defines persistence interfaces for the theming engine.
package repository

import (
	"context"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

// PreferenceRepository persists the user's theme-mode preference.
// The resolver is the only reader and writer of this value.
type PreferenceRepository interface {
	// GetThemeMode retrieves the persisted theme mode.
	// ok is false when the preference was never set; that is not an error.
	// err is returned for I/O failures only.
	GetThemeMode(ctx context.Context) (mode entity.ThemeMode, ok bool, err error)

	// SetThemeMode saves the theme mode, overwriting any previous value.
	SetThemeMode(ctx context.Context, mode entity.ThemeMode) error
}
