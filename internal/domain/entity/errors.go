package entity

import "errors"

var (
	// ErrInvalidThemeMode is returned when a mode string is not one of
	// "light", "dark" or "system". This is a programming error, rejected
	// synchronously and never retried.
	ErrInvalidThemeMode = errors.New("invalid theme mode")

	// ErrResolverNotAttached is returned when code reads the theme from a
	// context that has no resolver attached. Failing fast here surfaces
	// integration mistakes immediately instead of rendering defaults.
	ErrResolverNotAttached = errors.New("theme resolver not attached to context: wrap the context with theme.NewContext before reading the active theme")
)
