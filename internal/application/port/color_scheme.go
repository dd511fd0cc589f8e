// Package port defines interfaces for infrastructure adapters.
package port

import "github.com/gauchobites/gauchobites/internal/domain/entity"

// ColorSchemeDetector probes one platform signal for the OS color scheme.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: desktop settings daemons (gsettings, macOS defaults)
	//   -  50+: environment variables
	//   -  10+: terminal heuristics
	Priority() int

	// Available returns true if this detector can be used on this host.
	Available() bool

	// Detect returns the detected scheme and whether detection succeeded.
	// Returns (scheme, true) on success, (_, false) if detection failed.
	Detect() (scheme entity.ColorScheme, ok bool)
}

// ColorSchemeSource exposes the operating system's color scheme to the
// resolver: a read-once query plus a change subscription.
type ColorSchemeSource interface {
	// CurrentScheme returns the scheme the OS currently reports.
	// SchemeUnknown when no signal is available.
	CurrentScheme() entity.ColorScheme

	// OnChange registers a callback invoked whenever the reported scheme
	// changes. Returns a function that unregisters the callback.
	OnChange(callback func(entity.ColorScheme)) (unsubscribe func())
}
