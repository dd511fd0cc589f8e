package colorscheme

import "github.com/gauchobites/gauchobites/internal/domain/entity"

// Static is a ColorSchemeSource that always reports a fixed scheme and
// never emits changes. Used by one-shot CLI commands and tests.
type Static struct {
	Scheme entity.ColorScheme
}

// NewStatic creates a fixed-scheme source.
func NewStatic(scheme entity.ColorScheme) *Static {
	return &Static{Scheme: scheme}
}

// CurrentScheme implements port.ColorSchemeSource.
func (s *Static) CurrentScheme() entity.ColorScheme {
	return s.Scheme
}

// OnChange implements port.ColorSchemeSource. The callback is never
// invoked; the returned unsubscribe is a no-op.
func (s *Static) OnChange(func(entity.ColorScheme)) func() {
	return func() {}
}
