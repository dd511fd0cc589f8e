// Package colorscheme detects the operating system's color scheme and
// notifies the theme resolver when it changes.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/gauchobites/gauchobites/internal/application/port"
	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(entity.ColorScheme)
}

// Chain implements port.ColorSchemeSource over a prioritized detector list.
// When every detector fails the scheme is SchemeUnknown; downstream
// derivation treats that the same as light.
type Chain struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   entity.ColorScheme
	callbacks []*callbackWrapper
}

// NewChain creates a chain over the given detectors.
func NewChain(detectors ...port.ColorSchemeDetector) *Chain {
	c := &Chain{
		detectors: detectors,
		current:   entity.SchemeUnknown,
	}
	c.current = c.resolve()
	return c
}

// NewPlatformChain creates a chain with every detector this host supports.
func NewPlatformChain() *Chain {
	return NewChain(
		NewGsettingsDetector(),
		NewMacOSDetector(),
		NewEnvDetector(),
		NewTerminalDetector(),
	)
}

// CurrentScheme implements port.ColorSchemeSource.
func (c *Chain) CurrentScheme() entity.ColorScheme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve()
}

// resolve queries detectors in priority order. Callers must hold at least
// a read lock.
func (c *Chain) resolve() entity.ColorScheme {
	sorted := make([]port.ColorSchemeDetector, len(c.detectors))
	copy(sorted, c.detectors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if scheme, ok := detector.Detect(); ok {
			return scheme
		}
	}

	return entity.SchemeUnknown
}

// RegisterDetector adds a detector to the chain.
func (c *Chain) RegisterDetector(detector port.ColorSchemeDetector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detectors = append(c.detectors, detector)
}

// Refresh re-evaluates the scheme and notifies subscribers when it
// actually changed. Returns the new scheme.
func (c *Chain) Refresh() entity.ColorScheme {
	c.mu.Lock()

	newScheme := c.resolve()
	if newScheme == c.current {
		c.mu.Unlock()
		return newScheme
	}

	c.current = newScheme
	callbacks := make([]*callbackWrapper, len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newScheme)
	}

	return newScheme
}

// OnChange implements port.ColorSchemeSource.
func (c *Chain) OnChange(callback func(entity.ColorScheme)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	c.callbacks = append(c.callbacks, wrapper)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, cb := range c.callbacks {
			if cb == wrapper {
				c.callbacks = append(c.callbacks[:i], c.callbacks[i+1:]...)
				return
			}
		}
	}
}
