// Package theme owns theme resolution for gauchobites: it reconciles the
// user's persisted preference with the OS color scheme and publishes the
// single active theme to all consumers.
package theme

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gauchobites/gauchobites/internal/application/port"
	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/domain/repository"
	"github.com/gauchobites/gauchobites/internal/logging"
	"github.com/gauchobites/gauchobites/internal/theme/catalog"
)

// Snapshot is the consumer-facing reactive read: the active theme, the mode
// that produced it, and the IsDark convenience projection. Every subscriber
// observes the same snapshot within one publication.
type Snapshot struct {
	Theme  *entity.Theme
	Mode   entity.ThemeMode
	IsDark bool
}

// subscriber wraps a callback to enable pointer comparison for removal.
type subscriber struct {
	fn func(Snapshot)
}

// Resolver maintains the current theme mode, tracks OS color-scheme
// changes, and derives and publishes the active theme. One instance exists
// per application session; all state transitions are serialized on r.mu.
type Resolver struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	prefs   repository.PreferenceRepository
	source  port.ColorSchemeSource
	logger  zerolog.Logger

	currentMode entity.ThemeMode
	osScheme    entity.ColorScheme
	current     Snapshot
	generation  uint64
	subscribers []*subscriber

	initOnce      sync.Once
	ready         chan struct{}
	unsubscribeOS func()
	closeOnce     sync.Once
	writes        sync.WaitGroup

	// notifyMu serializes subscriber delivery; delivered tracks the newest
	// generation handed to subscribers so a slow publication can never
	// overwrite a newer one.
	notifyMu  sync.Mutex
	delivered uint64
}

// New creates the resolver with the provisional mode "system" and the
// scheme the OS currently reports. The persisted preference is not loaded
// until Initialize, so construction never blocks on storage.
func New(ctx context.Context, cat *catalog.Catalog, prefs repository.PreferenceRepository, source port.ColorSchemeSource) *Resolver {
	r := &Resolver{
		catalog:     cat,
		prefs:       prefs,
		source:      source,
		logger:      *logging.FromContext(ctx),
		currentMode: entity.ThemeModeSystem,
		osScheme:    entity.SchemeUnknown,
		ready:       make(chan struct{}),
	}

	if source != nil {
		r.osScheme = source.CurrentScheme()
		r.unsubscribeOS = source.OnChange(r.onSchemeChanged)
	}

	r.mu.Lock()
	r.publishLocked()
	return r
}

// Derive is the pure derivation function: explicit light/dark modes win
// outright; system mode follows the OS scheme, with unknown treated the
// same as light. It never fails.
func Derive(cat *catalog.Catalog, mode entity.ThemeMode, scheme entity.ColorScheme) *entity.Theme {
	switch mode {
	case entity.ThemeModeDark:
		return cat.Dark()
	case entity.ThemeModeLight:
		return cat.Light()
	default:
		if scheme == entity.SchemeDark {
			return cat.Dark()
		}
		return cat.Light()
	}
}

// Initialize asynchronously reconciles the in-memory mode with the
// persisted preference. One-shot: once the load completes (or fails), no
// further automatic reload occurs for the session. A missing, corrupted or
// unreadable value leaves the mode at "system" and is never surfaced as an
// error.
func (r *Resolver) Initialize(ctx context.Context) {
	r.initOnce.Do(func() {
		// Detached: persistence never gates the first render.
		go r.loadPreference(context.WithoutCancel(ctx))
	})
}

// Ready is closed once the one-shot preference reconciliation has
// finished, whether it succeeded or not. Callers that need a settled mode
// (one-shot CLI reads, tests) can wait on it; UI consumers never should.
func (r *Resolver) Ready() <-chan struct{} {
	return r.ready
}

func (r *Resolver) loadPreference(ctx context.Context) {
	defer close(r.ready)

	if r.prefs == nil {
		return
	}

	mode, ok, err := r.prefs.GetThemeMode(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to load theme preference, keeping system mode")
		return
	}
	if !ok {
		r.logger.Debug().Msg("no persisted theme preference")
		return
	}
	if !mode.Valid() {
		r.logger.Warn().Str("value", mode.String()).Msg("persisted theme preference invalid, keeping system mode")
		return
	}

	r.logger.Debug().Str("mode", mode.String()).Msg("loaded persisted theme preference")

	r.mu.Lock()
	r.currentMode = mode
	r.publishLocked()
}

// SetThemeMode validates and applies a new mode. The in-memory update and
// republication are synchronous; persistence happens in a detached write
// whose failure is logged and swallowed, never rolled back. The in-memory
// preference is the source of truth for the current session; a lost write
// only risks reverting to "system" on the next cold start.
func (r *Resolver) SetThemeMode(ctx context.Context, mode entity.ThemeMode) error {
	log := logging.FromContext(ctx)

	if !mode.Valid() {
		return entity.ErrInvalidThemeMode
	}

	r.mu.Lock()
	r.currentMode = mode
	r.publishLocked()

	log.Debug().Str("mode", mode.String()).Msg("theme mode set")

	if r.prefs != nil {
		r.writes.Add(1)
		go func(ctx context.Context) {
			defer r.writes.Done()
			if err := r.prefs.SetThemeMode(ctx, mode); err != nil {
				r.logger.Error().Err(err).Str("mode", mode.String()).Msg("failed to persist theme preference")
			}
		}(context.WithoutCancel(ctx))
	}

	return nil
}

// onSchemeChanged is invoked by the color-scheme source. It triggers
// re-derivation only; the mode and the persisted preference are untouched,
// so an explicit user choice keeps precedence over the OS.
func (r *Resolver) onSchemeChanged(scheme entity.ColorScheme) {
	r.logger.Debug().Str("scheme", scheme.String()).Msg("os color scheme changed")

	r.mu.Lock()
	r.osScheme = scheme
	r.publishLocked()
}

// Current returns the latest published snapshot.
func (r *Resolver) Current() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Mode returns the current theme mode (which may be "system").
func (r *Resolver) Mode() entity.ThemeMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentMode
}

// ActiveTheme returns the currently active theme, always concretely light
// or dark.
func (r *Resolver) ActiveTheme() *entity.Theme {
	return r.Current().Theme
}

// IsDark reports whether the active theme is the dark theme.
func (r *Resolver) IsDark() bool {
	return r.Current().IsDark
}

// Subscribe registers a callback invoked on every publication. The
// returned function unregisters it.
func (r *Resolver) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}

	r.mu.Lock()
	r.subscribers = append(r.subscribers, sub)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subscribers {
			if s == sub {
				r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Flush waits for outstanding preference writes. Persistence never gates
// the in-memory update, but a process about to exit should drain it so a
// just-set preference is not lost to the shutdown race.
func (r *Resolver) Flush() {
	r.writes.Wait()
}

// Close releases the OS scheme subscription. Idempotent; safe to call on
// application shutdown.
func (r *Resolver) Close() {
	r.closeOnce.Do(func() {
		if r.unsubscribeOS != nil {
			r.unsubscribeOS()
		}
	})
}

// publishLocked derives the active theme and fans it out. Caller must hold
// r.mu; the lock is released before subscribers run. A derivation that
// lands on the already-published snapshot is dropped, so repeated
// SetThemeMode calls with the same mode produce no flicker.
func (r *Resolver) publishLocked() {
	derived := Derive(r.catalog, r.currentMode, r.osScheme)

	if r.generation > 0 && derived == r.current.Theme && r.currentMode == r.current.Mode {
		r.mu.Unlock()
		return
	}

	r.generation++
	gen := r.generation
	snap := Snapshot{
		Theme:  derived,
		Mode:   r.currentMode,
		IsDark: derived.IsDark(),
	}
	r.current = snap

	subs := make([]*subscriber, len(r.subscribers))
	copy(subs, r.subscribers)
	r.mu.Unlock()

	r.notify(gen, snap, subs)
}

// notify delivers a snapshot to subscribers in publication order. If a
// newer generation has already been delivered, the stale one is dropped:
// the observed sequence of themes stays monotonically consistent with the
// sequence of mode and scheme changes.
func (r *Resolver) notify(gen uint64, snap Snapshot, subs []*subscriber) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	if gen <= r.delivered {
		return
	}
	r.delivered = gen

	for _, sub := range subs {
		sub.fn(snap)
	}
}
