package colorscheme

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/gauchobites/gauchobites/internal/logging"
)

const (
	// debounceWindow coalesces the burst of writes desktop daemons emit
	// when a setting changes.
	debounceWindow = 150 * time.Millisecond

	// defaultPollInterval is the fallback cadence for hosts where none of
	// the settings stores can be watched.
	defaultPollInterval = 30 * time.Second
)

// Monitor is the long-lived OS scheme-change subscription: it watches the
// desktop settings stores and re-runs the detector chain when they change,
// with a coarse poll as fallback. It runs until the context is canceled.
type Monitor struct {
	chain        *Chain
	pollInterval time.Duration
}

// NewMonitor creates a monitor over the given chain.
func NewMonitor(chain *Chain) *Monitor {
	return &Monitor{
		chain:        chain,
		pollInterval: defaultPollInterval,
	}
}

// Run blocks until ctx is canceled. Subscribers registered on the chain
// are notified whenever the resolved scheme actually changes.
func (m *Monitor) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("fsnotify unavailable, polling only")
		watcher = nil
	}

	if watcher != nil {
		defer func() { _ = watcher.Close() }()
		for _, path := range settingsPaths() {
			if err := watcher.Add(path); err != nil {
				log.Debug().Err(err).Str("path", path).Msg("cannot watch settings store")
				continue
			}
			log.Debug().Str("path", path).Msg("watching settings store")
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	if watcher != nil {
		g.Go(func() error {
			return m.watchLoop(ctx, watcher)
		})
	}

	g.Go(func() error {
		return m.pollLoop(ctx)
	})

	return g.Wait()
}

func (m *Monitor) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) error {
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
				fire = debounce.C
			} else {
				debounce.Reset(debounceWindow)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.FromContext(ctx).Debug().Err(err).Msg("settings watch error")
		case <-fire:
			debounce = nil
			fire = nil
			m.chain.Refresh()
		}
	}
}

func (m *Monitor) pollLoop(ctx context.Context) error {
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.chain.Refresh()
		}
	}
}

// settingsPaths returns the desktop settings stores that exist on this
// host. The dconf keyfile covers GNOME; the gtk settings cover the rest.
func settingsPaths() []string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		configHome = filepath.Join(home, ".config")
	}

	candidates := []string{
		filepath.Join(configHome, "dconf", "user"),
		filepath.Join(configHome, "gtk-3.0", "settings.ini"),
		filepath.Join(configHome, "gtk-4.0", "settings.ini"),
	}

	paths := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}
