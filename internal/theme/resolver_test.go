package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/infrastructure/persistence/memstore"
	"github.com/gauchobites/gauchobites/internal/logging"
	"github.com/gauchobites/gauchobites/internal/theme/catalog"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeSource implements port.ColorSchemeSource with a controllable scheme.
type fakeSource struct {
	mu        sync.Mutex
	scheme    entity.ColorScheme
	callbacks []func(entity.ColorScheme)
}

func newFakeSource(scheme entity.ColorScheme) *fakeSource {
	return &fakeSource{scheme: scheme}
}

func (f *fakeSource) CurrentScheme() entity.ColorScheme {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scheme
}

func (f *fakeSource) OnChange(cb func(entity.ColorScheme)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbacks = append(f.callbacks, cb)
	return func() {}
}

func (f *fakeSource) emit(scheme entity.ColorScheme) {
	f.mu.Lock()
	f.scheme = scheme
	callbacks := make([]func(entity.ColorScheme), len(f.callbacks))
	copy(callbacks, f.callbacks)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(scheme)
	}
}

// failingRepo fails reads and/or writes with an I/O error.
type failingRepo struct {
	failRead  bool
	failWrite bool
}

var errDisk = errors.New("disk unavailable")

func (r *failingRepo) GetThemeMode(ctx context.Context) (entity.ThemeMode, bool, error) {
	if r.failRead {
		return "", false, errDisk
	}
	return "", false, nil
}

func (r *failingRepo) SetThemeMode(ctx context.Context, mode entity.ThemeMode) error {
	if r.failWrite {
		return errDisk
	}
	return nil
}

func awaitReady(t *testing.T, r *Resolver) {
	t.Helper()
	select {
	case <-r.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("resolver did not finish loading preference")
	}
}

func TestDerive(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name     string
		mode     entity.ThemeMode
		scheme   entity.ColorScheme
		wantDark bool
	}{
		{"explicit light ignores dark scheme", entity.ThemeModeLight, entity.SchemeDark, false},
		{"explicit light ignores unknown scheme", entity.ThemeModeLight, entity.SchemeUnknown, false},
		{"explicit dark ignores light scheme", entity.ThemeModeDark, entity.SchemeLight, true},
		{"explicit dark ignores unknown scheme", entity.ThemeModeDark, entity.SchemeUnknown, true},
		{"system follows dark scheme", entity.ThemeModeSystem, entity.SchemeDark, true},
		{"system follows light scheme", entity.ThemeModeSystem, entity.SchemeLight, false},
		{"system with unknown scheme falls back to light", entity.ThemeModeSystem, entity.SchemeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(cat, tt.mode, tt.scheme)
			if tt.wantDark {
				assert.Same(t, cat.Dark(), got)
			} else {
				assert.Same(t, cat.Light(), got)
			}
		})
	}
}

func TestResolver_DefaultsToSystemBeforeLoad(t *testing.T) {
	r := New(testCtx(), catalog.Default(), nil, newFakeSource(entity.SchemeLight))
	defer r.Close()

	assert.Equal(t, entity.ThemeModeSystem, r.Mode())
	assert.False(t, r.IsDark())
}

func TestResolver_RoundTrip(t *testing.T) {
	for _, mode := range []entity.ThemeMode{
		entity.ThemeModeLight,
		entity.ThemeModeDark,
		entity.ThemeModeSystem,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			ctx := testCtx()
			store := memstore.NewPreferenceRepository()

			first := New(ctx, catalog.Default(), store, newFakeSource(entity.SchemeLight))
			first.Initialize(ctx)
			awaitReady(t, first)
			require.NoError(t, first.SetThemeMode(ctx, mode))
			first.Flush()
			first.Close()

			second := New(ctx, catalog.Default(), store, newFakeSource(entity.SchemeLight))
			second.Initialize(ctx)
			awaitReady(t, second)
			defer second.Close()

			assert.Equal(t, mode, second.Mode())
		})
	}
}

func TestResolver_InitializeReadFailureFallsBackToSystem(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), &failingRepo{failRead: true}, newFakeSource(entity.SchemeLight))
	defer r.Close()

	r.Initialize(ctx)
	awaitReady(t, r)

	assert.Equal(t, entity.ThemeModeSystem, r.Mode())
}

func TestResolver_InitializeAbsentKeepsSystem(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), newFakeSource(entity.SchemeDark))
	defer r.Close()

	r.Initialize(ctx)
	awaitReady(t, r)

	// Scenario: OS scheme dark, stored preference absent.
	snap := r.Current()
	assert.Equal(t, entity.ThemeModeSystem, snap.Mode)
	assert.Equal(t, entity.ThemeModeDark, snap.Theme.Mode)
	assert.True(t, snap.IsDark)
}

func TestResolver_SetThemeMode_Invalid(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), newFakeSource(entity.SchemeLight))
	defer r.Close()

	err := r.SetThemeMode(ctx, entity.ThemeMode("sepia"))
	assert.ErrorIs(t, err, entity.ErrInvalidThemeMode)
	assert.Equal(t, entity.ThemeModeSystem, r.Mode())
}

func TestResolver_SetThemeMode_WriteFailureKeepsInMemoryState(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), &failingRepo{failWrite: true}, newFakeSource(entity.SchemeLight))
	defer r.Close()

	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeDark))
	r.Flush()

	// Optimistic update holds: no rollback on persistence failure.
	assert.Equal(t, entity.ThemeModeDark, r.Mode())
	assert.True(t, r.IsDark())
}

func TestResolver_ExplicitModeOverridesSchemeChange(t *testing.T) {
	ctx := testCtx()
	source := newFakeSource(entity.SchemeLight)
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), source)
	defer r.Close()

	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeLight))
	source.emit(entity.SchemeDark)

	snap := r.Current()
	assert.Equal(t, entity.ThemeModeLight, snap.Theme.Mode)
	assert.False(t, snap.IsDark)
}

func TestResolver_SystemModeFollowsSchemeChange(t *testing.T) {
	ctx := testCtx()
	source := newFakeSource(entity.SchemeLight)
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), source)
	defer r.Close()

	assert.False(t, r.IsDark())

	source.emit(entity.SchemeDark)
	assert.True(t, r.IsDark())

	source.emit(entity.SchemeLight)
	assert.False(t, r.IsDark())
}

func TestResolver_IdempotentSetProducesOnePublication(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), newFakeSource(entity.SchemeLight))
	defer r.Close()

	var mu sync.Mutex
	var seen []entity.ThemeMode
	unsubscribe := r.Subscribe(func(snap Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, snap.Theme.Mode)
	})
	defer unsubscribe()

	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeDark))
	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeDark))
	r.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []entity.ThemeMode{entity.ThemeModeDark}, seen)
}

func TestResolver_UnsubscribeStopsDelivery(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), newFakeSource(entity.SchemeLight))
	defer r.Close()

	var mu sync.Mutex
	count := 0
	unsubscribe := r.Subscribe(func(Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		count++
	})

	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeDark))
	unsubscribe()
	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeLight))
	r.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestResolver_AllConsumersSeeSameSnapshot(t *testing.T) {
	ctx := testCtx()
	r := New(ctx, catalog.Default(), memstore.NewPreferenceRepository(), newFakeSource(entity.SchemeLight))
	defer r.Close()

	var mu sync.Mutex
	var a, b []Snapshot
	defer r.Subscribe(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		a = append(a, s)
	})()
	defer r.Subscribe(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		b = append(b, s)
	})()

	require.NoError(t, r.SetThemeMode(ctx, entity.ThemeModeDark))
	r.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0], b[0])
}

func TestResolver_CloseIsIdempotent(t *testing.T) {
	r := New(testCtx(), catalog.Default(), nil, newFakeSource(entity.SchemeLight))
	r.Close()
	r.Close()
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, entity.ErrResolverNotAttached)

	r := New(testCtx(), catalog.Default(), nil, newFakeSource(entity.SchemeLight))
	defer r.Close()

	ctx := NewContext(context.Background(), r)
	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, r, got)
}
