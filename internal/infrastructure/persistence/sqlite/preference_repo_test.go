package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/domain/repository"
	"github.com/gauchobites/gauchobites/internal/logging"
)

func setupTestRepo(t *testing.T) (repository.PreferenceRepository, *sql.DB, context.Context) {
	t.Helper()

	logger := logging.NewFromConfigValues("debug", "console")
	ctx := logging.WithContext(context.Background(), logger)

	dbPath := filepath.Join(t.TempDir(), "prefs.sqlite")
	db, err := NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	return NewPreferenceRepository(db), db, ctx
}

func TestPreferenceRepo_AbsentValue(t *testing.T) {
	repo, _, ctx := setupTestRepo(t)

	mode, ok, err := repo.GetThemeMode(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, mode)
}

func TestPreferenceRepo_RoundTrip(t *testing.T) {
	repo, _, ctx := setupTestRepo(t)

	for _, mode := range []entity.ThemeMode{
		entity.ThemeModeLight,
		entity.ThemeModeDark,
		entity.ThemeModeSystem,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			require.NoError(t, repo.SetThemeMode(ctx, mode))

			got, ok, err := repo.GetThemeMode(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, mode, got)
		})
	}
}

func TestPreferenceRepo_OverwriteKeepsSingleRow(t *testing.T) {
	repo, db, ctx := setupTestRepo(t)

	require.NoError(t, repo.SetThemeMode(ctx, entity.ThemeModeDark))
	require.NoError(t, repo.SetThemeMode(ctx, entity.ThemeModeLight))

	got, ok, err := repo.GetThemeMode(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeModeLight, got)

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM preferences WHERE key = ?`, themeModeKey,
	).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPreferenceRepo_CorruptedValueMapsToSystem(t *testing.T) {
	repo, db, ctx := setupTestRepo(t)

	_, err := db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)`, themeModeKey, "solarized",
	)
	require.NoError(t, err)

	got, ok, err := repo.GetThemeMode(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeModeSystem, got)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	logger := logging.NewFromConfigValues("debug", "console")
	ctx := logging.WithContext(context.Background(), logger)

	_, err := NewConnection(ctx, "")
	assert.Error(t, err)
}

func TestNewConnection_CreatesParentDirectory(t *testing.T) {
	logger := logging.NewFromConfigValues("debug", "console")
	ctx := logging.WithContext(context.Background(), logger)

	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "prefs.sqlite")
	db, err := NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, Close(db))
}
