package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

func TestPreferenceRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository()

	_, ok, err := repo.GetThemeMode(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetThemeMode(ctx, entity.ThemeModeDark))

	mode, ok, err := repo.GetThemeMode(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeModeDark, mode)

	require.NoError(t, repo.SetThemeMode(ctx, entity.ThemeModeLight))

	mode, ok, err = repo.GetThemeMode(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeModeLight, mode)
}
