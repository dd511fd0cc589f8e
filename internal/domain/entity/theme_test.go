package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ThemeMode
		wantErr bool
	}{
		{"light", ThemeModeLight, false},
		{"dark", ThemeModeDark, false},
		{"system", ThemeModeSystem, false},
		{"", "", true},
		{"Light", "", true},
		{"auto", "", true},
		{"sepia", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseThemeMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidThemeMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeModeOrDefault(t *testing.T) {
	assert.Equal(t, ThemeModeDark, ThemeModeOrDefault("dark"))
	assert.Equal(t, ThemeModeLight, ThemeModeOrDefault("light"))
	assert.Equal(t, ThemeModeSystem, ThemeModeOrDefault("system"))
	assert.Equal(t, ThemeModeSystem, ThemeModeOrDefault(""))
	assert.Equal(t, ThemeModeSystem, ThemeModeOrDefault("garbage"))
}

func TestThemeModeValid(t *testing.T) {
	assert.True(t, ThemeModeLight.Valid())
	assert.True(t, ThemeModeDark.Valid())
	assert.True(t, ThemeModeSystem.Valid())
	assert.False(t, ThemeMode("").Valid())
	assert.False(t, ThemeMode("auto").Valid())
}

func TestThemeIsDark(t *testing.T) {
	dark := &Theme{Mode: ThemeModeDark}
	light := &Theme{Mode: ThemeModeLight}

	assert.True(t, dark.IsDark())
	assert.False(t, light.IsDark())
}
