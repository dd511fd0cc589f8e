package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   zerolog.Level
		wantOK bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"WARN", zerolog.WarnLevel, true},
		{"", zerolog.NoLevel, false},
		{"verbose", zerolog.NoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFromConfigValues_FallsBackOnGarbage(t *testing.T) {
	logger := NewFromConfigValues("verbose", "xml")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewFromConfigValues("debug", "console")
	ctx := WithContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Equal(t, zerolog.DebugLevel, got.GetLevel())
}

func TestFromContext_MissingLoggerIsDisabled(t *testing.T) {
	got := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "resolver")

	FromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"resolver"`)
}
