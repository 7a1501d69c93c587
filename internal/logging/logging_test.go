package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		env, level string
		want       zapcore.Level
	}{
		{"prod", "warn", zapcore.WarnLevel},
		{"dev", "debug", zapcore.DebugLevel},
		{"prod", "nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		log, err := New(tt.env, tt.level)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(tt.want))
		assert.False(t, log.Core().Enabled(tt.want-1))
	}
}
