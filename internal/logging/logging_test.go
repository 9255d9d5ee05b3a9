package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		dev     bool
		want    zapcore.Level
		wantErr bool
	}{
		{"default level", "", false, zapcore.InfoLevel, false},
		{"debug dev", "debug", true, zapcore.DebugLevel, false},
		{"warn prod", "warn", false, zapcore.WarnLevel, false},
		{"unknown level", "loud", false, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.dev)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}
}
