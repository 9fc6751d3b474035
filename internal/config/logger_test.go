package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name  string
		cfg   LoggerConfig
		level zerolog.Level
	}{
		{"debug json", LoggerConfig{Level: "debug", Format: "json"}, zerolog.DebugLevel},
		{"warn console", LoggerConfig{Level: "warn", Format: "console"}, zerolog.WarnLevel},
		{"error", LoggerConfig{Level: "error", Format: "json"}, zerolog.ErrorLevel},
		{"unknown falls back to info", LoggerConfig{Level: "verbose", Format: "json"}, zerolog.InfoLevel},
		{"empty falls back to info", LoggerConfig{}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			assert.Equal(t, tt.level, logger.GetLevel())
		})
	}
}
