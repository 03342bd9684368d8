package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := NewLogger(&Config{LogLevel: tt.level}, &bytes.Buffer{})
			assert.True(t, log.Enabled(context.Background(), tt.want))
			assert.False(t, log.Enabled(context.Background(), tt.want-1))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{LogLevel: "info", LogFormat: "json"}, &buf)

	log.Info("level started", "cols", 23)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "level started", line["msg"])
	assert.Equal(t, float64(23), line["cols"])
	assert.Equal(t, "INFO", line["level"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{}, &buf)

	log.Info("run created", "seed", 9)

	assert.Contains(t, buf.String(), "msg=\"run created\"")
	assert.Contains(t, buf.String(), "seed=9")
}
