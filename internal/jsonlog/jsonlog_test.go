package jsonlog

import (
	"MatchEngineApi/internal/assert"
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		write    func(l *Logger)
		wantLogs bool
	}{
		{
			name:     "Info At Info",
			minLevel: LevelInfo,
			write:    func(l *Logger) { l.PrintInfo("match simulated", nil) },
			wantLogs: true,
		},
		{
			name:     "Debug Below Info",
			minLevel: LevelInfo,
			write:    func(l *Logger) { l.PrintDebug("minute processed", nil) },
			wantLogs: false,
		},
		{
			name:     "Error At Info",
			minLevel: LevelInfo,
			write:    func(l *Logger) { l.PrintError(errors.New("boom"), nil) },
			wantLogs: true,
		},
		{
			name:     "Off",
			minLevel: LevelOff,
			write:    func(l *Logger) { l.PrintError(errors.New("boom"), nil) },
			wantLogs: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(New(&buf, tt.minLevel))
			assert.Equal(t, buf.Len() > 0, tt.wantLogs)
		})
	}
}

func TestLoggerProperties(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)
	logger.PrintInfo("match stored", map[string]string{"pin": "abc123"})

	var line struct {
		Level      string            `json:"level"`
		Message    string            `json:"message"`
		Properties map[string]string `json:"properties"`
	}
	err := json.Unmarshal(buf.Bytes(), &line)
	assert.NilError(t, err)
	assert.Equal(t, line.Level, "info")
	assert.Equal(t, line.Message, "match stored")
	assert.Equal(t, line.Properties["pin"], "abc123")
}
