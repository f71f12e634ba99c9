package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel(slog.LevelInfo)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelDisabled)

	Error("❌ should not appear")
	assert.Empty(t, buf.String())

	SetLevel(slog.LevelDebug)
	Debug("📋 visible", "key", "value")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "key=value")
}
