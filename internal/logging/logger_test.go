package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input       string
		expected    LogLevel
		expectError bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, nil, "warn message")
	logger.Error(ctx, errors.New("boom"), "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "boom")
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("loader").
		With("dir", "src/locales").
		Info(context.Background(), "loaded", "files", 2)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))

	assert.Equal(t, "loaded", record["msg"])
	assert.Equal(t, "loader", record["component"])
	assert.Equal(t, "src/locales", record["dir"])
	assert.Equal(t, float64(2), record["files"])
}

func TestWithDoesNotMutateParent(t *testing.T) {
	parent := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &bytes.Buffer{}})
	child := parent.With("file", "en.json").(*SlogLogger)

	assert.Empty(t, parent.fields)
	assert.Equal(t, "en.json", child.fields["file"])
}

func TestOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})
	ctx := context.Background()

	op := StartOperation(logger, "validate")
	op.End(ctx, "files", 3)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "operation=validate")
	assert.Contains(t, buf.String(), "duration_ms=")

	buf.Reset()
	StartOperation(logger, "validate").EndWithError(ctx, errors.New("missing keys"))
	assert.Contains(t, buf.String(), "Operation failed")
	assert.Contains(t, buf.String(), "missing keys")
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		l.Debug(ctx, "x")
		l.With("a", 1).WithComponent("c").Error(ctx, errors.New("e"), "y")
	})
}
