package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/italia/internal/errors"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{" warn ", LevelWarn},
		{"error", LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.CodeOf(err))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, nil, "warn message")
	logger.Error(ctx, nil, "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf}).
		WithComponent("server").
		With("addr", ":8080")

	err := errors.NewValidationError(errors.ErrCodeInvalidProps, "label is required")
	logger.Error(context.Background(), err, "render failed", "component_name", "button", "dangling")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "render failed", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "server", record["component"])
	assert.Equal(t, ":8080", record["addr"])
	assert.Equal(t, "button", record["component_name"])
	assert.Equal(t, errors.ErrCodeInvalidProps, record["code"])
	assert.Contains(t, record["error"], "label is required")
	assert.NotContains(t, record, "dangling")
}

func TestWithDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})
	_ = base.With("request", "a")

	base.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "request=a")
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error(context.Background(), nil, "dropped")
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})

	StartOperation(logger, "render").End(context.Background(), nil)
	StartOperation(logger, "audit").End(context.Background(), errors.NewInternalError("ERR_X", "boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "operation=render")
	assert.Contains(t, lines[0], "Operation completed")
	assert.Contains(t, lines[1], "operation=audit")
	assert.Contains(t, lines[1], "level=ERROR")
}
