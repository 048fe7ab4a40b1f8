package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel(" WARNING ")
	assert.True(t, ok)
	assert.Equal(t, LevelWarn, level)

	level, ok = ParseLevel("")
	assert.True(t, ok)
	assert.Equal(t, LevelInfo, level)

	_, ok = ParseLevel("trace")
	assert.False(t, ok)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{ServiceName: "calc", Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("computed")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "computed", entry["message"])
	assert.Equal(t, "calc", entry["logger"])
	assert.Equal(t, logger.RunID(), entry["run_id"])
	assert.NotEmpty(t, logger.RunID())
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Level:             "debug",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})
	require.NoError(t, err)

	logger.Debug("backend selected")
	require.NoError(t, logger.Sync())

	assert.Contains(t, primary.String(), "backend selected")
	assert.Contains(t, extra.String(), "backend selected")
	assert.Contains(t, primary.String(), "DEBUG")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(LoggerConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(LoggerConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_Err(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{Level: "error", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Err("calculation failed", errors.DivisionByZero(errors.ModuleCalc, "divide", "1"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "CALC_DIVISION_BY_ZERO", entry["code"])
	assert.Equal(t, "calc", entry["module"])
	assert.Equal(t, "divide", entry["operation"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "high", entry["severity"])
	assert.Equal(t, "calculation", entry["category"])
	assert.NotEmpty(t, entry["error_time"])

	stack, ok := entry["error_stack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, stack)
	assert.LessOrEqual(t, len(stack), maxLoggedFrames)
	assert.Contains(t, fmt.Sprint(stack...), "errors.DivisionByZero")
}

func TestLogger_ErrLowSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Err("bad step", errors.InvalidInput(errors.ModuleChain, "parse_step", "modulo", "known operation"))
	logger.Err("plain", io.EOF)
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "low", entry["severity"])
	assert.Equal(t, "validation", entry["category"])
	assert.NotContains(t, entry, "error_stack")

	var plain map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &plain))
	assert.Equal(t, "warn", plain["level"])
	assert.Equal(t, "medium", plain["severity"])
	assert.Equal(t, "UNKNOWN", plain["code"])
	assert.Equal(t, "generic", plain["category"])
	assert.NotContains(t, plain, "error_time")
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("discarded")
	assert.Empty(t, logger.RunID())

	assert.NotNil(t, NewSimpleLogger("calc"))
}
