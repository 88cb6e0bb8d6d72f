package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Debug("Debug message", map[string]interface{}{
		"key1": "value1",
	})

	entry := decode(t, &buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "Debug message", entry["message"])
	assert.Equal(t, "value1", entry["key1"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")

	t.Run("Levels are respected", func(t *testing.T) {
		buf.Reset()
		warnLogger := NewJSONLogger(&buf, WarnLevel)

		warnLogger.Debug("Should not appear", nil)
		warnLogger.Info("Should not appear", nil)
		assert.Equal(t, "", buf.String())

		warnLogger.Warn("Warning message", nil)
		assert.Contains(t, buf.String(), "Warning message")

		buf.Reset()
		warnLogger.Error("Error message", nil)
		assert.Contains(t, buf.String(), "Error message")
	})

	t.Run("WithField", func(t *testing.T) {
		buf.Reset()
		logger.WithField("context", "test").Info("With field", nil)

		entry := decode(t, &buf)
		assert.Equal(t, "test", entry["context"])
		assert.Equal(t, "With field", entry["message"])
	})

	t.Run("WithFields", func(t *testing.T) {
		buf.Reset()
		logger.WithFields(map[string]interface{}{
			"app":     "expense-tracker",
			"version": "1.0.0",
		}).Info("With fields", nil)

		entry := decode(t, &buf)
		assert.Equal(t, "expense-tracker", entry["app"])
		assert.Equal(t, "1.0.0", entry["version"])
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" Warn "))
	assert.Equal(t, ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetDefaultLogger()
	defer SetDefaultLogger(original)

	var buf bytes.Buffer
	SetDefaultLogger(NewJSONLogger(&buf, InfoLevel))
	Info("through default", nil)
	assert.Contains(t, buf.String(), "through default")

	SetDefaultLogger(nil)
	assert.NotNil(t, GetDefaultLogger())
}
