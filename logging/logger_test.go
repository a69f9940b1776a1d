package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStructuredOutput will test that log events reach a structured writer with the
// sub-logger's context attached.
func TestStructuredOutput(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger(zerolog.InfoLevel, false, &buffer)
	subLogger := logger.NewSubLogger("module", "roundtrip")

	subLogger.Info("processing ", 3, " documents")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "roundtrip", entry["module"])
	assert.Equal(t, "processing 3 documents", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

// TestErrorChaining will test that errors passed as log arguments are chained onto
// the event rather than flattened into the message.
func TestErrorChaining(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger(zerolog.InfoLevel, false, &buffer)

	logger.Error("decode failed", errors.New("unexpected token"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "decode failed", entry["message"])
	assert.Equal(t, "unexpected token", entry["error"])
}

// TestLevelFiltering will test that events below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger(zerolog.WarnLevel, false, &buffer)

	logger.Info("should be dropped")
	assert.Empty(t, buffer.Bytes())

	logger.SetLevel(zerolog.DebugLevel)
	logger.Debug("now visible")
	assert.NotEmpty(t, buffer.Bytes())
}
