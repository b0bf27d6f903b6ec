package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "", want: zerolog.InfoLevel},
		{raw: "debug", want: zerolog.DebugLevel},
		{raw: " WARN ", want: zerolog.WarnLevel},
		{raw: "error", want: zerolog.ErrorLevel},
		{raw: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestNewWritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Output: &buf, Component: "calendar"})

	logger.Warn().Str(FieldSessionType, "BOGUS").Msg("session record skipped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "scdc", entry[FieldService])
	assert.Equal(t, "calendar", entry[FieldComponent])
	assert.Equal(t, "BOGUS", entry[FieldSessionType])
	assert.Equal(t, "session record skipped", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	child := WithComponent(logger, "store")
	child.Error().Msg("shown")
	assert.Contains(t, buf.String(), `"component":"store"`)
}
