package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json")

	l.Debug().Msg("hidden")
	l.Info().Str("business_id", "b1").Int("score", 80).Msg("assessment generated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "assessment generated", entry["message"])
	assert.Equal(t, "b1", entry["business_id"])
	assert.Equal(t, float64(80), entry["score"])
}

func TestConsoleLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "WARN", "console")

	l.Info().Msg("quiet")
	assert.Zero(t, buf.Len())
	l.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}
