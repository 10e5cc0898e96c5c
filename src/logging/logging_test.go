package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("window command failed", "op", "minimize")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "window command failed", entry["msg"])
	assert.Equal(t, "minimize", entry["op"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text", Output: &buf})

	log.Warn("stale query discarded", "seq", 3)

	out := buf.String()
	assert.Contains(t, out, "stale query discarded")
	assert.Contains(t, out, "seq=3")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text", Output: &buf})

	log.Debug("hidden")
	log.Info("also hidden")
	log.Error("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "bogus", Format: "text", Output: &buf})

	log.Debug("filtered")
	log.Info("kept")

	assert.False(t, strings.Contains(buf.String(), "filtered"))
	assert.True(t, strings.Contains(buf.String(), "kept"))
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text", Output: &buf}).With("component", "chrome")

	log.Info("ok")

	assert.Contains(t, buf.String(), "component=chrome")
}

func TestNewNopDiscards(t *testing.T) {
	log := NewNop()
	// Must not panic and must not write anywhere observable.
	log.Error("dropped", "key", "value")
}
