package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf)

	logger.Info().Str("dataset", "old").Int("rows", 3).Msg("Loaded dataset")

	out := buf.String()
	assert.Contains(t, out, `"dataset":"old"`)
	assert.Contains(t, out, `"rows":3`)
	assert.Contains(t, out, "Loaded dataset")
}

func TestSetDefault(t *testing.T) {
	original := *Default()
	t.Cleanup(func() { SetDefault(original) })

	buf := &bytes.Buffer{}
	SetDefault(New(buf))

	Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestTestLogger(t *testing.T) {
	tl := NewTestLogger(t)

	tl.Debug().Str("key", "value").Msg("first")
	tl.Info().Msg("second")

	require.Len(t, tl.Lines(), 2)
	assert.True(t, tl.Contains("first"))
	assert.True(t, tl.ContainsAll("first", "second"))
	assert.False(t, tl.Contains("third"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestNewLoggerFromConfigDiscard(t *testing.T) {
	logger := NewLoggerFromConfig(&Config{Level: "info", Format: "json", Output: "discard"})
	// Must not panic and must respect the level
	logger.Debug().Msg("dropped")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestLinesEmpty(t *testing.T) {
	tl := NewTestLogger(t)
	assert.Empty(t, tl.Lines())
	assert.Equal(t, "", strings.TrimSpace(tl.Output()))
}
