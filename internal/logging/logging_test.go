package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/octane-zsr/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))

		out = append(out, entry)
	}

	return out
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   logging.Level
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestAdapter_WritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	adapter := logging.NewZerologAdapter(logger)

	adapter.Debug("API Request", map[string]interface{}{"method": "GET", "url": "https://zsr.octane.gg/events"})
	adapter.Error("API Response Error", map[string]interface{}{"status_code": 500})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "API Request", entries[0]["message"])
	assert.Equal(t, "GET", entries[0]["method"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.InDelta(t, 500, entries[1]["status_code"], 0)
}

func TestAdapter_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := logging.NewZerologAdapter(logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf}))

	adapter.Debug("hidden", nil)
	adapter.Info("hidden", nil)
	adapter.Warn("shown", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestLeveledLogger_Pairs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	leveled := logging.LeveledLogger{
		Logger: logging.NewZerologAdapter(logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})),
	}

	leveled.Warn("retrying", "attempt", 2, "url", "https://zsr.octane.gg/games", "dangling")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "retrying", entries[0]["message"])
	assert.InDelta(t, 2, entries[0]["attempt"], 0)
	assert.Equal(t, "https://zsr.octane.gg/games", entries[0]["url"])
	assert.Equal(t, "dangling", entries[0]["extra"])
}
