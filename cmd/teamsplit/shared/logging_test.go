package shared

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantDbg bool
	}{
		{name: "info", debug: false, wantDbg: false},
		{name: "debug", debug: true, wantDbg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupStructuredLogger(&buf, tt.debug)

			logger.Debug().Msg("hidden unless debug")
			logger.Info().Int64("user_id", 7).Msg("visible")

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			if tt.wantDbg {
				require.Len(t, lines, 2)
			} else {
				require.Len(t, lines, 1)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
			assert.Equal(t, "visible", entry["message"])
			assert.Equal(t, float64(7), entry["user_id"])
			assert.Contains(t, entry, "time")
		})
	}
}

func TestConsoleLoggerLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, zerolog.InfoLevel, SetupLogger(&buf, false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetupLogger(&buf, true).GetLevel())
}
