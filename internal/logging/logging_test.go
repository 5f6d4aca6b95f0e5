package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "nested", "triviaz.log")

	closer, err := Setup("info", path)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("round", 3).Msg("question served")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "question served", entry["message"])
	assert.Equal(t, float64(3), entry["round"])
	assert.Contains(t, entry, "time")
}

func TestSetup_AppendsAcrossRuns(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "triviaz.log")

	for i := 0; i < 2; i++ {
		closer, err := Setup("debug", path)
		require.NoError(t, err)
		log.Info().Msg("run")
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `"message":"run"`))
}

func TestSetup_BadLevel(t *testing.T) {
	restoreLogger(t)
	_, err := Setup("shouty", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

func TestSetupConsole(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	require.NoError(t, SetupConsole("warn", &buf))
	log.Info().Msg("quiet")
	log.Warn().Msg("falling back")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "falling back")
}
