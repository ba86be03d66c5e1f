package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "thermo.log")

	log, closer, err := New(path, false)
	require.NoError(t, err)
	log.Info().Int("lines", 3).Msg("bulk load complete")
	log.Debug().Msg("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bulk load complete")
	assert.Contains(t, string(data), "lines=3")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_Disabled(t *testing.T) {
	for _, path := range []string{"", Disabled, " - "} {
		log, closer, err := New(path, true)
		require.NoError(t, err)
		log.Info().Msg("dropped")
		assert.NoError(t, closer.Close())
	}
}

func TestNew_UnwritableDirFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := New(filepath.Join(blocker, "thermo.log"), false)
	assert.ErrorContains(t, err, "create log dir")
}

func TestNewLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, true)
	log.Debug().Str("line", "garbage").Msg("rejected line")
	assert.Contains(t, buf.String(), "rejected line")
	assert.Contains(t, buf.String(), "DBG")
}
