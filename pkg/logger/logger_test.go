package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("employee id=%s created", "e1")
	log.Warn("slot %s occupied", "09:00")
	log.Error("failed: %v", assert.AnError)

	out := buf.String()
	assert.NotContains(t, out, "employee id=e1 created")
	assert.Contains(t, out, "slot 09:00 occupied")
	assert.Contains(t, out, "level=ERROR")
	require.NoError(t, log.Close())
}
