package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewSplitsByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := New(slog.LevelInfo, &out, &errOut)

	logger.Debug("hidden")
	logger.Info("updated", "file", "a.js")
	logger.Warn("collision")
	logger.Error("boom")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "file=a.js")
	assert.Contains(t, out.String(), "collision")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "boom")
	assert.NotContains(t, errOut.String(), "updated")
}

func TestNewWithAttrsKeepsSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := New(slog.LevelInfo, &out, &errOut).With("cmd", "routes")

	logger.Info("ok")
	logger.Error("bad")

	assert.Contains(t, out.String(), "cmd=routes")
	assert.Contains(t, errOut.String(), "cmd=routes")
}

func TestSetupWithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "run.log")
	var out, errOut bytes.Buffer

	logger, closers, err := setup("debug", file, &out, &errOut)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("scanned", "files", 3)
	logger.Error("write failed", "path", "docs/api_all.yml")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	assert.Contains(t, out.String(), "files=3")
	assert.NotContains(t, out.String(), "write failed")
	assert.Contains(t, errOut.String(), "write failed")
	assert.NotContains(t, errOut.String(), "files=3")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "files=3")
	assert.Contains(t, string(data), "write failed")
}

func TestSetupBadFile(t *testing.T) {
	_, _, err := Setup("info", filepath.Join(t.TempDir(), "missing", "run.log"))
	assert.Error(t, err)
}
