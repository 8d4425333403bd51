package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/liftoff/internal/logtail"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"":        logrus.InfoLevel,
		"INFO":    logrus.InfoLevel,
		" debug ": logrus.DebugLevel,
		"warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, "ParseLevel(%q)", in)
		assert.Equal(t, want, got, "ParseLevel(%q)", in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewFile_WritesEntriesLogtailCanRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "liftoff.log")

	logger, closer, err := NewFile(path, "info")
	require.NoError(t, err)
	logger.WithField("binding", "launches").Error("query failed")
	logger.Debug("filtered out")
	require.NoError(t, closer.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	entries, err := logtail.Read(path, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, "query failed", entries[0].Message)
	assert.Equal(t, "launches", entries[0].Fields["binding"])
}

func TestNewFile_BadLevel(t *testing.T) {
	_, _, err := NewFile(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsole(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
