package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers_DiscardByDefault(t *testing.T) {
	// Must not panic or write anywhere before Setup.
	Debugf("hello %s", "world")
	WithField("k", "v").Warn("ignored")
}

func TestUseWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, Options{Level: "warn"})
	t.Cleanup(func() { logger = newDiscard() })

	Debugf("quiet")
	Warnf("loud %d", 1)

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud 1")
}

func TestUseWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, Options{Level: "debug", JSON: true})
	t.Cleanup(func() { logger = newDiscard() })

	WithField("station", "lofi").Debug("tuned")

	assert.Contains(t, buf.String(), `"station":"lofi"`)
	assert.Contains(t, buf.String(), `"msg":"tuned"`)
}

func TestSetup_EmptyFileDisables(t *testing.T) {
	closeFn, err := Setup(Options{})
	require.NoError(t, err)
	assert.NoError(t, closeFn())
}

func TestSetup_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "radio.log")

	closeFn, err := Setup(Options{File: path, Level: "info"})
	require.NoError(t, err)
	Warnf("written")
	require.NoError(t, closeFn())

	assert.FileExists(t, path)
}
