package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "assetcreator.log")

	closer, err := Setup(path, log.DebugLevel)
	require.NoError(t, err)
	log.Debug("hello from the test")
	require.NoError(t, closer.Close())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
	assert.Contains(t, string(data), "level=debug")
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	closer, err := Setup("", log.InfoLevel)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}
