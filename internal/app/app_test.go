package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationSetsLogLevel(t *testing.T) {
	verbose := NewApplication(Config{Verbose: true})
	assert.NotNil(t, verbose.logger)
	assert.Equal(t, logrus.DebugLevel, verbose.logger.GetLevel())

	quiet := NewApplication(Config{Verbose: false})
	assert.NotNil(t, quiet.logger)
	assert.Equal(t, logrus.InfoLevel, quiet.logger.GetLevel())
}

func TestOpenInputDefaultsToStdin(t *testing.T) {
	app := NewApplication(Config{Input: ""})
	in, err := app.openInput()
	require.NoError(t, err)
	assert.NotNil(t, in)
}

func TestOpenInputOpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.hex")
	require.NoError(t, os.WriteFile(path, []byte("8D4840D6202CC371C32CE0576098\n"), 0644))

	app := NewApplication(Config{Input: path})
	in, err := app.openInput()
	require.NoError(t, err)
	require.NotNil(t, in)
	in.Close()
}

func TestOpenInputTreatsColonAsTCPAddress(t *testing.T) {
	app := NewApplication(Config{Input: "127.0.0.1:1"})
	_, err := app.openInput()
	assert.Error(t, err) // nothing listening; confirms the TCP dial path is taken
}
