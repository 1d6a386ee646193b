package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openskynetwork/go-modes/internal/app"
)

// TestHexModeDecodesFileToLog exercises the CLI end to end in hex mode
// against a small frames file, confirming it runs to completion without
// error on a well-formed input.
func TestHexModeDecodesFileToLog(t *testing.T) {
	dir := t.TempDir()
	framesPath := filepath.Join(dir, "frames.hex")
	require.NoError(t, os.WriteFile(framesPath, []byte(
		"8D4840D6202CC371C32CE0576098\n# a comment line\n\n"), 0644))

	config := app.Config{
		InputMode: app.InputHex,
		Input:     framesPath,
		LogDir:    filepath.Join(dir, "logs"),
	}

	application := app.NewApplication(config)
	require.NoError(t, application.Start())
}

func TestBeastModeRejectsMissingFile(t *testing.T) {
	config := app.Config{
		InputMode: app.InputBeast,
		Input:     "/nonexistent/path/does-not-exist",
		LogDir:    t.TempDir(),
	}

	application := app.NewApplication(config)
	assert.Error(t, application.Start())
}
