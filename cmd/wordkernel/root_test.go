package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-word-kernel/config"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Go Word Kernel v"+version+"\n", out.String())
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = -1\n"), 0o600))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"serve", "--config", path})
	assert.Error(t, cmd.Execute())

	cmd = newRootCommand()
	cmd.SetArgs([]string{"serve", "--config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, cmd.Execute())
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	entry, err := newLogger(&cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, entry.Logger.Formatter)

	cfg.LogLevel = "loud"
	_, err = newLogger(&cfg)
	assert.Error(t, err)
}
