package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestParseValid(t *testing.T) {
	cfg, err := Parse([]byte("[install]\nroot = \"/srv/stage\"\n\n[log]\nlevel = \"debug\"\npath = \"/var/log/hbai-install.log\"\n"), "test")
	require.NoError(t, err)
	assert.Equal(t, "/srv/stage", cfg.Install.Root)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/hbai-install.log", cfg.Log.Path)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[install]\nprefix = \"/x\"\n"), "test.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config test.toml")
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse([]byte("[log]\nlevel = \"loud\"\n"), "test.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)

	_, err = Parse([]byte("[install]\nroot = \"relative/dir\"\n"), "test.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an absolute path")
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("[install\n"), "broken.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.toml")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	require.NoError(t, os.WriteFile(filepath.Join(home, "install.toml"), []byte("[log]\nlevel = \"warn\"\n"), 0o600))

	cfg, err := Load("~/install.toml")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestResolvePrecedence(t *testing.T) {
	file := &Config{
		Install: InstallConfig{Root: "/from/file"},
		Log:     LogConfig{Level: "error", Path: "/file.log"},
	}

	got, err := Resolve(file, Overrides{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Settings{Root: "/from/file", LogLevel: "error", LogPath: "/file.log"}, got)

	got, err = Resolve(file, Overrides{}, envMap(map[string]string{EnvLogLevel: "WARN", EnvLogPath: "/env.log"}))
	require.NoError(t, err)
	assert.Equal(t, "warn", got.LogLevel)
	assert.Equal(t, "/env.log", got.LogPath)

	got, err = Resolve(file, Overrides{Root: "/from/flag", LogLevel: "trace"}, envMap(map[string]string{EnvLogLevel: "warn"}))
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", got.Root)
	assert.Equal(t, "trace", got.LogLevel)
}

func TestResolveDefaults(t *testing.T) {
	got, err := Resolve(nil, Overrides{}, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Settings{LogLevel: DefaultLogLevel}, got)
}

func TestResolveRejectsInvalidFlags(t *testing.T) {
	_, err := Resolve(nil, Overrides{LogLevel: "chatty"}, nil)
	require.Error(t, err)

	_, err = Resolve(nil, Overrides{Root: "stage"}, nil)
	require.Error(t, err)
}
