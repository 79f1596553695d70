// Package config loads installer settings from an optional TOML file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hboehmecke/hbai-mon/internal/messages"
)

// Environment variables read by the installer.
const (
	EnvLogLevel = "HBAI_INSTALL_LOG_LEVEL"
	EnvLogPath  = "HBAI_INSTALL_LOG_PATH"
)

// DefaultLogLevel is used when no source sets a level.
const DefaultLogLevel = "warn"

// Config is the on-disk TOML config.
type Config struct {
	Install InstallConfig `toml:"install"`
	Log     LogConfig     `toml:"log"`
}

// InstallConfig selects where the install is written.
type InstallConfig struct {
	Root string `toml:"root"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Overrides carries flag values; empty fields mean "not set".
type Overrides struct {
	Root     string
	LogLevel string
}

// Settings is the effective configuration after precedence is applied.
type Settings struct {
	Root     string
	LogLevel string
	LogPath  string
}

// Validate checks field values. source is used in error messages.
func (c Config) Validate(source string) error {
	if err := validateLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := validateRoot(c.Install.Root); err != nil {
		return fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	return nil
}

// Resolve merges flags, environment and file config: flag > env > file > default.
// cfg may be nil when no config file was given.
func Resolve(cfg *Config, flags Overrides, lookupEnv func(string) (string, bool)) (Settings, error) {
	var file Config
	if cfg != nil {
		file = *cfg
	}
	env := func(key string) string {
		if lookupEnv == nil {
			return ""
		}
		value, _ := lookupEnv(key)
		return strings.TrimSpace(value)
	}

	settings := Settings{
		Root:     firstNonEmpty(flags.Root, file.Install.Root),
		LogLevel: strings.ToLower(firstNonEmpty(flags.LogLevel, env(EnvLogLevel), file.Log.Level, DefaultLogLevel)),
		LogPath:  firstNonEmpty(env(EnvLogPath), file.Log.Path),
	}
	if err := validateLogLevel(settings.LogLevel); err != nil {
		return Settings{}, err
	}
	if err := validateRoot(settings.Root); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func validateLogLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "error", "off":
		return nil
	default:
		return fmt.Errorf(messages.ConfigInvalidLogLevelFmt, level)
	}
}

func validateRoot(root string) error {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return nil
	}
	return fmt.Errorf(messages.ConfigRootNotAbsFmt, root)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
