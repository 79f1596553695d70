package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/hboehmecke/hbai-mon/internal/config"
	"github.com/hboehmecke/hbai-mon/internal/messages"
)

// configureLogger returns a logger writing to settings.LogPath when set and
// to stderr otherwise. The returned func closes the log file, if any.
func configureLogger(settings config.Settings, stderr io.Writer) (hclog.Logger, func() error, error) {
	output := stderr
	closer := func() error { return nil }

	if settings.LogPath != "" {
		f, err := os.OpenFile(settings.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf(messages.ConfigOpenLogFailedFmt, settings.LogPath, err)
		}
		output = f
		closer = f.Close
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   messages.RootUse,
		Level:  hclog.LevelFromString(settings.LogLevel),
		Output: output,
	})
	return logger, closer, nil
}
