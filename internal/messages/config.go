package messages

// Config messages.
const (
	ConfigReadFailedFmt      = "failed to read config %s: %w"
	ConfigInvalidFmt         = "invalid config %s: %w"
	ConfigExpandPathFmt      = "failed to expand config path %s: %w"
	ConfigInvalidLogLevelFmt = "invalid log level %q (supported: trace, debug, info, warn, error, off)"
	ConfigRootNotAbsFmt      = "install root %q must be an absolute path"
	ConfigOpenLogFailedFmt   = "failed to open log file %s: %w"
)
