package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse   = "hbai-install"
	RootShort = "Install HBAI-MON into /etc/hbai-mon"
	RootLong  = "Install HBAI-MON: secure /etc/hbai-mon, mark the monitor scripts executable,\nlink hbai-mon onto PATH and register the audit log with logrotate.\n\nRunning without a subcommand performs the install."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install or repair HBAI-MON (idempotent)"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Verify an existing HBAI-MON installation"

	// PrintLogrotateUse is the print-logrotate command name.
	PrintLogrotateUse   = "print-logrotate"
	PrintLogrotateShort = "Print the logrotate policy the installer writes"

	FlagRoot     = "Staging root prefixed to every path that is written (for packaging and tests)"
	FlagConfig   = "Path to an optional TOML config file"
	FlagDryRun   = "Print the planned steps without changing anything"
	FlagLogLevel = "Log level (trace, debug, info, warn, error, off)"
)
