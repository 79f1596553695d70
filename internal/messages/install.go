package messages

// Installer messages.
const (
	// InstallSystemRequired indicates the filesystem abstraction was not provided.
	InstallSystemRequired = "install system is required"
	// InstallLayoutRequired indicates an empty managed directory in the layout.
	InstallLayoutRequired = "install layout is required"

	InstallCreateDirFailedFmt       = "failed to create directory %s: %w"
	InstallChmodFailedFmt           = "failed to chmod %s: %w"
	InstallStatFailedFmt            = "failed to stat %s: %w"
	InstallMissingExecutableFmt     = "cannot mark %s executable: %w"
	InstallSymlinkFailedFmt         = "failed to link %s -> %s: %w"
	InstallSymlinkIsDirFmt          = "cannot replace %s with a symlink: it is a directory"
	InstallWriteLogrotateFailedFmt  = "failed to write logrotate policy %s: %w"
	InstallRenderLogrotateFailedFmt = "failed to render logrotate policy: %w"
	InstallLockFailedFmt            = "failed to lock %s: %w"
	InstallLockTimeoutFmt           = "timed out after %s waiting for another install to finish"

	InstallCompleteLine = "✓ HBAI-MON installed to %s"
	InstallNextStepLine = "Run 'hbai-mon' to start monitoring (audit log: %s)"

	InstallDryRunHeader  = "Dry run, no changes will be made:"
	InstallDryRunLineFmt = "  %d. %s\n"

	InstallPlanMkdirFmt       = "create directory %s"
	InstallPlanChmodDirFmt    = "set mode %04o on %s"
	InstallPlanChmodExecFmt   = "add execute permission to %s"
	InstallPlanCredentialsFmt = "set mode %04o on %s if it exists"
	InstallPlanSymlinkFmt     = "link %s -> %s"
	InstallPlanLogrotateFmt   = "write logrotate policy %s"

	InstallNotRootWarning = "not running as root; writes under /etc and /usr/local/bin will likely fail"

	// LogrotateInvalidFmt wraps policy validation failures.
	LogrotateInvalidFmt          = "invalid logrotate policy: %s"
	LogrotateLogPathRequired     = "log path is required"
	LogrotateRotateInvalidFmt    = "rotate count must be positive, got %d"
	LogrotateFrequencyInvalidFmt = "unknown frequency %q"
	LogrotateCreateOwnerRequired = "create owner and group are required"

	// FsutilCreateTempFmt formats temp file creation failures.
	FsutilCreateTempFmt = "create temp file for %s: %w"
	FsutilWriteTempFmt  = "write temp file for %s: %w"
	FsutilSyncTempFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFmt  = "close temp file for %s: %w"
	FsutilChmodTempFmt  = "chmod temp file for %s: %w"
	FsutilRenameFmt     = "rename %s to %s: %w"
	FsutilSymlinkFmt    = "create symlink %s: %w"
)
