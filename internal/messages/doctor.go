package messages

// Doctor messages for the doctor command.
const (
	DoctorHealthCheckFmt = "Checking HBAI-MON installation under %s...\n"

	DoctorCheckNameDirectory   = "Directory"
	DoctorCheckNameExecutable  = "Executable"
	DoctorCheckNameCredentials = "Credentials"
	DoctorCheckNameSymlink     = "Symlink"
	DoctorCheckNameLogrotate   = "Logrotate"

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-11s %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "

	DoctorInstallRecommend = "Run `hbai-install` as root to repair the installation."

	DoctorMissingFmt       = "Missing: %s"
	DoctorStatFailedFmt    = "Cannot inspect %s: %v"
	DoctorNotDirFmt        = "%s exists but is not a directory"
	DoctorDirModeFmt       = "%s has mode %04o, want %04o"
	DoctorDirOKFmt         = "%s exists with mode %04o"
	DoctorNotRegularFmt    = "%s is not a regular file"
	DoctorNotExecFmt       = "%s is not executable (mode %04o)"
	DoctorExecOKFmt        = "%s is executable"
	DoctorCredsAbsentFmt   = "%s not present"
	DoctorCredsAbsentHint  = "hbai-mon reads its database, AI and SSH settings from this file at runtime; create it and re-run the installer to restrict it."
	DoctorCredsModeFmt     = "%s has mode %04o, want %04o"
	DoctorCredsOKFmt       = "%s restricted to %04o"
	DoctorNotSymlinkFmt    = "%s is not a symlink"
	DoctorSymlinkWrongFmt  = "%s points to %s, want %s"
	DoctorSymlinkOKFmt     = "%s -> %s"
	DoctorLogrotateDiffFmt = "%s differs from the expected policy"
	DoctorLogrotateOKFmt   = "%s matches the expected policy"

	DoctorSuccessSummary = "All checks passed."
	DoctorFailureSummary = "Some checks failed."
	DoctorFailureError   = "doctor checks failed"

	DoctorDiffTruncatedFmt = "... (truncated to %d lines)"
)
