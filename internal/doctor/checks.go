package doctor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hboehmecke/hbai-mon/internal/layout"
	"github.com/hboehmecke/hbai-mon/internal/logrotate"
	"github.com/hboehmecke/hbai-mon/internal/messages"
)

var (
	osStat     = os.Stat
	osLstat    = os.Lstat
	osReadlink = os.Readlink
	osReadFile = os.ReadFile
)

// CheckAll runs every check in install order.
func CheckAll(l layout.Layout) []Result {
	var results []Result
	results = append(results, CheckDirectory(l))
	results = append(results, CheckExecutables(l)...)
	results = append(results, CheckCredentials(l))
	results = append(results, CheckSymlink(l))
	results = append(results, CheckLogrotate(l))
	return results
}

// CheckDirectory verifies the managed directory exists with mode 0700.
func CheckDirectory(l layout.Layout) Result {
	path := l.Physical(l.ConfigDir)
	info, err := osStat(path)
	if err != nil {
		return statFailure(messages.DoctorCheckNameDirectory, path, err)
	}
	if !info.IsDir() {
		return fail(messages.DoctorCheckNameDirectory, fmt.Sprintf(messages.DoctorNotDirFmt, path))
	}
	if info.Mode().Perm() != layout.ConfigDirMode {
		return fail(messages.DoctorCheckNameDirectory, fmt.Sprintf(messages.DoctorDirModeFmt, path, info.Mode().Perm(), layout.ConfigDirMode))
	}
	return ok(messages.DoctorCheckNameDirectory, fmt.Sprintf(messages.DoctorDirOKFmt, path, info.Mode().Perm()))
}

// CheckExecutables verifies each monitor script is a regular file with every
// execute bit set.
func CheckExecutables(l layout.Layout) []Result {
	results := make([]Result, 0, len(l.Executables))
	for _, logical := range l.Executables {
		path := l.Physical(logical)
		info, err := osStat(path)
		switch {
		case err != nil:
			results = append(results, statFailure(messages.DoctorCheckNameExecutable, path, err))
		case !info.Mode().IsRegular():
			results = append(results, fail(messages.DoctorCheckNameExecutable, fmt.Sprintf(messages.DoctorNotRegularFmt, path)))
		case info.Mode().Perm()&layout.ExecuteBits != layout.ExecuteBits:
			results = append(results, fail(messages.DoctorCheckNameExecutable, fmt.Sprintf(messages.DoctorNotExecFmt, path, info.Mode().Perm())))
		default:
			results = append(results, ok(messages.DoctorCheckNameExecutable, fmt.Sprintf(messages.DoctorExecOKFmt, path)))
		}
	}
	return results
}

// CheckCredentials warns when the credentials file is absent and fails when it
// is readable by anyone but its owner.
func CheckCredentials(l layout.Layout) Result {
	path := l.Physical(l.CredentialsPath)
	info, err := osStat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCredentials,
			Message:        fmt.Sprintf(messages.DoctorCredsAbsentFmt, path),
			Recommendation: messages.DoctorCredsAbsentHint,
		}
	}
	if err != nil {
		return statFailure(messages.DoctorCheckNameCredentials, path, err)
	}
	if info.Mode().Perm() != layout.CredentialsMode {
		return fail(messages.DoctorCheckNameCredentials, fmt.Sprintf(messages.DoctorCredsModeFmt, path, info.Mode().Perm(), layout.CredentialsMode))
	}
	return ok(messages.DoctorCheckNameCredentials, fmt.Sprintf(messages.DoctorCredsOKFmt, path, info.Mode().Perm()))
}

// CheckSymlink verifies the PATH entry is a symlink to the main executable.
func CheckSymlink(l layout.Layout) Result {
	path := l.Physical(l.SymlinkPath)
	info, err := osLstat(path)
	if err != nil {
		return statFailure(messages.DoctorCheckNameSymlink, path, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return fail(messages.DoctorCheckNameSymlink, fmt.Sprintf(messages.DoctorNotSymlinkFmt, path))
	}
	target, err := osReadlink(path)
	if err != nil {
		return statFailure(messages.DoctorCheckNameSymlink, path, err)
	}
	if target != l.SymlinkTarget {
		return fail(messages.DoctorCheckNameSymlink, fmt.Sprintf(messages.DoctorSymlinkWrongFmt, path, target, l.SymlinkTarget))
	}
	return ok(messages.DoctorCheckNameSymlink, fmt.Sprintf(messages.DoctorSymlinkOKFmt, path, target))
}

// CheckLogrotate compares the installed policy byte for byte with the one the
// installer writes; on drift the recommendation carries a unified diff.
func CheckLogrotate(l layout.Layout) Result {
	path := l.Physical(l.LogrotatePath)
	want, err := logrotate.DefaultPolicy(l.AuditLogPath).Render()
	if err != nil {
		return fail(messages.DoctorCheckNameLogrotate, err.Error())
	}
	got, err := osReadFile(path)
	if err != nil {
		return statFailure(messages.DoctorCheckNameLogrotate, path, err)
	}
	if !bytes.Equal(got, want) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameLogrotate,
			Message:        fmt.Sprintf(messages.DoctorLogrotateDiffFmt, path),
			Recommendation: renderDiff(l.LogrotatePath, string(got), string(want), DefaultDiffMaxLines) + messages.DoctorInstallRecommend,
		}
	}
	return ok(messages.DoctorCheckNameLogrotate, fmt.Sprintf(messages.DoctorLogrotateOKFmt, path))
}

func statFailure(check string, path string, err error) Result {
	msg := fmt.Sprintf(messages.DoctorStatFailedFmt, path, err)
	if errors.Is(err, fs.ErrNotExist) {
		msg = fmt.Sprintf(messages.DoctorMissingFmt, path)
	}
	return fail(check, msg)
}

func fail(check string, msg string) Result {
	return Result{
		Status:         StatusFail,
		CheckName:      check,
		Message:        msg,
		Recommendation: messages.DoctorInstallRecommend,
	}
}

func ok(check string, msg string) Result {
	return Result{Status: StatusOK, CheckName: check, Message: msg}
}
