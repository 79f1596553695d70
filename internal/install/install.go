// Package install applies the HBAI-MON installation to a filesystem.
package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/hboehmecke/hbai-mon/internal/layout"
	"github.com/hboehmecke/hbai-mon/internal/logrotate"
	"github.com/hboehmecke/hbai-mon/internal/messages"
)

// Options controls installer behavior.
type Options struct {
	System System
	Logger hclog.Logger
	Out    io.Writer
	DryRun bool
}

type installer struct {
	layout layout.Layout
	sys    System
	log    hclog.Logger
	out    io.Writer
	unlock func() error
}

type step struct {
	name string
	plan string
	run  func() error
}

// Run applies every install step in order and stops at the first failure.
// Steps that already succeeded are left in place; nothing is rolled back.
func Run(l layout.Layout, opts Options) error {
	if opts.System == nil {
		return fmt.Errorf(messages.InstallSystemRequired)
	}
	if l.ConfigDir == "" {
		return fmt.Errorf(messages.InstallLayoutRequired)
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	inst := &installer{
		layout: l,
		sys:    opts.System,
		log:    logger,
		out:    out,
	}
	defer inst.releaseLock()

	if !l.Staged() && inst.sys.Geteuid() != 0 {
		inst.log.Warn(messages.InstallNotRootWarning, "euid", inst.sys.Geteuid())
	}

	steps := inst.steps()
	if opts.DryRun {
		inst.printPlan(steps)
		return nil
	}
	if err := runSteps(inst.log, steps); err != nil {
		return err
	}
	inst.printComplete()
	return nil
}

func (inst *installer) steps() []step {
	l := inst.layout
	steps := []step{
		{name: "createConfigDir", plan: fmt.Sprintf(messages.InstallPlanMkdirFmt, l.ConfigDir), run: inst.createConfigDir},
		{name: "restrictConfigDir", plan: fmt.Sprintf(messages.InstallPlanChmodDirFmt, layout.ConfigDirMode, l.ConfigDir), run: inst.restrictConfigDir},
	}
	for _, path := range l.Executables {
		steps = append(steps, step{
			name: "markExecutable",
			plan: fmt.Sprintf(messages.InstallPlanChmodExecFmt, path),
			run:  func() error { return inst.markExecutable(path) },
		})
	}
	return append(steps,
		step{name: "restrictCredentials", plan: fmt.Sprintf(messages.InstallPlanCredentialsFmt, layout.CredentialsMode, l.CredentialsPath), run: inst.restrictCredentials},
		step{name: "linkExecutable", plan: fmt.Sprintf(messages.InstallPlanSymlinkFmt, l.SymlinkPath, l.SymlinkTarget), run: inst.linkExecutable},
		step{name: "writeLogrotate", plan: fmt.Sprintf(messages.InstallPlanLogrotateFmt, l.LogrotatePath), run: inst.writeLogrotate},
	)
}

func runSteps(logger hclog.Logger, steps []step) error {
	for _, s := range steps {
		logger.Debug("running step", "step", s.name)
		if err := s.run(); err != nil {
			logger.Error("step failed", "step", s.name, "error", err)
			return err
		}
	}
	return nil
}

// createConfigDir creates the managed directory and locks it for the rest of
// the run so concurrent installs serialize.
func (inst *installer) createConfigDir() error {
	dir := inst.layout.Physical(inst.layout.ConfigDir)
	if err := inst.sys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
	}
	unlock, err := inst.sys.LockDir(dir)
	if err != nil {
		return err
	}
	inst.unlock = unlock
	inst.log.Info("config directory ready", "path", dir)
	return nil
}

func (inst *installer) restrictConfigDir() error {
	dir := inst.layout.Physical(inst.layout.ConfigDir)
	return inst.chmod(dir, layout.ConfigDirMode)
}

// markExecutable adds the execute bits to path and keeps every other bit.
func (inst *installer) markExecutable(logical string) error {
	path := inst.layout.Physical(logical)
	info, err := inst.sys.Stat(path)
	if err != nil {
		return fmt.Errorf(messages.InstallMissingExecutableFmt, path, err)
	}
	keep := info.Mode() & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
	return inst.chmod(path, keep|layout.ExecuteBits)
}

// restrictCredentials tightens the credentials file when it exists. The
// file is optional, so absence is not an error.
func (inst *installer) restrictCredentials() error {
	path := inst.layout.Physical(inst.layout.CredentialsPath)
	info, err := inst.sys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		inst.log.Info("credentials file absent, skipping", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf(messages.InstallStatFailedFmt, path, err)
	}
	if !info.Mode().IsRegular() {
		inst.log.Warn("credentials path is not a regular file, skipping", "path", path, "mode", info.Mode().String())
		return nil
	}
	return inst.chmod(path, layout.CredentialsMode)
}

func (inst *installer) linkExecutable() error {
	link := inst.layout.Physical(inst.layout.SymlinkPath)
	target := inst.layout.SymlinkTarget
	info, err := inst.sys.Lstat(link)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf(messages.InstallSymlinkIsDirFmt, link)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf(messages.InstallStatFailedFmt, link, err)
	}
	if err := inst.sys.ReplaceSymlink(target, link); err != nil {
		return fmt.Errorf(messages.InstallSymlinkFailedFmt, link, target, err)
	}
	inst.log.Info("linked executable", "path", link, "target", target)
	return nil
}

func (inst *installer) writeLogrotate() error {
	data, err := logrotate.DefaultPolicy(inst.layout.AuditLogPath).Render()
	if err != nil {
		return fmt.Errorf(messages.InstallRenderLogrotateFailedFmt, err)
	}
	path := inst.layout.Physical(inst.layout.LogrotatePath)
	if err := inst.sys.WriteFileAtomic(path, data, layout.LogrotateMode); err != nil {
		return fmt.Errorf(messages.InstallWriteLogrotateFailedFmt, path, err)
	}
	inst.log.Info("wrote logrotate policy", "path", path, "bytes", len(data))
	return nil
}

func (inst *installer) chmod(path string, mode os.FileMode) error {
	if err := inst.sys.Chmod(path, mode); err != nil {
		return fmt.Errorf(messages.InstallChmodFailedFmt, path, err)
	}
	inst.log.Info("set mode", "path", path, "mode", fmt.Sprintf("%04o", mode.Perm()))
	return nil
}

func (inst *installer) releaseLock() {
	if inst.unlock == nil {
		return
	}
	if err := inst.unlock(); err != nil {
		inst.log.Warn("failed to release install lock", "error", err)
	}
	inst.unlock = nil
}

func (inst *installer) printPlan(steps []step) {
	_, _ = fmt.Fprintln(inst.out, messages.InstallDryRunHeader)
	for i, s := range steps {
		_, _ = fmt.Fprintf(inst.out, messages.InstallDryRunLineFmt, i+1, s.plan)
	}
}

func (inst *installer) printComplete() {
	_, _ = fmt.Fprintln(inst.out, color.GreenString(messages.InstallCompleteLine, inst.layout.ConfigDir))
	_, _ = fmt.Fprintf(inst.out, messages.InstallNextStepLine+"\n", inst.layout.AuditLogPath)
}
