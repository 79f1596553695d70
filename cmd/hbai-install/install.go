package main

import (
	"github.com/spf13/cobra"

	"github.com/hboehmecke/hbai-mon/internal/install"
	"github.com/hboehmecke/hbai-mon/internal/layout"
	"github.com/hboehmecke/hbai-mon/internal/messages"
)

func newInstallCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, messages.FlagDryRun)
	return cmd
}

func runInstall(cmd *cobra.Command, opts *globalOptions) error {
	settings, err := opts.settings()
	if err != nil {
		return err
	}
	logger, closeLog, err := configureLogger(settings, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	return install.Run(layout.Default(settings.Root), install.Options{
		System: newSystem(),
		Logger: logger,
		Out:    cmd.OutOrStdout(),
		DryRun: opts.dryRun,
	})
}
