package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hboehmecke/hbai-mon/internal/config"
	"github.com/hboehmecke/hbai-mon/internal/install"
	"github.com/hboehmecke/hbai-mon/internal/messages"
)

var lookupEnv = os.LookupEnv
var newSystem = func() install.System { return install.RealSystem{} }

// globalOptions holds flags shared by every command.
type globalOptions struct {
	root       string
	configPath string
	logLevel   string
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.root, "root", "", messages.FlagRoot)
	flags.StringVar(&opts.configPath, "config", "", messages.FlagConfig)
	flags.StringVar(&opts.logLevel, "log-level", "", messages.FlagLogLevel)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, messages.FlagDryRun)

	cmd.AddCommand(
		newInstallCmd(opts),
		newDoctorCmd(opts),
		newPrintLogrotateCmd(),
	)
	return cmd
}

// settings loads the optional config file and applies flag and env overrides.
func (o *globalOptions) settings() (config.Settings, error) {
	var cfg *config.Config
	if strings.TrimSpace(o.configPath) != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Settings{}, err
		}
		cfg = loaded
	}
	return config.Resolve(cfg, config.Overrides{Root: o.root, LogLevel: o.logLevel}, lookupEnv)
}
