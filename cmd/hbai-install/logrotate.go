package main

import (
	"github.com/spf13/cobra"

	"github.com/hboehmecke/hbai-mon/internal/layout"
	"github.com/hboehmecke/hbai-mon/internal/logrotate"
	"github.com/hboehmecke/hbai-mon/internal/messages"
)

func newPrintLogrotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.PrintLogrotateUse,
		Short: messages.PrintLogrotateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := logrotate.DefaultPolicy(layout.Default("").AuditLogPath).Render()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
