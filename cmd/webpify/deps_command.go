package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpify/internal/config"
	"webpify/internal/deps"
)

func newDepsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of required external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(flagValue(configFlag))
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Encoder.Binary))
			rows := make([][]string, 0, len(statuses))
			missing := false
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					missing = true
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Command", "Status", "Detail"}, rows))
			if missing {
				return fmt.Errorf("missing required binaries")
			}
			return nil
		},
	}
}
