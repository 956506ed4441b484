package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/internal/config"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a dashboard configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("a configuration path is required")
			}

			cfg, err := config.ParseConfig(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d panels, theme %q)\n", path, len(cfg.Panels), cfg.Theme)
			return nil
		},
	}

	return cmd
}
