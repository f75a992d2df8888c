package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/topfive/internal/portal/app"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive screens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			application, err := app.New(*cfg)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}
