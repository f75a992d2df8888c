package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/topfive/internal/portal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "topfive %s\n", app.BuildVersion)
			return err
		},
	}
}
