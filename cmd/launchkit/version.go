package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/launchkit/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of launchkit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "launchkit version %s\n", version.Get().Full())
		},
	}
}
