package main

import (
	"github.com/spf13/cobra"

	"github.com/reglet-dev/launchkit/internal/infrastructure/config"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema YAML manifests are validated against",
		Long: `Print the JSON Schema used to validate YAML manifests. Point an editor's
YAML language server at it for completion and inline errors.

Examples:
  launchkit schema > manifest.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(config.ManifestSchema())
			return err
		},
	}
}
