package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/launchkit/internal/infrastructure/container"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	Out       io.Writer
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Settings bound in viper (flags, LAUNCHKIT_* variables) override the
// system config file.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		c, err := container.New(container.Options{
			SystemConfigPath:  viper.ConfigFileUsed(),
			ApplicationsDir:   viper.GetString("install.applications_dir"),
			PermissionMode:    viper.GetString("install.permission_mode"),
			StrictPermissions: viper.GetBool("install.strict_permissions"),
			Logger:            logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
			Out:       cmd.OutOrStdout(),
		}, cmd, args)
	}
}
