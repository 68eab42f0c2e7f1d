package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/reglet-dev/launchkit/internal/application/errors"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// InstallOptions holds options for the install command.
type InstallOptions struct {
	overwrite bool
	noPrompt  bool
}

func newInstallCmd() *cobra.Command {
	opts := &InstallOptions{}

	cmd := &cobra.Command{
		Use:   "install <manifest>",
		Short: "Install a launcher into the applications directory",
		Long: `Build the launcher described by a manifest, write it to
~/.local/share/applications/<file_name>.desktop and make it executable.

An existing launcher is only replaced with --overwrite, or after
confirming a prompt when run in a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, args []string) error {
			return runInstall(cc, opts, args[0])
		}),
	}

	cmd.Flags().BoolVarP(&opts.overwrite, "overwrite", "f", false, "Replace an existing launcher")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Never ask before replacing a launcher")

	return cmd
}

func runInstall(cc *CommandContext, opts *InstallOptions, manifestPath string) error {
	entry, err := cc.Container.ManifestService().Load(manifestPath)
	if err != nil {
		return err
	}

	result, err := cc.Container.InstallService().Install(cc.Context, entry, opts.overwrite)
	var exists *apperrors.AlreadyExistsError
	if errors.As(err, &exists) {
		prompter := cc.Container.Prompter()
		if opts.noPrompt || !prompter.IsInteractive() {
			return prompter.FormatNonInteractiveError(err)
		}
		replace, promptErr := prompter.ConfirmOverwrite(exists.Path)
		if promptErr != nil {
			return promptErr
		}
		if !replace {
			fmt.Fprintf(cc.Out, "Kept %s\n", exists.Path)
			return nil
		}
		result, err = cc.Container.InstallService().Install(cc.Context, entry, true)
	}
	if err != nil {
		return err
	}

	verb := "Installed"
	if result.Overwritten {
		verb = "Replaced"
	}
	fmt.Fprintf(cc.Out, "%s %s (%d bytes)\n", verb, result.Path, result.BytesWritten)
	for _, w := range result.Warnings {
		fmt.Fprintf(cc.Out, "warning: %s\n", w)
	}
	return nil
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <file-name>",
		Short: "Remove an installed launcher",
		Args:  cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, args []string) error {
			fileName, err := values.NewFileName(args[0])
			if err != nil {
				return err
			}

			path, err := cc.Container.InstallService().Uninstall(cc.Context, fileName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "Removed %s\n", path)
			return nil
		}),
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <file-name>",
		Short: "Show whether a launcher is installed",
		Args:  cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, args []string) error {
			fileName, err := values.NewFileName(args[0])
			if err != nil {
				return err
			}

			status, err := cc.Container.InstallService().Status(cc.Context, fileName)
			if err != nil {
				return err
			}

			switch {
			case !status.Installed:
				fmt.Fprintf(cc.Out, "%s: not installed (%s)\n", fileName, status.Path)
			case !status.Executable:
				fmt.Fprintf(cc.Out, "%s: installed at %s (not executable)\n", fileName, status.Path)
			default:
				fmt.Fprintf(cc.Out, "%s: installed at %s\n", fileName, status.Path)
			}
			return nil
		}),
	}
}
