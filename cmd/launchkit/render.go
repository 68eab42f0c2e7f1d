package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/reglet-dev/launchkit/internal/infrastructure/output"
	"github.com/reglet-dev/launchkit/internal/infrastructure/system"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	output string
	color  string
}

func newRenderCmd() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Print the desktop entry a manifest describes",
		Long: `Build the launcher described by a manifest and print the resulting
desktop entry without installing it.

Examples:
  launchkit render myapp.yaml
  launchkit render myapp.hcl --output myapp.desktop
  launchkit render myapp.yaml --color always | less -R`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, args []string) error {
			return runRender(cc, opts, args[0])
		}),
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the entry to this file instead of stdout")
	cmd.Flags().StringVar(&opts.color, "color", "", "Colorize output: auto, always or never (default from render.color)")

	return cmd
}

func runRender(cc *CommandContext, opts *RenderOptions, manifestPath string) error {
	cfg := cc.Container.SystemConfig().Render
	mode, err := colorMode(opts.color, cfg.Color)
	if err != nil {
		return err
	}

	entry, err := cc.Container.ManifestService().Load(manifestPath)
	if err != nil {
		return err
	}
	text := entry.Render()

	if opts.output != "" {
		//nolint:gosec // G306: desktop entries are meant to be world-readable
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		cc.Logger.Info("desktop entry written", "file", opts.output)
		return nil
	}

	if useColor(mode, cc.Out) {
		style := viper.GetString("render.style")
		if style == "" {
			style = cfg.Style
		}
		return output.NewHighlighter(style).Highlight(cc.Out, text)
	}

	_, err = io.WriteString(cc.Out, text)
	return err
}

// colorMode picks the first non-empty mode, defaulting to auto.
func colorMode(modes ...string) (string, error) {
	for _, m := range modes {
		switch m {
		case "":
			continue
		case system.ColorAuto, system.ColorAlways, system.ColorNever:
			return m, nil
		default:
			return "", fmt.Errorf("invalid color mode %q (want %s, %s or %s)",
				m, system.ColorAuto, system.ColorAlways, system.ColorNever)
		}
	}
	return system.ColorAuto, nil
}

// useColor resolves a color mode against the destination writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case system.ColorAlways:
		return true
	case system.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}
