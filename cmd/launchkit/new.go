package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/reglet-dev/launchkit/internal/application/dto"
	"github.com/reglet-dev/launchkit/internal/application/services"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// NewOptions holds options for the new command.
type NewOptions struct {
	manifest    dto.Manifest
	output      string
	interactive bool
	force       bool
}

func newNewCmd() *cobra.Command {
	opts := &NewOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a launcher manifest",
		Long: `Write a YAML manifest for a new launcher. Values come from flags,
or from a form with --interactive. The launcher is validated before the
manifest is written.

Examples:
  launchkit new --file-name myapp --name "My App" --exec /usr/bin/myapp
  launchkit new --interactive --output launchers/myapp.yaml`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
			if opts.interactive {
				if err := promptManifest(&opts.manifest); err != nil {
					return err
				}
			}
			return runNew(cc, opts)
		}),
	}

	m := &opts.manifest
	cmd.Flags().StringVar(&m.FileName, "file-name", "", "Launcher file name without .desktop (lowercase letters and digits)")
	cmd.Flags().StringVar(&m.Type, "type", "Application", "Entry type: Application, Link or Directory")
	cmd.Flags().StringVar(&m.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&m.Exec, "exec", "", "Command line to run")
	cmd.Flags().StringVar(&m.Icon, "icon", "", "Icon name or path")
	cmd.Flags().StringVar(&m.Comment, "comment", "", "Tooltip text")
	cmd.Flags().StringSliceVar(&m.Categories, "categories", nil, "Menu categories (comma-separated)")
	cmd.Flags().StringSliceVar(&m.Keywords, "keywords", nil, "Search keywords (comma-separated)")
	cmd.Flags().StringSliceVar(&m.MimeTypes, "mime-types", nil, "Supported MIME types (comma-separated)")
	cmd.Flags().BoolVar(&m.Terminal, "terminal", false, "Run in a terminal")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Manifest path (default: ./<file-name>.yaml)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for values")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing manifest")

	return cmd
}

func runNew(cc *CommandContext, opts *NewOptions) error {
	entry, err := cc.Container.ManifestService().Build(&opts.manifest)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(services.ToManifest(entry))
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := opts.output
	if path == "" {
		path = entry.FileName().String() + ".yaml"
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.force {
		flags |= os.O_EXCL
	}
	//nolint:gosec // G302,G304: user-chosen manifest path, readable like any source file
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Fprintf(cc.Out, "Created %s\n", path)
	return nil
}

// promptManifest asks for every required value the flags left empty.
func promptManifest(m *dto.Manifest) error {
	var fields []huh.Field

	if m.FileName == "" {
		fields = append(fields, huh.NewInput().
			Title("File name").
			Description("Lowercase letters and digits, without .desktop").
			Value(&m.FileName).
			Validate(func(s string) error {
				_, err := values.NewFileName(s)
				return err
			}))
	}
	if m.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Name").
			Value(&m.Name).
			Validate(required("name")))
	}
	if m.Exec == "" {
		fields = append(fields, huh.NewInput().
			Title("Command").
			Value(&m.Exec).
			Validate(required("command")))
	}

	fields = append(fields,
		huh.NewSelect[string]().
			Title("Type").
			Options(
				huh.NewOption("Application", values.EntryTypeApplication.String()),
				huh.NewOption("Link", values.EntryTypeLink.String()),
				huh.NewOption("Directory", values.EntryTypeDirectory.String()),
			).
			Value(&m.Type),
	)

	if m.Icon == "" {
		fields = append(fields, huh.NewInput().Title("Icon (optional)").Value(&m.Icon))
	}
	if m.Comment == "" {
		fields = append(fields, huh.NewInput().Title("Comment (optional)").Value(&m.Comment))
	}
	if len(m.Categories) == 0 {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Main categories").
			Options(mainCategoryOptions()...).
			Value(&m.Categories))
	}

	var mimeTypes string
	if len(m.MimeTypes) == 0 {
		fields = append(fields, huh.NewInput().
			Title("MIME types (optional)").
			Description("Comma-separated, e.g. text/plain, image/png").
			Value(&mimeTypes).
			Validate(validMimeTypes))
	}

	fields = append(fields, huh.NewConfirm().
		Title("Run in a terminal?").
		Value(&m.Terminal))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}
	m.MimeTypes = append(m.MimeTypes, splitList(mimeTypes)...)
	return nil
}

func validMimeTypes(s string) error {
	for _, mt := range splitList(s) {
		if !values.IsMimeType(mt) {
			return fmt.Errorf("%q is not a type/subtype MIME type", mt)
		}
	}
	return nil
}

// splitList splits a comma-separated answer, dropping blank items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func required(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func mainCategoryOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range values.AllCategories() {
		if c.Tier() == values.TierMain {
			opts = append(opts, huh.NewOption(c.String(), c.String()))
		}
	}
	return opts
}
