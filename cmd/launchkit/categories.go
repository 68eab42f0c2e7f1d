package main

import (
	"github.com/spf13/cobra"

	"github.com/reglet-dev/launchkit/internal/application/ports"
	"github.com/reglet-dev/launchkit/internal/application/services"
	"github.com/reglet-dev/launchkit/internal/infrastructure/system"
)

// ListOptions holds options shared by the listing commands.
type ListOptions struct {
	format string
}

// RegisterFlags adds listing flags to a cobra command.
func (opts *ListOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table, json, yaml")
}

func (opts *ListOptions) formatter(cc *CommandContext) (ports.OutputFormatter, error) {
	return cc.Container.FormatterFactory().Create(opts.format, cc.Out, ports.FormatterOptions{
		Indent: true,
		Color:  useColor(system.ColorAuto, cc.Out),
	})
}

func newCategoriesCmd() *cobra.Command {
	listOpts := &ListOptions{}
	query := services.CategoryQuery{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the menu categories launchers can use",
		Long: `List the freedesktop menu categories. Tier 1 holds the main
categories, tier 2 the additional ones and tier 3 the reserved ones.

Filtering:
  --tier 1                              Only main categories
  --filter 'name startsWith "Audio"'    Expression over id, name, tier, tier_name`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
			categories, err := cc.Container.CatalogService().Categories(query)
			if err != nil {
				return err
			}
			formatter, err := listOpts.formatter(cc)
			if err != nil {
				return err
			}
			return formatter.FormatCategories(categories)
		}),
	}

	listOpts.RegisterFlags(cmd)
	cmd.Flags().IntSliceVar(&query.Tiers, "tier", nil, "Only list these tiers (1-3, comma-separated)")
	cmd.Flags().StringVar(&query.Filter, "filter", "", "Filter expression (e.g. \"tier == 2 && name endsWith 'Game'\")")

	return cmd
}

func newEnvironmentsCmd() *cobra.Command {
	listOpts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "environments",
		Short: "List desktop environments usable in only_show_in and not_show_in",
		Args:  cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, _ *cobra.Command, _ []string) error {
			formatter, err := listOpts.formatter(cc)
			if err != nil {
				return err
			}
			return formatter.FormatEnvironments(cc.Container.CatalogService().Environments())
		}),
	}

	listOpts.RegisterFlags(cmd)

	return cmd
}
