package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatJSON}

// rootOptions holds the flags shared by every subcommand
type rootOptions struct {
	CatalogPath string
	Format      string
	Digits      int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "planctl",
		Short: "Offline factory production planner",
		Long: `planctl resolves production trees against a recipe dataset without
running the planner server. Plans written with --format json use the same
document shape as the HTTP API and can be posted back to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.CatalogPath, "catalog", "c", config.ConfigPathRecipes, "path to the recipe dataset")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", domain.DefaultRoundingDigits, "fractional digits in output; negative keeps full precision")

	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newProductsCommand(opts))
	cmd.AddCommand(newValidateCatalogCommand(opts))

	return cmd
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	return catalog.LoadFile(o.CatalogPath)
}
