package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

type productsOptions struct {
	Limit   int
	Recipes bool
}

func newProductsCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:   "products [query]",
		Short: "List or search producible items",
		Long: `List every item the catalog can produce, or only those whose name contains
[query] (case-insensitive, prefix matches first). With --recipes each item is
shown with its default and alternate recipes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runProducts(cmd, rootOpts, opts, query)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of items; 0 lists all")
	cmd.Flags().BoolVar(&opts.Recipes, "recipes", false, "include default and alternate recipes")

	return cmd
}

func runProducts(cmd *cobra.Command, rootOpts *rootOptions, opts *productsOptions, query string) error {
	if opts.Limit < 0 {
		return fmt.Errorf("invalid limit %d: must not be negative", opts.Limit)
	}

	cat, err := rootOpts.loadCatalog()
	if err != nil {
		return err
	}

	items := cat.SearchProducts(query, opts.Limit)
	out := cmd.OutOrStdout()

	if !opts.Recipes {
		if rootOpts.Format == formatJSON {
			return writeJSON(out, items)
		}
		for _, item := range items {
			fmt.Fprintln(out, item)
		}
		return nil
	}

	entries := make([]domain.ProductEntry, 0, len(items))
	for _, item := range items {
		if entry, ok := cat.Product(item); ok {
			entries = append(entries, entry)
		}
	}
	if rootOpts.Format == formatJSON {
		return writeJSON(out, entries)
	}
	for _, entry := range entries {
		switch {
		case entry.RawResource && !entry.HasDefault():
			fmt.Fprintf(out, "%s (raw)\n", entry.Item)
		case len(entry.AlternateRecipes) == 0:
			fmt.Fprintf(out, "%s: %s\n", entry.Item, entry.DefaultRecipe)
		default:
			fmt.Fprintf(out, "%s: %s [alternates: %s]\n", entry.Item, entry.DefaultRecipe, strings.Join(entry.AlternateRecipes, ", "))
		}
	}
	return nil
}
