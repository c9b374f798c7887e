package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validationResult is the machine-readable outcome of validate-catalog
type validationResult struct {
	Valid    bool   `json:"valid"`
	Path     string `json:"path"`
	Version  string `json:"version,omitempty"`
	Recipes  int    `json:"recipes,omitempty"`
	Products int    `json:"products,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newValidateCatalogCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-catalog",
		Short: "Check the recipe dataset for integrity faults",
		Long: `Load the recipe dataset and run the same checks the server runs at startup:
duplicate recipe names, non-positive amounts or cycle times, unknown
ingredients and cycles in the recipe graph. Exits non-zero when invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateCatalog(cmd, rootOpts)
		},
	}
}

func runValidateCatalog(cmd *cobra.Command, rootOpts *rootOptions) error {
	result := validationResult{Path: rootOpts.CatalogPath}

	cat, loadErr := rootOpts.loadCatalog()
	if loadErr != nil {
		result.Error = loadErr.Error()
	} else {
		result.Valid = true
		result.Version = cat.Version()
		result.Recipes = cat.RecipeCount()
		result.Products = len(cat.ProducibleItems())
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format == formatJSON {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(out, "%s: valid (version %s, %d recipes, %d products)\n",
			result.Path, result.Version, result.Recipes, result.Products)
	}

	return loadErr
}
