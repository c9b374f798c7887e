package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/planner"
	"github.com/osse101/FactoryPlanner_Go/internal/utils"
)

type resolveOptions struct {
	Overrides map[string]string
	Output    string
	MaxDepth  int
	Summary   bool
}

func newResolveCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <item> <amount>",
		Short: "Resolve the production tree for an item rate",
		Long: `Resolve builds the full production tree for <amount> items per minute.

Recipes default to the catalog's default recipe per item. Use --override
"Item=Recipe" (repeatable) to pick an alternate recipe for an item.`,
		Example: `  planctl resolve "Reinforced Iron Plate" 5
  planctl resolve Screw 40 --override "Screw=Alternate: Cast Screw" --format json -o screw.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootOpts, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringToStringVar(&opts.Overrides, "override", nil, "recipe override as Item=Recipe")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the plan to this file instead of stdout")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", planner.DefaultMaxDepth, "maximum recipe chain depth")
	cmd.Flags().BoolVar(&opts.Summary, "summary", true, "print the plan summary after the tree (text format only)")

	return cmd
}

func runResolve(cmd *cobra.Command, rootOpts *rootOptions, opts *resolveOptions, item, rawAmount string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
	if err != nil || !domain.ValidAmount(amount) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, rawAmount)
	}

	cat, err := rootOpts.loadCatalog()
	if err != nil {
		return err
	}

	if canonical, ok := cat.CanonicalItem(item); ok {
		item = canonical
	}
	overrides := make(domain.RecipeOverrides, len(opts.Overrides))
	for overrideItem, recipe := range opts.Overrides {
		if canonical, ok := cat.CanonicalItem(overrideItem); ok {
			overrideItem = canonical
		}
		overrides[overrideItem] = strings.TrimSpace(recipe)
	}

	resolver := planner.NewResolver(cat, planner.WithMaxDepth(opts.MaxDepth))
	tree, err := resolver.Resolve(item, amount, overrides)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if rootOpts.Format == formatJSON {
		return writeJSON(out, domain.NewPlanDocument(tree, rootOpts.Digits))
	}

	writeTree(out, tree, rootOpts.Digits, 0)
	if opts.Summary {
		writeSummary(out, planner.Summarize(tree, cat.IsRawResource).Rounded(rootOpts.Digits))
	}
	return nil
}

// writeTree prints one line per node, children indented under their parent
func writeTree(w io.Writer, node domain.PlanNode, digits, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case domain.LeafNode:
		fmt.Fprintf(w, "%s%s %s/min (raw)\n", indent, n.Item, formatNumber(n.Amount, digits))
	case domain.ProducedNode:
		fmt.Fprintf(w, "%s%s %s/min via %s: %s x %s\n", indent, n.Item, formatNumber(n.Amount, digits),
			n.Recipe, formatNumber(n.BuildingCount, digits), n.ProducedIn)
		for _, child := range n.Ingredients {
			writeTree(w, child, digits, depth+1)
		}
	}
}

func writeSummary(w io.Writer, summary planner.Summary) {
	fmt.Fprintf(w, "\nNodes: %d\n", summary.NodeCount)

	writeTotals(w, "Raw resources", summary.RawResources)
	writeTotals(w, "Shared products", summary.SharedProducts)

	if len(summary.Buildings) > 0 {
		fmt.Fprintln(w, "Buildings:")
		for _, building := range sortedKeys(summary.Buildings) {
			fmt.Fprintf(w, "  %s: %s\n", building, formatNumber(summary.Buildings[building], domain.FullPrecision))
		}
	}
}

func writeTotals(w io.Writer, title string, totals map[string]domain.ItemTotal) {
	if len(totals) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range sortedKeys(totals) {
		total := totals[item]
		fmt.Fprintf(w, "  %s: %s/min (%d nodes)\n", item, formatNumber(total.Amount, domain.FullPrecision), total.Occurrences)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatNumber renders v without trailing zeros, rounded to digits when digits >= 0
func formatNumber(v float64, digits int) string {
	if digits >= 0 {
		v = utils.Round(v, digits)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
