package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func ia(item string, amount float64) domain.ItemAmount {
	return domain.ItemAmount{Item: item, Amount: amount}
}

func testCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&catalog.Config{
		Version: "test",
		Recipes: []domain.RecipeDefinition{
			{Name: "Iron Ingot", ProducedIn: "Smelter", CycleTimeSeconds: 2, Ingredients: []domain.ItemAmount{ia("Iron Ore", 1)}, Products: []domain.ItemAmount{ia("Iron Ingot", 1)}},
			{Name: "Alternate: Pure Iron Ingot", ProducedIn: "Refinery", CycleTimeSeconds: 12, Ingredients: []domain.ItemAmount{ia("Iron Ore", 7), ia("Water", 4)}, Products: []domain.ItemAmount{ia("Iron Ingot", 13)}},
			{Name: "Water", ProducedIn: "Water Extractor", CycleTimeSeconds: 1, Products: []domain.ItemAmount{ia("Water", 2)}},
			{Name: "Iron Plate", ProducedIn: "Constructor", CycleTimeSeconds: 6, Ingredients: []domain.ItemAmount{ia("Iron Ingot", 3)}, Products: []domain.ItemAmount{ia("Iron Plate", 2)}},
			{Name: "Iron Rod", ProducedIn: "Constructor", CycleTimeSeconds: 4, Ingredients: []domain.ItemAmount{ia("Iron Ingot", 1)}, Products: []domain.ItemAmount{ia("Iron Rod", 1)}},
			{Name: "Screw", ProducedIn: "Constructor", CycleTimeSeconds: 6, Ingredients: []domain.ItemAmount{ia("Iron Rod", 1)}, Products: []domain.ItemAmount{ia("Screw", 4)}},
			{Name: "Alternate: Cast Screw", ProducedIn: "Constructor", CycleTimeSeconds: 24, Ingredients: []domain.ItemAmount{ia("Iron Ingot", 5)}, Products: []domain.ItemAmount{ia("Screw", 20)}},
			{Name: "Reinforced Iron Plate", ProducedIn: "Assembler", CycleTimeSeconds: 12, Ingredients: []domain.ItemAmount{ia("Iron Plate", 6), ia("Screw", 12)}, Products: []domain.ItemAmount{ia("Reinforced Iron Plate", 1)}},
		},
	})
	require.NoError(t, err)
	return c
}

func newTestResolver(t testing.TB, opts ...Option) (*Resolver, *catalog.Catalog) {
	t.Helper()
	c := testCatalog(t)
	return NewResolver(c, opts...), c
}

// walk visits every node of tree together with its parent, parent is nil for the root
func walk(node, parent domain.PlanNode, visit func(node, parent domain.PlanNode)) {
	visit(node, parent)
	for _, child := range node.Children() {
		walk(child, node, visit)
	}
}
