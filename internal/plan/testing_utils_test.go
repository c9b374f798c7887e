package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/planner"
)

func ia(item string, amount float64) []domain.ItemAmount {
	return []domain.ItemAmount{{Item: item, Amount: amount}}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&catalog.Config{
		Recipes: []domain.RecipeDefinition{
			{Name: "Iron Ingot", ProducedIn: "Smelter", CycleTimeSeconds: 2, Ingredients: ia("Iron Ore", 1), Products: ia("Iron Ingot", 1)},
			{Name: "Iron Rod", ProducedIn: "Constructor", CycleTimeSeconds: 4, Ingredients: ia("Iron Ingot", 1), Products: ia("Iron Rod", 1)},
			{Name: "Screw", ProducedIn: "Constructor", CycleTimeSeconds: 6, Ingredients: ia("Iron Rod", 1), Products: ia("Screw", 4)},
			{Name: "Alternate: Cast Screw", ProducedIn: "Constructor", CycleTimeSeconds: 24, Ingredients: ia("Iron Ingot", 5), Products: ia("Screw", 20)},
		},
	})
	require.NoError(t, err)
	return c
}

type serviceFixture struct {
	svc  Service
	repo *MockPlanRepository
	docs *MockDocuments
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	c := testCatalog(t)
	repo := new(MockPlanRepository)
	docs := new(MockDocuments)
	svc := NewService(planner.NewResolver(c), c, repo, docs, Config{
		RoundingDigits: domain.DefaultRoundingDigits,
		Cache:          DefaultCacheConfig(),
	})
	return serviceFixture{svc: svc, repo: repo, docs: docs}
}
