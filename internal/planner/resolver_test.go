package planner

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/testing/leaktest"
)

func TestResolve_IronIngot(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Iron Ingot", 60, nil)
	require.NoError(t, err)

	root, ok := tree.(domain.ProducedNode)
	require.True(t, ok)
	assert.Equal(t, "Iron Ingot", root.Recipe)
	assert.Equal(t, "Smelter", root.ProducedIn)
	assert.Equal(t, 2.0, root.BuildingCount)
	assert.Equal(t, []string{"Alternate: Pure Iron Ingot"}, root.AlternateRecipes)

	require.Len(t, root.Ingredients, 1)
	assert.Equal(t, domain.LeafNode{Item: "Iron Ore", Amount: 60}, root.Ingredients[0])
}

func TestResolve_InvalidAmount(t *testing.T) {
	r, _ := newTestResolver(t)

	for _, amount := range []float64{-5, 0, math.NaN(), math.Inf(1)} {
		_, err := r.Resolve("Iron Ingot", amount, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %v", amount)
	}
}

func TestResolve_Errors(t *testing.T) {
	r, _ := newTestResolver(t)

	tests := []struct {
		name      string
		item      string
		overrides domain.RecipeOverrides
		wantErr   error
	}{
		{name: "unknown item", item: "Unobtainium", wantErr: domain.ErrUnknownItem},
		{name: "unknown recipe override", item: "Iron Plate", overrides: domain.RecipeOverrides{"Iron Plate": "Alternate: Nope"}, wantErr: domain.ErrUnknownRecipe},
		{name: "recipe does not produce item", item: "Iron Plate", overrides: domain.RecipeOverrides{"Iron Plate": "Screw"}, wantErr: domain.ErrRecipeMismatch},
		{name: "bad override deep in tree", item: "Reinforced Iron Plate", overrides: domain.RecipeOverrides{"Iron Rod": "Water"}, wantErr: domain.ErrRecipeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := r.Resolve(tt.item, 10, tt.overrides)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_RawResource(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Iron Ore", 30, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.LeafNode{Item: "Iron Ore", Amount: 30}, tree)

	water, err := r.Resolve("Water", 60, nil)
	require.NoError(t, err)
	node := water.(domain.ProducedNode)
	assert.Equal(t, "Water Extractor", node.ProducedIn)
	assert.Equal(t, 0.5, node.BuildingCount)
	assert.Empty(t, node.Ingredients)
}

func TestResolve_Override(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Iron Ingot", 65, domain.RecipeOverrides{"Iron Ingot": "Alternate: Pure Iron Ingot"})
	require.NoError(t, err)

	root := tree.(domain.ProducedNode)
	assert.Equal(t, "Alternate: Pure Iron Ingot", root.Recipe)
	assert.Equal(t, []string{"Iron Ingot"}, root.AlternateRecipes)
	assert.Equal(t, "Refinery", root.ProducedIn)
	assert.InDelta(t, 1.0, root.BuildingCount, 1e-9)

	require.Len(t, root.Ingredients, 2)
	assert.InDelta(t, 35.0, root.Ingredients[0].Rate(), 1e-9)
	water := root.Ingredients[1].(domain.ProducedNode)
	assert.InDelta(t, 20.0, water.Amount, 1e-9)
	assert.InDelta(t, 1.0/6.0, water.BuildingCount, 1e-9)
}

func TestResolve_OverridesApplyToEveryOccurrence(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Reinforced Iron Plate", 5, domain.RecipeOverrides{"Iron Ingot": "Alternate: Pure Iron Ingot"})
	require.NoError(t, err)

	var recipes []string
	walk(tree, nil, func(node, _ domain.PlanNode) {
		if produced, ok := node.(domain.ProducedNode); ok && produced.Item == "Iron Ingot" {
			recipes = append(recipes, produced.Recipe)
		}
	})
	assert.Equal(t, []string{"Alternate: Pure Iron Ingot", "Alternate: Pure Iron Ingot"}, recipes)
}

func TestResolve_TreeProperties(t *testing.T) {
	r, c := newTestResolver(t)

	tree, err := r.Resolve("Reinforced Iron Plate", 7.5, nil)
	require.NoError(t, err)

	walk(tree, nil, func(node, parent domain.PlanNode) {
		if produced, ok := node.(domain.ProducedNode); ok {
			recipe, found := c.Recipe(produced.Recipe)
			require.True(t, found)
			assert.InDelta(t, produced.Amount, produced.BuildingCount*recipe.RatePerBuilding(produced.Item), 1e-9,
				"building count of %s", produced.Item)
		}
		if parent == nil {
			return
		}
		p := parent.(domain.ProducedNode)
		recipe, _ := c.Recipe(p.Recipe)
		perCycle, _ := recipe.ProductAmount(p.Item)
		for _, ing := range recipe.Ingredients {
			if ing.Item == node.ItemName() {
				assert.InDelta(t, ing.Amount/perCycle, node.Rate()/p.Amount, 1e-12, "ratio of %s in %s", ing.Item, p.Item)
			}
		}
	})
}

func TestResolve_ReinforcedIronPlate(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Reinforced Iron Plate", 5, nil)
	require.NoError(t, err)

	root := tree.(domain.ProducedNode)
	assert.Equal(t, 1.0, root.BuildingCount)
	require.Len(t, root.Ingredients, 2)

	plate := root.Ingredients[0].(domain.ProducedNode)
	assert.Equal(t, 30.0, plate.Amount)
	assert.Equal(t, 1.5, plate.BuildingCount)

	screw := root.Ingredients[1].(domain.ProducedNode)
	assert.Equal(t, 60.0, screw.Amount)
	assert.Equal(t, []string{"Alternate: Cast Screw"}, screw.AlternateRecipes)

	rod := screw.Ingredients[0].(domain.ProducedNode)
	assert.Equal(t, 15.0, rod.Amount)
	assert.Equal(t, 1.0, rod.BuildingCount)
}

func TestResolve_MaxDepth(t *testing.T) {
	r, _ := newTestResolver(t, WithMaxDepth(1))
	assert.Equal(t, 1, r.MaxDepth())

	_, err := r.Resolve("Iron Ingot", 30, nil)
	assert.NoError(t, err)

	_, err = r.Resolve("Reinforced Iron Plate", 5, nil)
	assert.ErrorIs(t, err, domain.ErrMaxDepthExceeded)
}

func TestNewResolver_DefaultDepth(t *testing.T) {
	r, _ := newTestResolver(t, WithMaxDepth(0))
	assert.Equal(t, DefaultMaxDepth, r.MaxDepth())
}

// TestResolve_Concurrent shares one resolver and one overrides map across goroutines
func TestResolve_Concurrent(t *testing.T) {
	r, _ := newTestResolver(t)
	overrides := domain.RecipeOverrides{"Screw": "Alternate: Cast Screw"}

	leaktest.CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		errs := make(chan error, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(amount float64) {
				defer wg.Done()
				tree, err := r.Resolve("Reinforced Iron Plate", amount, overrides)
				if err != nil {
					errs <- err
					return
				}
				if tree.Rate() != amount {
					errs <- assert.AnError
				}
			}(float64(i + 1))
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Error(err)
		}
	})

	assert.Equal(t, domain.RecipeOverrides{"Screw": "Alternate: Cast Screw"}, overrides)
}

func TestResolve_SmallAmountDocumentRoundTrip(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Reinforced Iron Plate", 4e-5, nil)
	require.NoError(t, err)

	doc := domain.NewPlanDocument(tree, domain.DefaultRoundingDigits)
	node, err := doc.Node()
	require.NoError(t, err)
	assert.Equal(t, domain.CountNodes(tree), domain.CountNodes(node))

	walk(node, nil, func(n, _ domain.PlanNode) {
		if produced, ok := n.(domain.ProducedNode); ok {
			assert.Positive(t, produced.BuildingCount, produced.Item)
		}
	})
}
