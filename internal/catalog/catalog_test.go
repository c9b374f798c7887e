package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(smelterConfig())
	require.NoError(t, err)
	return c
}

func TestNew_ProductIndex(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		item        string
		wantDefault string
		wantAlts    []string
		wantRaw     bool
	}{
		{item: "Iron Ingot", wantDefault: "Iron Ingot", wantAlts: []string{"Alternate: Pure Iron Ingot"}},
		{item: "Iron Plate", wantDefault: "Iron Plate", wantAlts: []string{"Steel Plate"}},
		{item: "Heavy Oil Residue", wantDefault: "Plastic", wantAlts: []string{"Rubber"}},
		{item: "Water", wantDefault: "Water", wantAlts: []string{}, wantRaw: true},
		{item: "Iron Ore", wantDefault: "", wantAlts: []string{}, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			entry, ok := c.Product(tt.item)
			require.True(t, ok)
			assert.Equal(t, tt.wantDefault, entry.DefaultRecipe)
			assert.Equal(t, tt.wantAlts, entry.AlternateRecipes)
			assert.Equal(t, tt.wantRaw, entry.RawResource)
		})
	}
}

func TestNew_AllAlternatesFallsBackToFirst(t *testing.T) {
	config := &Config{
		Recipes: []domain.RecipeDefinition{
			{Name: "Alternate: Wet Concrete", ProducedIn: "Refinery", CycleTimeSeconds: 3, Ingredients: amounts("Limestone", 6, "Water", 5), Products: amounts("Concrete", 4)},
			{Name: "Alternate: Rubber Concrete", ProducedIn: "Assembler", CycleTimeSeconds: 6, Ingredients: amounts("Limestone", 10), Products: amounts("Concrete", 9)},
		},
	}

	c, err := New(config)
	require.NoError(t, err)

	recipe, alts, err := c.DefaultRecipeFor("Concrete")
	require.NoError(t, err)
	assert.Equal(t, "Alternate: Wet Concrete", recipe)
	assert.Equal(t, []string{"Alternate: Rubber Concrete"}, alts)
}

func TestNew_RejectsInvalidDataset(t *testing.T) {
	config := smelterConfig()
	config.Recipes[0].Products[0].Amount = 0

	c, err := New(config)

	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCatalog_Recipe(t *testing.T) {
	c := newTestCatalog(t)

	recipe, ok := c.Recipe("Iron Plate")
	require.True(t, ok)
	assert.Equal(t, "Constructor", recipe.ProducedIn)
	assert.Equal(t, 20.0, recipe.RatePerBuilding("Iron Plate"))

	_, ok = c.Recipe("Nope")
	assert.False(t, ok)
}

func TestCatalog_DefaultRecipeFor_UnknownItem(t *testing.T) {
	c := newTestCatalog(t)

	_, _, err := c.DefaultRecipeFor("Unobtainium")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestCatalog_ProductReturnsCopy(t *testing.T) {
	c := newTestCatalog(t)

	entry, _ := c.Product("Iron Ingot")
	entry.AlternateRecipes[0] = "tampered"

	again, _ := c.Product("Iron Ingot")
	assert.Equal(t, "Alternate: Pure Iron Ingot", again.AlternateRecipes[0])
}

func TestCatalog_ProducibleItems(t *testing.T) {
	c := newTestCatalog(t)

	items := c.ProducibleItems()

	assert.IsIncreasing(t, items)
	assert.Contains(t, items, "Iron Plate")
	assert.Contains(t, items, "Heavy Oil Residue")
	assert.Contains(t, items, "Iron Ore")
	assert.Len(t, c.Products(), len(items))
}

func TestCatalog_CanonicalItem(t *testing.T) {
	c := newTestCatalog(t)

	item, ok := c.CanonicalItem("  iron PLATE ")
	assert.True(t, ok)
	assert.Equal(t, "Iron Plate", item)

	_, ok = c.CanonicalItem("iron plates")
	assert.False(t, ok)
}

func TestCatalog_SearchProducts(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("prefix matches first", func(t *testing.T) {
		results := c.SearchProducts("iron", 0)
		assert.Equal(t, []string{"Iron Ingot", "Iron Ore", "Iron Plate"}, results)
	})

	t.Run("substring matches follow", func(t *testing.T) {
		results := c.SearchProducts("oil", 0)
		assert.Equal(t, []string{"Crude Oil", "Heavy Oil Residue"}, results)
	})

	t.Run("limit applied", func(t *testing.T) {
		assert.Len(t, c.SearchProducts("iron", 2), 2)
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		assert.Equal(t, c.ProducibleItems(), c.SearchProducts("", 0))
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, c.SearchProducts("zzz", 0))
	})
}

func TestCatalog_IsRawResource(t *testing.T) {
	c := newTestCatalog(t)

	assert.True(t, c.IsRawResource("Iron Ore"))
	assert.True(t, c.IsRawResource("Water"))
	assert.False(t, c.IsRawResource("Iron Ingot"))
}
