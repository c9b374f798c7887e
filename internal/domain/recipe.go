package domain

import "strings"

// AlternateRecipePrefix marks recipe names that are alternates in the game dataset
const AlternateRecipePrefix = "Alternate: "

// ItemAmount represents an item consumed or produced per recipe cycle
type ItemAmount struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// RecipeDefinition describes a production recipe.
// Definitions are loaded once from the catalog and never mutated afterwards.
type RecipeDefinition struct {
	Name             string       `json:"name"`
	ProducedIn       string       `json:"produced_in"`
	CycleTimeSeconds float64      `json:"time"`
	Products         []ItemAmount `json:"products"`
	Ingredients      []ItemAmount `json:"ingredients"`
	Alternate        bool         `json:"alternate,omitempty"`
}

// IsAlternate reports whether the recipe is an alternate, either flagged or by name
func (r *RecipeDefinition) IsAlternate() bool {
	return r.Alternate || strings.HasPrefix(r.Name, AlternateRecipePrefix)
}

// IsExtraction reports whether the recipe consumes nothing
func (r *RecipeDefinition) IsExtraction() bool {
	return len(r.Ingredients) == 0
}

// ProductAmount returns the per-cycle amount of item produced by the recipe
func (r *RecipeDefinition) ProductAmount(item string) (float64, bool) {
	for _, p := range r.Products {
		if p.Item == item {
			return p.Amount, true
		}
	}
	return 0, false
}

// RatePerBuilding returns items per minute of item produced by a single building
func (r *RecipeDefinition) RatePerBuilding(item string) float64 {
	perCycle, ok := r.ProductAmount(item)
	if !ok || r.CycleTimeSeconds <= 0 {
		return 0
	}
	return (SecondsPerMinute / r.CycleTimeSeconds) * perCycle
}

// ProductEntry is the catalog index entry for a producible item
type ProductEntry struct {
	Item             string   `json:"item"`
	DefaultRecipe    string   `json:"default_recipe,omitempty"`
	AlternateRecipes []string `json:"alternate_recipes"`
	RawResource      bool     `json:"raw_resource,omitempty"`
}

// HasDefault reports whether the entry names a default recipe
func (e ProductEntry) HasDefault() bool {
	return e.DefaultRecipe != ""
}
