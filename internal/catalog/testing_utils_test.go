package catalog

import (
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func amounts(pairs ...interface{}) []domain.ItemAmount {
	out := make([]domain.ItemAmount, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.ItemAmount{Item: pairs[i].(string), Amount: toFloat(pairs[i+1])})
	}
	return out
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	default:
		panic("unsupported amount type")
	}
}

func smelterConfig() *Config {
	return &Config{
		Version: "test",
		Recipes: []domain.RecipeDefinition{
			{Name: "Iron Ingot", ProducedIn: "Smelter", CycleTimeSeconds: 2, Ingredients: amounts("Iron Ore", 1), Products: amounts("Iron Ingot", 1)},
			{Name: "Alternate: Pure Iron Ingot", ProducedIn: "Refinery", CycleTimeSeconds: 12, Ingredients: amounts("Iron Ore", 7, "Water", 4), Products: amounts("Iron Ingot", 13)},
			{Name: "Iron Plate", ProducedIn: "Constructor", CycleTimeSeconds: 6, Ingredients: amounts("Iron Ingot", 3), Products: amounts("Iron Plate", 2)},
			{Name: "Water", ProducedIn: "Water Extractor", CycleTimeSeconds: 1, Products: amounts("Water", 2)},
			{Name: "Plastic", ProducedIn: "Refinery", CycleTimeSeconds: 6, Ingredients: amounts("Crude Oil", 3), Products: amounts("Plastic", 2, "Heavy Oil Residue", 1)},
			{Name: "Rubber", ProducedIn: "Refinery", CycleTimeSeconds: 6, Ingredients: amounts("Crude Oil", 3), Products: amounts("Rubber", 2, "Heavy Oil Residue", 2)},
			{Name: "Steel Plate", ProducedIn: "Constructor", CycleTimeSeconds: 6, Ingredients: amounts("Iron Ingot", 2), Products: amounts("Iron Plate", 3), Alternate: true},
		},
	}
}
