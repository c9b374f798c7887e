package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/utils"
	"github.com/osse101/FactoryPlanner_Go/internal/validation"
)

// RecipesSchema is the schema every dataset file must satisfy before it is parsed
const RecipesSchema = "recipes.schema.json"

//go:embed schemas/*.json
var schemaFiles embed.FS

// Sentinel errors for catalog loading
var (
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrDuplicateRecipe = errors.New("duplicate recipe name")
	ErrInvalidItem     = errors.New("invalid item reference")
	ErrCycleDetected   = errors.New("cycle detected in recipe graph")
)

// Config represents the JSON recipe dataset
type Config struct {
	Version      string                    `json:"version"`
	Description  string                    `json:"description"`
	RawResources []string                  `json:"raw_resources,omitempty"`
	Recipes      []domain.RecipeDefinition `json:"recipes"`
}

// Loader handles loading and validating the recipe dataset
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	schemas, err := fs.Sub(schemaFiles, "schemas")
	if err != nil {
		panic(fmt.Sprintf("embedded schemas: %v", err))
	}
	return &loader{
		schemaValidator: validation.NewSchemaValidator(schemas),
	}
}

// Load reads a recipe dataset file, checks it against RecipesSchema and parses it
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe dataset: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(data, RecipesSchema); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, path, err)
	}

	var config Config
	if err := utils.DecodeStrict(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse recipe dataset %s: %w", path, err)
	}
	return &config, nil
}

// Validate checks the dataset for integrity faults.
// Any error here means the static data is corrupt and the catalog must not be used.
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidCatalog)
	}
	if len(config.Recipes) == 0 {
		return fmt.Errorf("%w: no recipes defined", ErrInvalidCatalog)
	}

	raw := rawResourceSet(config)
	recipesByName := make(map[string]*domain.RecipeDefinition, len(config.Recipes))
	producible := make(map[string]bool)

	for i := range config.Recipes {
		recipe := &config.Recipes[i]

		if recipe.Name == "" {
			return fmt.Errorf("%w: recipe at index %d has empty name", ErrInvalidCatalog, i)
		}
		if _, exists := recipesByName[recipe.Name]; exists {
			return fmt.Errorf("%w: '%s'", ErrDuplicateRecipe, recipe.Name)
		}
		recipesByName[recipe.Name] = recipe

		if recipe.ProducedIn == "" {
			return fmt.Errorf("%w: recipe '%s' has no produced_in building", ErrInvalidCatalog, recipe.Name)
		}
		if !positiveFinite(recipe.CycleTimeSeconds) {
			return fmt.Errorf("%w: recipe '%s' has non-positive cycle time %v", ErrInvalidCatalog, recipe.Name, recipe.CycleTimeSeconds)
		}
		if len(recipe.Products) == 0 {
			return fmt.Errorf("%w: recipe '%s' has no products", ErrInvalidCatalog, recipe.Name)
		}

		seenProducts := make(map[string]bool, len(recipe.Products))
		for j, product := range recipe.Products {
			if product.Item == "" {
				return fmt.Errorf("%w: recipe '%s' product[%d] has empty item", ErrInvalidCatalog, recipe.Name, j)
			}
			if seenProducts[product.Item] {
				return fmt.Errorf("%w: recipe '%s' lists product '%s' twice", ErrInvalidCatalog, recipe.Name, product.Item)
			}
			seenProducts[product.Item] = true
			if !positiveFinite(product.Amount) {
				return fmt.Errorf("%w: recipe '%s' product[%d] has non-positive amount", ErrInvalidCatalog, recipe.Name, j)
			}
			producible[product.Item] = true
		}

		for j, ingredient := range recipe.Ingredients {
			if ingredient.Item == "" {
				return fmt.Errorf("%w: recipe '%s' ingredient[%d] has empty item", ErrInvalidCatalog, recipe.Name, j)
			}
			if !positiveFinite(ingredient.Amount) {
				return fmt.Errorf("%w: recipe '%s' ingredient[%d] has non-positive amount", ErrInvalidCatalog, recipe.Name, j)
			}
		}
	}

	// Every ingredient must be obtainable
	for _, recipe := range config.Recipes {
		for j, ingredient := range recipe.Ingredients {
			if !producible[ingredient.Item] && !raw[ingredient.Item] {
				return fmt.Errorf("%w: recipe '%s' ingredient[%d] references unknown item '%s'", ErrInvalidItem, recipe.Name, j, ingredient.Item)
			}
		}
	}

	return detectCycles(config.Recipes)
}

// detectCycles uses DFS over item -> producing recipe -> ingredient item edges
func detectCycles(recipes []domain.RecipeDefinition) error {
	producers := make(map[string][]*domain.RecipeDefinition)
	for i := range recipes {
		for _, product := range recipes[i].Products {
			producers[product.Item] = append(producers[product.Item], &recipes[i])
		}
	}

	// State: 0 = unvisited, 1 = visiting, 2 = visited
	state := make(map[string]int, len(producers))

	var dfs func(item string) error
	dfs = func(item string) error {
		if state[item] == 1 {
			return fmt.Errorf("%w: at item '%s'", ErrCycleDetected, item)
		}
		if state[item] == 2 {
			return nil
		}

		state[item] = 1 // visiting

		for _, recipe := range producers[item] {
			for _, ingredient := range recipe.Ingredients {
				if err := dfs(ingredient.Item); err != nil {
					return fmt.Errorf("%w (via recipe '%s')", err, recipe.Name)
				}
			}
		}

		state[item] = 2 // visited
		return nil
	}

	for _, recipe := range recipes {
		for _, product := range recipe.Products {
			if state[product.Item] == 0 {
				if err := dfs(product.Item); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func rawResourceSet(config *Config) map[string]bool {
	names := config.RawResources
	if len(names) == 0 {
		names = domain.DefaultRawResources
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
