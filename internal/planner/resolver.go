package planner

import (
	"fmt"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// DefaultMaxDepth bounds how deep a resolved tree may grow
const DefaultMaxDepth = 64

// Catalog defines the recipe lookups the resolver needs
type Catalog interface {
	Recipe(name string) (*domain.RecipeDefinition, bool)
	Product(item string) (domain.ProductEntry, bool)
	IsRawResource(item string) bool
}

// Resolver builds production trees from the recipe catalog.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	catalog  Catalog
	maxDepth int
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMaxDepth sets the depth limit; values <= 0 keep the default
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// NewResolver creates a resolver over catalog
func NewResolver(catalog Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:  catalog,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxDepth returns the configured depth limit
func (r *Resolver) MaxDepth() int {
	return r.maxDepth
}

// Resolve builds the complete production tree for amount items per minute of item.
// Overrides pick the recipe per item; items without an override use the catalog default.
func (r *Resolver) Resolve(item string, amount float64, overrides domain.RecipeOverrides) (domain.PlanNode, error) {
	if !domain.ValidAmount(amount) {
		return nil, fmt.Errorf("%w: %v for '%s'", domain.ErrInvalidAmount, amount, item)
	}
	return r.resolve(item, amount, "", overrides, 0)
}

// resolve builds the subtree for item. A non-empty forced recipe wins over overrides and defaults.
func (r *Resolver) resolve(item string, amount float64, forced string, overrides domain.RecipeOverrides, depth int) (domain.PlanNode, error) {
	if depth > r.maxDepth {
		return nil, fmt.Errorf("%w: limit %d reached at '%s'", domain.ErrMaxDepthExceeded, r.maxDepth, item)
	}

	entry, known := r.catalog.Product(item)

	active := forced
	if active == "" {
		if recipe, ok := overrides.Lookup(item); ok {
			active = recipe
		} else {
			active = entry.DefaultRecipe
		}
	}

	if active == "" {
		if r.catalog.IsRawResource(item) || entry.RawResource {
			return domain.LeafNode{Item: item, Amount: amount}, nil
		}
		if known {
			return nil, fmt.Errorf("%w: '%s' has no recipe", domain.ErrUnknownItem, item)
		}
		return nil, fmt.Errorf("%w: '%s'", domain.ErrUnknownItem, item)
	}

	recipe, ok := r.catalog.Recipe(active)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' for item '%s'", domain.ErrUnknownRecipe, active, item)
	}
	perCycle, ok := recipe.ProductAmount(item)
	if !ok {
		return nil, fmt.Errorf("%w: recipe '%s' does not produce '%s'", domain.ErrRecipeMismatch, active, item)
	}

	node := domain.ProducedNode{
		Item:             item,
		Amount:           amount,
		Recipe:           active,
		AlternateRecipes: alternatesFor(entry, active),
		BuildingCount:    amount / recipe.RatePerBuilding(item),
		ProducedIn:       recipe.ProducedIn,
	}

	if len(recipe.Ingredients) > 0 {
		node.Ingredients = make([]domain.PlanNode, 0, len(recipe.Ingredients))
		for _, ingredient := range recipe.Ingredients {
			child, err := r.resolve(ingredient.Item, amount*ingredient.Amount/perCycle, "", overrides, depth+1)
			if err != nil {
				return nil, err
			}
			node.Ingredients = append(node.Ingredients, child)
		}
	}

	return node, nil
}

// alternatesFor lists every producing recipe except the active one, default first
func alternatesFor(entry domain.ProductEntry, active string) []string {
	alternates := make([]string, 0, len(entry.AlternateRecipes)+1)
	if entry.DefaultRecipe != "" && entry.DefaultRecipe != active {
		alternates = append(alternates, entry.DefaultRecipe)
	}
	for _, recipe := range entry.AlternateRecipes {
		if recipe != active {
			alternates = append(alternates, recipe)
		}
	}
	return alternates
}
