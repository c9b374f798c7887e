package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Catalog is the read-only recipe lookup built once at startup.
// It is never mutated after New returns, so concurrent reads need no locking.
type Catalog struct {
	version  string
	recipes  map[string]*domain.RecipeDefinition
	products map[string]domain.ProductEntry
	raw      map[string]bool
	items    []string
	folded   map[string]string
}

// New validates the dataset and builds the product index
func New(config *Config) (*Catalog, error) {
	if err := NewLoader().Validate(config); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:  config.Version,
		recipes:  make(map[string]*domain.RecipeDefinition, len(config.Recipes)),
		products: make(map[string]domain.ProductEntry),
		raw:      rawResourceSet(config),
		folded:   make(map[string]string),
	}

	for i := range config.Recipes {
		recipe := config.Recipes[i]
		c.recipes[recipe.Name] = &recipe
	}

	c.buildProductIndex(config.Recipes)

	for item := range c.products {
		c.items = append(c.items, item)
	}
	sort.Strings(c.items)

	fold := cases.Fold()
	for _, item := range c.items {
		c.folded[fold.String(item)] = item
	}

	return c, nil
}

// LoadFile reads, validates and indexes the dataset at path
func LoadFile(path string) (*Catalog, error) {
	config, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	c, err := New(config)
	if err != nil {
		return nil, fmt.Errorf("recipe dataset %s rejected: %w", path, err)
	}
	return c, nil
}

// buildProductIndex picks the default and alternate recipes of every item in dataset order
func (c *Catalog) buildProductIndex(recipes []domain.RecipeDefinition) {
	producers := make(map[string][]*domain.RecipeDefinition)
	var order []string
	for i := range recipes {
		recipe := c.recipes[recipes[i].Name]
		for _, product := range recipe.Products {
			if _, seen := producers[product.Item]; !seen {
				order = append(order, product.Item)
			}
			producers[product.Item] = append(producers[product.Item], recipe)
		}
	}

	for raw := range c.raw {
		if _, ok := producers[raw]; !ok {
			c.products[raw] = domain.ProductEntry{Item: raw, AlternateRecipes: []string{}, RawResource: true}
		}
	}

	for _, item := range order {
		candidates := producers[item]
		isRaw := c.raw[item]

		defaultIdx := -1
		for i, recipe := range candidates {
			if isRaw && recipe.IsExtraction() {
				defaultIdx = i
				break
			}
			if !isRaw && !recipe.IsAlternate() {
				defaultIdx = i
				break
			}
		}
		if defaultIdx == -1 && !isRaw {
			defaultIdx = 0
		}

		entry := domain.ProductEntry{Item: item, AlternateRecipes: []string{}, RawResource: isRaw}
		seen := make(map[string]bool, len(candidates))
		if defaultIdx >= 0 {
			entry.DefaultRecipe = candidates[defaultIdx].Name
			seen[entry.DefaultRecipe] = true
		}
		for _, recipe := range candidates {
			if seen[recipe.Name] {
				continue
			}
			seen[recipe.Name] = true
			entry.AlternateRecipes = append(entry.AlternateRecipes, recipe.Name)
		}
		c.products[item] = entry
	}
}

// Version returns the dataset version string
func (c *Catalog) Version() string {
	return c.version
}

// Recipe returns the named recipe definition.
// The returned definition is shared and must not be modified.
func (c *Catalog) Recipe(name string) (*domain.RecipeDefinition, bool) {
	recipe, ok := c.recipes[name]
	return recipe, ok
}

// Product returns the index entry for item
func (c *Catalog) Product(item string) (domain.ProductEntry, bool) {
	entry, ok := c.products[item]
	if !ok {
		return domain.ProductEntry{}, false
	}
	entry.AlternateRecipes = append([]string{}, entry.AlternateRecipes...)
	return entry, true
}

// DefaultRecipeFor returns the default recipe and alternates for item
func (c *Catalog) DefaultRecipeFor(item string) (string, []string, error) {
	entry, ok := c.Product(item)
	if !ok {
		return "", nil, fmt.Errorf("%w: '%s'", domain.ErrUnknownItem, item)
	}
	return entry.DefaultRecipe, entry.AlternateRecipes, nil
}

// IsRawResource reports whether item belongs to the raw resource set
func (c *Catalog) IsRawResource(item string) bool {
	return c.raw[item]
}

// ProducibleItems returns every known item name, sorted
func (c *Catalog) ProducibleItems() []string {
	return append([]string{}, c.items...)
}

// Products returns every index entry sorted by item name
func (c *Catalog) Products() []domain.ProductEntry {
	entries := make([]domain.ProductEntry, 0, len(c.items))
	for _, item := range c.items {
		entry, _ := c.Product(item)
		entries = append(entries, entry)
	}
	return entries
}

// RecipeCount returns the number of recipes in the catalog
func (c *Catalog) RecipeCount() int {
	return len(c.recipes)
}

// CanonicalItem resolves a case-insensitive item name to its catalog spelling
func (c *Catalog) CanonicalItem(name string) (string, bool) {
	item, ok := c.folded[cases.Fold().String(strings.TrimSpace(name))]
	return item, ok
}

// SearchProducts returns item names containing query, case-insensitively.
// Prefix matches sort before other matches. limit <= 0 means no limit.
func (c *Catalog) SearchProducts(query string, limit int) []string {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		items := c.ProducibleItems()
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		return items
	}

	var prefix, contains []string
	for _, item := range c.items {
		folded := fold.String(item)
		switch {
		case strings.HasPrefix(folded, q):
			prefix = append(prefix, item)
		case strings.Contains(folded, q):
			contains = append(contains, item)
		}
	}

	results := append(prefix, contains...)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []string{}
	}
	return results
}
