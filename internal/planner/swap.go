package planner

import (
	"fmt"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Swap replaces the recipe of the node at path and re-resolves only that subtree.
// path lists ingredient indices from the root; an empty path targets the root.
// The returned overrides are a copy of overrides with the new choice recorded.
// Nodes outside the path are shared with tree, ancestors are rebuilt.
func (r *Resolver) Swap(tree domain.PlanNode, path []int, newRecipe string, overrides domain.RecipeOverrides) (domain.PlanNode, domain.RecipeOverrides, error) {
	target, err := NodeAt(tree, path)
	if err != nil {
		return nil, nil, err
	}

	produced, ok := target.(domain.ProducedNode)
	if !ok {
		return nil, nil, fmt.Errorf("%w: '%s' is a raw resource and has no recipe", domain.ErrInvalidRecipeChoice, target.ItemName())
	}
	if !produced.CanUseRecipe(newRecipe) {
		return nil, nil, fmt.Errorf("%w: '%s' is not a recipe for '%s'", domain.ErrInvalidRecipeChoice, newRecipe, produced.Item)
	}

	next := overrides.With(produced.Item, newRecipe)

	replacement, err := r.resolve(produced.Item, produced.Amount, newRecipe, next, len(path))
	if err != nil {
		return nil, nil, err
	}

	return replaceAt(tree, path, replacement), next, nil
}

// NodeAt returns the node reached by following path from tree
func NodeAt(tree domain.PlanNode, path []int) (domain.PlanNode, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: empty tree", domain.ErrInvalidPlan)
	}
	node := tree
	for depth, idx := range path {
		children := node.Children()
		if idx < 0 || idx >= len(children) {
			return nil, fmt.Errorf("%w: index %d at depth %d of path %v", domain.ErrPathNotFound, idx, depth, path)
		}
		node = children[idx]
	}
	return node, nil
}

// replaceAt copies every node on path and puts replacement at its end.
// path must already be known to exist in node.
func replaceAt(node domain.PlanNode, path []int, replacement domain.PlanNode) domain.PlanNode {
	if len(path) == 0 {
		return replacement
	}
	parent := node.(domain.ProducedNode)
	ingredients := make([]domain.PlanNode, len(parent.Ingredients))
	copy(ingredients, parent.Ingredients)
	ingredients[path[0]] = replaceAt(ingredients[path[0]], path[1:], replacement)
	parent.Ingredients = ingredients
	return parent
}
