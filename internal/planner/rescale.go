package planner

import (
	"fmt"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Rescale returns a copy of tree producing newRootAmount at the root.
// Every rate and building count is multiplied by the same factor; recipes and shape are kept.
func Rescale(tree domain.PlanNode, newRootAmount float64) (domain.PlanNode, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: empty tree", domain.ErrInvalidPlan)
	}
	if !domain.ValidAmount(newRootAmount) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, newRootAmount)
	}
	if !domain.ValidAmount(tree.Rate()) {
		return nil, fmt.Errorf("%w: root amount %v", domain.ErrInvalidPlan, tree.Rate())
	}

	factor := newRootAmount / tree.Rate()
	root := scale(tree, factor)

	// the root gets the requested value, not the product of the factor
	switch n := root.(type) {
	case domain.LeafNode:
		n.Amount = newRootAmount
		return n, nil
	case domain.ProducedNode:
		n.Amount = newRootAmount
		return n, nil
	}
	return root, nil
}

func scale(node domain.PlanNode, factor float64) domain.PlanNode {
	switch n := node.(type) {
	case domain.LeafNode:
		n.Amount *= factor
		return n
	case domain.ProducedNode:
		n.Amount *= factor
		n.BuildingCount *= factor
		if len(n.Ingredients) > 0 {
			ingredients := make([]domain.PlanNode, len(n.Ingredients))
			for i, child := range n.Ingredients {
				ingredients[i] = scale(child, factor)
			}
			n.Ingredients = ingredients
		}
		return n
	default:
		return node
	}
}
