package domain

import (
	"fmt"
	"math"

	"github.com/osse101/FactoryPlanner_Go/internal/utils"
)

// PlanDocument is the serialized form of a plan tree used by the API and the document store
type PlanDocument struct {
	Item             string          `json:"item" validate:"required"`
	Amount           float64         `json:"amount" validate:"gt=0"`
	Recipe           string          `json:"recipe,omitempty"`
	AlternateRecipes []string        `json:"alternateRecipes,omitempty"`
	BuildingCount    float64         `json:"buildingCount,omitempty"`
	ProducedIn       string          `json:"producedIn,omitempty"`
	Ingredients      []*PlanDocument `json:"ingredients,omitempty"`
}

// NewPlanDocument converts a plan tree to its document form.
// Rates and building counts are rounded to digits fractional digits;
// pass FullPrecision to keep them untouched. A positive value that would
// round to zero is kept unrounded so the document still parses with Node.
func NewPlanDocument(node PlanNode, digits int) *PlanDocument {
	if node == nil {
		return nil
	}

	round := func(v float64) float64 {
		if digits < 0 {
			return v
		}
		if rounded := utils.Round(v, digits); rounded != 0 || v == 0 {
			return rounded
		}
		return v
	}

	switch n := node.(type) {
	case LeafNode:
		return &PlanDocument{Item: n.Item, Amount: round(n.Amount)}
	case ProducedNode:
		doc := &PlanDocument{
			Item:             n.Item,
			Amount:           round(n.Amount),
			Recipe:           n.Recipe,
			AlternateRecipes: append([]string{}, n.AlternateRecipes...),
			BuildingCount:    round(n.BuildingCount),
			ProducedIn:       n.ProducedIn,
		}
		if len(n.Ingredients) > 0 {
			doc.Ingredients = make([]*PlanDocument, len(n.Ingredients))
			for i, child := range n.Ingredients {
				doc.Ingredients[i] = NewPlanDocument(child, digits)
			}
		}
		return doc
	default:
		return nil
	}
}

// Node rebuilds the plan tree described by the document.
// A document with a recipe becomes a ProducedNode, otherwise a LeafNode.
func (d *PlanDocument) Node() (PlanNode, error) {
	return d.node(nil)
}

func (d *PlanDocument) node(path []int) (PlanNode, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: missing node at path %v", ErrInvalidPlan, path)
	}
	if d.Item == "" {
		return nil, fmt.Errorf("%w: node at path %v has no item", ErrInvalidPlan, path)
	}
	if !isPositiveFinite(d.Amount) {
		return nil, fmt.Errorf("%w: node '%s' at path %v has amount %v", ErrInvalidPlan, d.Item, path, d.Amount)
	}

	if d.Recipe == "" {
		if len(d.Ingredients) > 0 {
			return nil, fmt.Errorf("%w: node '%s' at path %v has ingredients but no recipe", ErrInvalidPlan, d.Item, path)
		}
		return LeafNode{Item: d.Item, Amount: d.Amount}, nil
	}

	if !isPositiveFinite(d.BuildingCount) {
		return nil, fmt.Errorf("%w: node '%s' at path %v has building count %v", ErrInvalidPlan, d.Item, path, d.BuildingCount)
	}

	node := ProducedNode{
		Item:             d.Item,
		Amount:           d.Amount,
		Recipe:           d.Recipe,
		AlternateRecipes: append([]string{}, d.AlternateRecipes...),
		BuildingCount:    d.BuildingCount,
		ProducedIn:       d.ProducedIn,
	}
	if len(d.Ingredients) > 0 {
		node.Ingredients = make([]PlanNode, len(d.Ingredients))
		for i, child := range d.Ingredients {
			childPath := append(append([]int{}, path...), i)
			n, err := child.node(childPath)
			if err != nil {
				return nil, err
			}
			node.Ingredients[i] = n
		}
	}
	return node, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ValidAmount reports whether amount is a usable production rate
func ValidAmount(amount float64) bool {
	return isPositiveFinite(amount)
}
