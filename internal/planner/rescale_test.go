package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func flatten(tree domain.PlanNode) []domain.PlanNode {
	var nodes []domain.PlanNode
	walk(tree, nil, func(node, _ domain.PlanNode) {
		nodes = append(nodes, node)
	})
	return nodes
}

func TestRescale_Linear(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Reinforced Iron Plate", 5, nil)
	require.NoError(t, err)

	scaled, err := Rescale(tree, 12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, scaled.Rate())

	before := flatten(tree)
	after := flatten(scaled)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ItemName(), after[i].ItemName())
		assert.InDelta(t, before[i].Rate()*2.5, after[i].Rate(), 1e-9)
		if b, ok := before[i].(domain.ProducedNode); ok {
			a := after[i].(domain.ProducedNode)
			assert.InDelta(t, b.BuildingCount*2.5, a.BuildingCount, 1e-9)
			assert.Equal(t, b.Recipe, a.Recipe)
			assert.Equal(t, b.AlternateRecipes, a.AlternateRecipes)
			assert.Equal(t, b.ProducedIn, a.ProducedIn)
		}
	}

	// matches a fresh resolution at the new amount
	fresh, err := r.Resolve("Reinforced Iron Plate", 12.5, nil)
	require.NoError(t, err)
	for i, node := range flatten(fresh) {
		assert.InDelta(t, node.Rate(), after[i].Rate(), 1e-9)
	}
}

func TestRescale_RoundTrip(t *testing.T) {
	r, _ := newTestResolver(t)

	tree, err := r.Resolve("Reinforced Iron Plate", 3, domain.RecipeOverrides{"Screw": "Alternate: Cast Screw"})
	require.NoError(t, err)

	up, err := Rescale(tree, 7)
	require.NoError(t, err)
	back, err := Rescale(up, 3)
	require.NoError(t, err)

	before := flatten(tree)
	for i, node := range flatten(back) {
		assert.InDelta(t, before[i].Rate(), node.Rate(), 1e-9)
	}
	assert.Equal(t, 3.0, back.Rate())
}

func TestRescale_Leaf(t *testing.T) {
	scaled, err := Rescale(domain.LeafNode{Item: "Iron Ore", Amount: 30}, 45)
	require.NoError(t, err)
	assert.Equal(t, domain.LeafNode{Item: "Iron Ore", Amount: 45}, scaled)
}

func TestRescale_Errors(t *testing.T) {
	leaf := domain.LeafNode{Item: "Iron Ore", Amount: 30}

	for _, amount := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		_, err := Rescale(leaf, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}

	_, err := Rescale(nil, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	_, err = Rescale(domain.LeafNode{Item: "Iron Ore"}, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}
