package domain

// PlanNode is one node of a production plan tree.
// It is either a LeafNode (raw resource, no recipe) or a ProducedNode.
// Trees are treated as immutable values: operations return new trees and
// may share untouched subtrees with their input.
type PlanNode interface {
	ItemName() string
	Rate() float64
	Children() []PlanNode
	isPlanNode()
}

// LeafNode is a raw resource with no chosen recipe
type LeafNode struct {
	Item   string
	Amount float64
}

func (n LeafNode) ItemName() string     { return n.Item }
func (n LeafNode) Rate() float64        { return n.Amount }
func (n LeafNode) Children() []PlanNode { return nil }
func (LeafNode) isPlanNode()            {}

// ProducedNode is an item made by a recipe in a number of buildings
type ProducedNode struct {
	Item             string
	Amount           float64
	Recipe           string
	AlternateRecipes []string
	BuildingCount    float64
	ProducedIn       string
	Ingredients      []PlanNode
}

func (n ProducedNode) ItemName() string     { return n.Item }
func (n ProducedNode) Rate() float64        { return n.Amount }
func (n ProducedNode) Children() []PlanNode { return n.Ingredients }
func (ProducedNode) isPlanNode()            {}

// CanUseRecipe reports whether recipe is the active recipe or one of the alternates
func (n ProducedNode) CanUseRecipe(recipe string) bool {
	if recipe == n.Recipe {
		return true
	}
	for _, alt := range n.AlternateRecipes {
		if alt == recipe {
			return true
		}
	}
	return false
}

// RecipeOverrides maps an item name to the recipe chosen for it.
// A resolution pass only reads it; use With to derive an updated copy.
type RecipeOverrides map[string]string

// With returns a copy of the overrides with item set to recipe
func (o RecipeOverrides) With(item, recipe string) RecipeOverrides {
	out := make(RecipeOverrides, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	out[item] = recipe
	return out
}

// Lookup returns the overriding recipe for item, if any
func (o RecipeOverrides) Lookup(item string) (string, bool) {
	if o == nil {
		return "", false
	}
	recipe, ok := o[item]
	return recipe, ok && recipe != ""
}

// CountNodes returns the number of nodes in the tree
func CountNodes(node PlanNode) int {
	if node == nil {
		return 0
	}
	count := 1
	for _, child := range node.Children() {
		count += CountNodes(child)
	}
	return count
}
