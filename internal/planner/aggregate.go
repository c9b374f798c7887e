package planner

import (
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/utils"
)

// Aggregate sums the rate and counts the occurrences of every item in tree, root included
func Aggregate(tree domain.PlanNode) map[string]domain.ItemTotal {
	totals := make(map[string]domain.ItemTotal)
	accumulate(tree, totals)
	return totals
}

func accumulate(node domain.PlanNode, totals map[string]domain.ItemTotal) {
	if node == nil {
		return
	}
	for _, child := range node.Children() {
		accumulate(child, totals)
	}
	total := totals[node.ItemName()]
	total.Amount += node.Rate()
	total.Occurrences++
	totals[node.ItemName()] = total
}

// RawResourceTotals keeps only the raw resource entries of totals
func RawResourceTotals(totals map[string]domain.ItemTotal, isRaw func(item string) bool) map[string]domain.ItemTotal {
	out := make(map[string]domain.ItemTotal)
	for item, total := range totals {
		if isRaw(item) {
			out[item] = total
		}
	}
	return out
}

// SharedProducts keeps the intermediate items that appear more than once
func SharedProducts(totals map[string]domain.ItemTotal, isRaw func(item string) bool) map[string]domain.ItemTotal {
	out := make(map[string]domain.ItemTotal)
	for item, total := range totals {
		if !isRaw(item) && total.Occurrences > 1 {
			out[item] = total
		}
	}
	return out
}

// Summary is the overview shown next to a plan tree
type Summary struct {
	Totals         map[string]domain.ItemTotal `json:"totals"`
	RawResources   map[string]domain.ItemTotal `json:"rawResources"`
	SharedProducts map[string]domain.ItemTotal `json:"sharedProducts"`
	Buildings      map[string]float64          `json:"buildings"`
	NodeCount      int                         `json:"nodeCount"`
}

// Summarize aggregates tree and derives the raw, shared and building views
func Summarize(tree domain.PlanNode, isRaw func(item string) bool) Summary {
	totals := Aggregate(tree)
	buildings := make(map[string]float64)
	countBuildings(tree, buildings)

	return Summary{
		Totals:         totals,
		RawResources:   RawResourceTotals(totals, isRaw),
		SharedProducts: SharedProducts(totals, isRaw),
		Buildings:      buildings,
		NodeCount:      domain.CountNodes(tree),
	}
}

func countBuildings(node domain.PlanNode, buildings map[string]float64) {
	if node == nil {
		return
	}
	if produced, ok := node.(domain.ProducedNode); ok && produced.ProducedIn != "" {
		buildings[produced.ProducedIn] += produced.BuildingCount
	}
	for _, child := range node.Children() {
		countBuildings(child, buildings)
	}
}

// Rounded returns a copy of the summary with every value rounded to digits; digits < 0 keeps full precision
func (s Summary) Rounded(digits int) Summary {
	if digits < 0 {
		return s
	}
	roundTotals := func(in map[string]domain.ItemTotal) map[string]domain.ItemTotal {
		out := make(map[string]domain.ItemTotal, len(in))
		for item, total := range in {
			total.Amount = utils.Round(total.Amount, digits)
			out[item] = total
		}
		return out
	}
	buildings := make(map[string]float64, len(s.Buildings))
	for building, count := range s.Buildings {
		buildings[building] = utils.Round(count, digits)
	}
	return Summary{
		Totals:         roundTotals(s.Totals),
		RawResources:   roundTotals(s.RawResources),
		SharedProducts: roundTotals(s.SharedProducts),
		Buildings:      buildings,
		NodeCount:      s.NodeCount,
	}
}
