package handler

import (
	"net/http"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/plan"
)

// GeneratePlanRequest asks for a new plan producing amount items per minute
type GeneratePlanRequest struct {
	Item      string                 `json:"item" validate:"required,max=200,excludesall=\x00\n\r\t"`
	Amount    float64                `json:"amount" validate:"planamount"`
	Overrides domain.RecipeOverrides `json:"overrides,omitempty"`
}

// SwapRecipeRequest changes the recipe of the node found by following path from the root
type SwapRecipeRequest struct {
	Plan      *domain.PlanDocument   `json:"plan" validate:"required"`
	Path      []int                  `json:"path"`
	Recipe    string                 `json:"recipe" validate:"required,max=200"`
	Overrides domain.RecipeOverrides `json:"overrides,omitempty"`
}

// RescalePlanRequest rescales an existing plan to a new root amount
type RescalePlanRequest struct {
	Plan   *domain.PlanDocument `json:"plan" validate:"required"`
	Amount float64              `json:"amount" validate:"planamount"`
}

// SummaryRequest carries a plan to aggregate
type SummaryRequest struct {
	Plan *domain.PlanDocument `json:"plan" validate:"required"`
}

// PlanHandler serves the stateless planning endpoints
type PlanHandler struct {
	service plan.Service
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(service plan.Service) *PlanHandler {
	return &PlanHandler{service: service}
}

// HandleGenerate resolves a new plan
// @Summary Generate plan
// @Description Resolves the production tree for an item at a target rate per minute
// @Tags plans
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Item, amount and recipe overrides"
// @Success 200 {object} plan.Result
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/plans/generate [post]
func (h *PlanHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpGeneratePlan); err != nil {
		return
	}

	result, err := h.service.Generate(r.Context(), req.Item, req.Amount, req.Overrides)
	if err != nil {
		respondServiceError(w, r, OpGeneratePlan, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleSwap swaps the recipe of one node and re-resolves its subtree
// @Summary Swap recipe
// @Description Replaces the recipe of the node at path; siblings and unrelated branches are untouched
// @Tags plans
// @Accept json
// @Produce json
// @Param request body SwapRecipeRequest true "Plan, node path and new recipe"
// @Success 200 {object} plan.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/plans/swap [post]
func (h *PlanHandler) HandleSwap(w http.ResponseWriter, r *http.Request) {
	var req SwapRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSwapRecipe); err != nil {
		return
	}

	result, err := h.service.Swap(r.Context(), req.Plan, req.Path, req.Recipe, req.Overrides)
	if err != nil {
		respondServiceError(w, r, OpSwapRecipe, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleRescale scales every rate of a plan
// @Summary Rescale plan
// @Tags plans
// @Accept json
// @Produce json
// @Param request body RescalePlanRequest true "Plan and new root amount"
// @Success 200 {object} plan.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/plans/rescale [post]
func (h *PlanHandler) HandleRescale(w http.ResponseWriter, r *http.Request) {
	var req RescalePlanRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRescalePlan); err != nil {
		return
	}

	result, err := h.service.Rescale(r.Context(), req.Plan, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpRescalePlan, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleSummary aggregates a plan
// @Summary Summarize plan
// @Description Totals per item, raw resources, shared intermediates and buildings per type
// @Tags plans
// @Accept json
// @Produce json
// @Param request body SummaryRequest true "Plan"
// @Success 200 {object} planner.Summary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/plans/summary [post]
func (h *PlanHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSummarize); err != nil {
		return
	}

	summary, err := h.service.Summarize(r.Context(), req.Plan)
	if err != nil {
		respondServiceError(w, r, OpSummarize, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
