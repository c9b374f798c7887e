package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/plan"
)

// SavePlanRequest stores a plan under a name
type SavePlanRequest struct {
	Name        string                 `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string                 `json:"description" validate:"max=1000"`
	Creator     string                 `json:"creator" validate:"max=100,excludesall=\x00\n\r\t"`
	IsPublic    bool                   `json:"is_public"`
	Overrides   domain.RecipeOverrides `json:"overrides,omitempty"`
	Plan        *domain.PlanDocument   `json:"plan" validate:"required"`
}

// MostViewedResponse lists saved plans by popularity
type MostViewedResponse struct {
	Plans []domain.Plan `json:"plans"`
}

// SavedPlanHandler serves the saved plan endpoints
type SavedPlanHandler struct {
	service plan.Service
}

// NewSavedPlanHandler creates a new saved plan handler
func NewSavedPlanHandler(service plan.Service) *SavedPlanHandler {
	return &SavedPlanHandler{service: service}
}

// HandleSave stores a plan
// @Summary Save plan
// @Tags saved-plans
// @Accept json
// @Produce json
// @Param request body SavePlanRequest true "Plan and metadata"
// @Success 201 {object} domain.Plan
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/plans [post]
func (h *SavedPlanHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req SavePlanRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSavePlan); err != nil {
		return
	}

	saved, err := h.service.SavePlan(r.Context(), plan.SaveRequest{
		Name:        req.Name,
		Description: req.Description,
		Creator:     req.Creator,
		IsPublic:    req.IsPublic,
		Overrides:   req.Overrides,
		Plan:        req.Plan,
	})
	if err != nil {
		respondServiceError(w, r, OpSavePlan, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// HandleGet returns a saved plan and counts the view
// @Summary Get saved plan
// @Tags saved-plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} plan.SavedPlan
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plans/{id} [get]
func (h *SavedPlanHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := planIDParam(w, r)
	if !ok {
		return
	}

	saved, err := h.service.GetPlan(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetPlan, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// HandleDelete removes a saved plan
// @Summary Delete saved plan
// @Tags saved-plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plans/{id} [delete]
func (h *SavedPlanHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := planIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePlan(r.Context(), id); err != nil {
		respondServiceError(w, r, OpDeletePlan, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlanDeletedSuccess})
}

// HandleMostViewed lists public plans by view count
// @Summary Most viewed plans
// @Tags saved-plans
// @Produce json
// @Param limit query int false "Maximum number of plans"
// @Success 200 {object} MostViewedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/plans/most-viewed [get]
func (h *SavedPlanHandler) HandleMostViewed(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}

	plans, err := h.service.MostViewed(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, OpMostViewed, err)
		return
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	respondJSON(w, http.StatusOK, MostViewedResponse{Plans: plans})
}

// HandleCacheStats returns plan document cache statistics
// GET /api/v1/admin/cache/stats
// @Summary Get plan cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} plan.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *SavedPlanHandler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.CacheStats())
}

func planIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		logger.FromContext(r.Context()).Warn("Missing plan id")
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
		return "", false
	}
	return id, true
}
