package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
)

// ProductCatalog is the read-only catalog view served by the product endpoints
type ProductCatalog interface {
	SearchProducts(query string, limit int) []string
	Products() []domain.ProductEntry
	Recipe(name string) (*domain.RecipeDefinition, bool)
}

// ProductsResponse lists item names
type ProductsResponse struct {
	Products []string `json:"products"`
}

// ProductCatalogResponse lists every product index entry
type ProductCatalogResponse struct {
	Products []domain.ProductEntry `json:"products"`
}

// ProductHandler serves catalog lookups
type ProductHandler struct {
	catalog ProductCatalog
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog ProductCatalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// HandleListProducts returns item names, optionally filtered by ?q=
// @Summary List products
// @Description Item names for autocomplete; prefix matches sort first
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive filter"
// @Param limit query int false "Maximum number of names"
// @Success 200 {object} ProductsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/products [get]
func (h *ProductHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}
	query := GetOptionalQueryParam(r, "q", "")

	respondJSON(w, http.StatusOK, ProductsResponse{Products: h.catalog.SearchProducts(query, limit)})
}

// HandleProductCatalog returns the product index with default and alternate recipes
// @Summary Product catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} ProductCatalogResponse
// @Router /api/v1/products/catalog [get]
func (h *ProductHandler) HandleProductCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ProductCatalogResponse{Products: h.catalog.Products()})
}

// HandleGetRecipe returns one recipe definition by name
// @Summary Get recipe
// @Tags catalog
// @Produce json
// @Param name path string true "Recipe name"
// @Success 200 {object} domain.RecipeDefinition
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{name} [get]
func (h *ProductHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	recipe, ok := h.catalog.Recipe(name)
	if !ok {
		logger.FromContext(r.Context()).Debug("Recipe not found", "recipe", name)
		respondError(w, http.StatusNotFound, ErrMsgRecipeNotFound)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}
