package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
	"github.com/osse101/FactoryPlanner_Go/internal/planner"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// Catalog defines the catalog lookups the plan service needs
type Catalog interface {
	planner.Catalog
	CanonicalItem(name string) (string, bool)
}

// Result is a plan tree returned to clients along with its overrides and summary
type Result struct {
	Plan      *domain.PlanDocument   `json:"plan"`
	Overrides domain.RecipeOverrides `json:"overrides,omitempty"`
	Summary   planner.Summary        `json:"summary"`
}

// SaveRequest describes a plan to store
type SaveRequest struct {
	Name        string
	Description string
	Creator     string
	IsPublic    bool
	Overrides   domain.RecipeOverrides
	Plan        *domain.PlanDocument
}

// SavedPlan is stored metadata together with its tree
type SavedPlan struct {
	domain.Plan
	Document *domain.PlanDocument `json:"plan"`
}

// Service defines the interface for planning operations
type Service interface {
	Generate(ctx context.Context, item string, amount float64, overrides domain.RecipeOverrides) (*Result, error)
	Swap(ctx context.Context, doc *domain.PlanDocument, path []int, recipe string, overrides domain.RecipeOverrides) (*Result, error)
	Rescale(ctx context.Context, doc *domain.PlanDocument, amount float64) (*Result, error)
	Summarize(ctx context.Context, doc *domain.PlanDocument) (*planner.Summary, error)

	SavePlan(ctx context.Context, req SaveRequest) (*domain.Plan, error)
	GetPlan(ctx context.Context, id string) (*SavedPlan, error)
	DeletePlan(ctx context.Context, id string) error
	MostViewed(ctx context.Context, limit int) ([]domain.Plan, error)
	CacheStats() CacheStats
}

// Config holds plan service settings
type Config struct {
	RoundingDigits int
	Cache          CacheConfig
}

type service struct {
	resolver *planner.Resolver
	catalog  Catalog
	repo     repository.Plan
	docs     repository.PlanDocuments
	cache    *documentCache
	digits   int
}

// NewService creates a new plan service
func NewService(resolver *planner.Resolver, catalog Catalog, repo repository.Plan, docs repository.PlanDocuments, config Config) Service {
	return &service{
		resolver: resolver,
		catalog:  catalog,
		repo:     repo,
		docs:     docs,
		cache:    newDocumentCache(config.Cache),
		digits:   config.RoundingDigits,
	}
}

// Generate resolves a new plan for amount items per minute of item
func (s *service) Generate(ctx context.Context, item string, amount float64, overrides domain.RecipeOverrides) (result *Result, err error) {
	start := time.Now()
	defer func() { metrics.ObservePlannerOperation(metrics.OperationGenerate, start, err) }()
	log := logger.FromContext(ctx)

	if canonical, ok := s.catalog.CanonicalItem(item); ok {
		item = canonical
	}

	tree, err := s.resolver.Resolve(item, amount, overrides)
	if err != nil {
		log.Warn("Failed to resolve plan", "item", item, "amount", amount, "error", err)
		return nil, err
	}

	result = s.newResult(tree, overrides)
	log.Info(LogMsgPlanGenerated, "item", item, "amount", amount, "nodes", result.Summary.NodeCount)
	return result, nil
}

// Swap changes the recipe of the node at path and re-resolves its subtree
func (s *service) Swap(ctx context.Context, doc *domain.PlanDocument, path []int, recipe string, overrides domain.RecipeOverrides) (result *Result, err error) {
	start := time.Now()
	defer func() { metrics.ObservePlannerOperation(metrics.OperationSwap, start, err) }()
	log := logger.FromContext(ctx)

	tree, err := doc.Node()
	if err != nil {
		return nil, err
	}

	swapped, next, err := s.resolver.Swap(tree, path, recipe, overrides)
	if err != nil {
		log.Warn("Failed to swap recipe", "path", path, "recipe", recipe, "error", err)
		return nil, err
	}

	result = s.newResult(swapped, next)
	log.Info(LogMsgPlanSwapped, "item", tree.ItemName(), "path", path, "recipe", recipe)
	return result, nil
}

// Rescale multiplies every rate of the plan so the root produces amount
func (s *service) Rescale(ctx context.Context, doc *domain.PlanDocument, amount float64) (result *Result, err error) {
	start := time.Now()
	defer func() { metrics.ObservePlannerOperation(metrics.OperationRescale, start, err) }()

	tree, err := doc.Node()
	if err != nil {
		return nil, err
	}

	scaled, err := planner.Rescale(tree, amount)
	if err != nil {
		return nil, err
	}

	result = s.newResult(scaled, nil)
	logger.FromContext(ctx).Info(LogMsgPlanRescaled, "item", tree.ItemName(), "from", tree.Rate(), "to", amount)
	return result, nil
}

// Summarize aggregates an existing plan
func (s *service) Summarize(ctx context.Context, doc *domain.PlanDocument) (summary *planner.Summary, err error) {
	start := time.Now()
	defer func() { metrics.ObservePlannerOperation(metrics.OperationSummary, start, err) }()

	tree, err := doc.Node()
	if err != nil {
		return nil, err
	}
	out := planner.Summarize(tree, s.catalog.IsRawResource).Rounded(s.digits)
	return &out, nil
}

func (s *service) newResult(tree domain.PlanNode, overrides domain.RecipeOverrides) *Result {
	summary := planner.Summarize(tree, s.catalog.IsRawResource)
	metrics.PlanNodes.Observe(float64(summary.NodeCount))
	return &Result{
		Plan:      domain.NewPlanDocument(tree, s.digits),
		Overrides: overrides,
		Summary:   summary.Rounded(s.digits),
	}
}

// SavePlan stores the metadata and the tree of a plan.
// The metadata row is only committed once the tree is stored.
func (s *service) SavePlan(ctx context.Context, req SaveRequest) (saved *domain.Plan, err error) {
	defer func() { metrics.ObserveStoreOperation(metrics.OperationSave, err) }()
	log := logger.FromContext(ctx)

	tree, err := req.Plan.Node()
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: plan name is required", domain.ErrInvalidInput)
	}

	plan := &domain.Plan{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Product:     tree.ItemName(),
		Amount:      tree.Rate(),
		Overrides:   req.Overrides,
		IsPublic:    req.IsPublic,
		Creator:     strings.TrimSpace(req.Creator),
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertPlan(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.docs.PutDocument(ctx, plan.ID, req.Plan); err != nil {
		log.Error("Failed to store plan document", "plan_id", plan.ID, "error", err)
		return nil, fmt.Errorf("failed to store plan document: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		if delErr := s.docs.DeleteDocument(ctx, plan.ID); delErr != nil {
			log.Warn("Failed to remove orphaned plan document", "plan_id", plan.ID, "error", delErr)
		}
		return nil, fmt.Errorf("%w: failed to commit plan: %v", domain.ErrDatabaseError, err)
	}

	s.cache.Set(plan.ID, req.Plan)
	log.Info(LogMsgPlanSaved, "plan_id", plan.ID, "product", plan.Product, "amount", plan.Amount)
	return plan, nil
}

// GetPlan returns a saved plan and counts the view
func (s *service) GetPlan(ctx context.Context, id string) (saved *SavedPlan, err error) {
	defer func() { metrics.ObserveStoreOperation(metrics.OperationGet, err) }()

	if err := validatePlanID(id); err != nil {
		return nil, err
	}

	meta, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, ok := s.cache.Get(id)
	if !ok {
		doc, err = s.docs.GetDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		s.cache.Set(id, doc)
	}

	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		// the plan was read successfully, a lost view is not worth failing the request
		logger.FromContext(ctx).Warn("Failed to increment plan views", "plan_id", id, "error", err)
	} else {
		meta.Views = views
	}

	return &SavedPlan{Plan: *meta, Document: doc}, nil
}

// DeletePlan removes a saved plan and its tree
func (s *service) DeletePlan(ctx context.Context, id string) (err error) {
	defer func() { metrics.ObserveStoreOperation(metrics.OperationDelete, err) }()

	if err := validatePlanID(id); err != nil {
		return err
	}
	if err := s.repo.DeletePlan(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	if err := s.docs.DeleteDocument(ctx, id); err != nil && !errors.Is(err, domain.ErrPlanNotFound) {
		logger.FromContext(ctx).Warn("Failed to delete plan document", "plan_id", id, "error", err)
	}
	logger.FromContext(ctx).Info(LogMsgPlanDeleted, "plan_id", id)
	return nil
}

// MostViewed lists public plans by view count
func (s *service) MostViewed(ctx context.Context, limit int) (plans []domain.Plan, err error) {
	defer func() { metrics.ObserveStoreOperation(metrics.OperationList, err) }()

	if limit <= 0 {
		limit = DefaultMostViewedLimit
	}
	if limit > MaxMostViewedLimit {
		limit = MaxMostViewedLimit
	}
	return s.repo.ListMostViewed(ctx, limit)
}

// CacheStats reports plan document cache usage
func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

func validatePlanID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: '%s'", domain.ErrPlanNotFound, id)
	}
	return nil
}
