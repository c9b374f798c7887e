package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/plan"
	"github.com/osse101/FactoryPlanner_Go/internal/planner"
)

// MockPlanService mocks plan.Service
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Generate(ctx context.Context, item string, amount float64, overrides domain.RecipeOverrides) (*plan.Result, error) {
	args := m.Called(ctx, item, amount, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Result), args.Error(1)
}

func (m *MockPlanService) Swap(ctx context.Context, doc *domain.PlanDocument, path []int, recipe string, overrides domain.RecipeOverrides) (*plan.Result, error) {
	args := m.Called(ctx, doc, path, recipe, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Result), args.Error(1)
}

func (m *MockPlanService) Rescale(ctx context.Context, doc *domain.PlanDocument, amount float64) (*plan.Result, error) {
	args := m.Called(ctx, doc, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Result), args.Error(1)
}

func (m *MockPlanService) Summarize(ctx context.Context, doc *domain.PlanDocument) (*planner.Summary, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.Summary), args.Error(1)
}

func (m *MockPlanService) SavePlan(ctx context.Context, req plan.SaveRequest) (*domain.Plan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, id string) (*plan.SavedPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.SavedPlan), args.Error(1)
}

func (m *MockPlanService) DeletePlan(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlanService) MostViewed(ctx context.Context, limit int) ([]domain.Plan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanService) CacheStats() plan.CacheStats {
	return m.Called().Get(0).(plan.CacheStats)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
