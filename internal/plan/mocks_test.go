package plan

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) DeletePlan(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlanRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockPlanRepository) ListMostViewed(ctx context.Context, limit int) ([]domain.Plan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ExistingPlanIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPlanRepository) BeginTx(ctx context.Context) (repository.PlanTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PlanTx), args.Error(1)
}

type MockPlanTx struct {
	mock.Mock
}

func (m *MockPlanTx) InsertPlan(ctx context.Context, plan *domain.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockPlanTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPlanTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockDocuments struct {
	mock.Mock
}

func (m *MockDocuments) PutDocument(ctx context.Context, id string, doc *domain.PlanDocument) error {
	return m.Called(ctx, id, doc).Error(0)
}

func (m *MockDocuments) GetDocument(ctx context.Context, id string) (*domain.PlanDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanDocument), args.Error(1)
}

func (m *MockDocuments) DeleteDocument(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocuments) ListDocuments(ctx context.Context) ([]repository.DocumentInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DocumentInfo), args.Error(1)
}
