package repository

import (
	"context"
	"time"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Plan defines the interface for saved plan metadata persistence
type Plan interface {
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	DeletePlan(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (int, error)
	ListMostViewed(ctx context.Context, limit int) ([]domain.Plan, error)
	// ExistingPlanIDs reports which of ids have a metadata row
	ExistingPlanIDs(ctx context.Context, ids []string) (map[string]bool, error)
	// BeginTx starts a transaction for saving a plan
	BeginTx(ctx context.Context) (PlanTx, error)
}

// PlanTx defines the interface for plan transactions
type PlanTx interface {
	Tx
	InsertPlan(ctx context.Context, plan *domain.Plan) error
}

// PlanDocuments defines the interface for plan tree storage
type PlanDocuments interface {
	PutDocument(ctx context.Context, id string, doc *domain.PlanDocument) error
	GetDocument(ctx context.Context, id string) (*domain.PlanDocument, error)
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context) ([]DocumentInfo, error)
}

// DocumentInfo identifies a stored plan document and when it was last written
type DocumentInfo struct {
	ID         string
	ModifiedAt time.Time
}
