package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

const planColumns = `plan_id::text, plan_name, description, product, amount, overrides, is_public, creator, views, created_at, updated_at`

// PlanRepository implements the saved plan repository for PostgreSQL
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

// PlanTx implements repository.PlanTx
type PlanTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *PlanRepository) BeginTx(ctx context.Context) (repository.PlanTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &PlanTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *PlanTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *PlanTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// InsertPlan stores plan metadata; CreatedAt and UpdatedAt are filled from the database
func (t *PlanTx) InsertPlan(ctx context.Context, plan *domain.Plan) error {
	overrides := plan.Overrides
	if overrides == nil {
		overrides = domain.RecipeOverrides{}
	}

	err := t.tx.QueryRow(ctx, `
		INSERT INTO plans (plan_id, plan_name, description, product, amount, overrides, is_public, creator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		plan.ID, plan.Name, plan.Description, plan.Product, plan.Amount, overrides, plan.IsPublic, plan.Creator,
	).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToInsertPlan, err)
	}
	return nil
}

// GetPlan retrieves plan metadata by id
func (r *PlanRepository) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	row := r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM plans WHERE plan_id = $1`, id)
	plan, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: '%s'", domain.ErrPlanNotFound, id)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToGetPlan, err)
	}
	return plan, nil
}

// DeletePlan removes plan metadata
func (r *PlanRepository) DeletePlan(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE plan_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToDeletePlan, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: '%s'", domain.ErrPlanNotFound, id)
	}
	return nil
}

// IncrementViews bumps the view counter and returns the new value
func (r *PlanRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	var views int
	err := r.db.QueryRow(ctx, `
		UPDATE plans SET views = views + 1
		WHERE plan_id = $1
		RETURNING views`, id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: '%s'", domain.ErrPlanNotFound, id)
		}
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToIncrementViews, err)
	}
	return views, nil
}

// ListMostViewed returns public plans ordered by views, newest first on ties
func (r *PlanRepository) ListMostViewed(ctx context.Context, limit int) ([]domain.Plan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+planColumns+` FROM plans
		WHERE is_public
		ORDER BY views DESC, created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToListPlans, err)
	}
	defer rows.Close()

	plans := make([]domain.Plan, 0, limit)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToScanPlan, err)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToIteratePlans, err)
	}
	return plans, nil
}

// ExistingPlanIDs reports which of ids have a metadata row
func (r *PlanRepository) ExistingPlanIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.db.Query(ctx, `SELECT plan_id::text FROM plans WHERE plan_id::text = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToLookupPlanIDs, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToScanPlanID, err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToIteratePlanIDs, err)
	}
	return existing, nil
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var plan domain.Plan
	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.Product,
		&plan.Amount,
		&plan.Overrides,
		&plan.IsPublic,
		&plan.Creator,
		&plan.Views,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
