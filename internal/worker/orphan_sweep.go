package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// PlanIndex answers which plan ids have stored metadata
type PlanIndex interface {
	ExistingPlanIDs(ctx context.Context, ids []string) (map[string]bool, error)
}

// DocumentStore is the part of the plan document store the sweep needs
type DocumentStore interface {
	ListDocuments(ctx context.Context) ([]repository.DocumentInfo, error)
	DeleteDocument(ctx context.Context, id string) error
}

// OrphanSweepJob removes plan documents whose metadata row does not exist.
// Saving writes the document before committing metadata, so a failed commit
// whose cleanup also failed leaves an orphan behind. Documents younger than
// minAge are skipped to stay clear of saves still in flight.
type OrphanSweepJob struct {
	plans  PlanIndex
	docs   DocumentStore
	minAge time.Duration
	now    func() time.Time
}

// NewOrphanSweepJob creates a sweep over docs checked against plans
func NewOrphanSweepJob(plans PlanIndex, docs DocumentStore, minAge time.Duration) *OrphanSweepJob {
	return &OrphanSweepJob{
		plans:  plans,
		docs:   docs,
		minAge: minAge,
		now:    time.Now,
	}
}

// Process runs one sweep
func (j *OrphanSweepJob) Process(ctx context.Context) error {
	removed, checked, err := j.sweep(ctx)
	metrics.PlanDocumentsSwept.Add(float64(removed))
	metrics.ObserveStoreOperation(metrics.OperationSweep, err)

	logger.FromContext(ctx).Info(LogMsgOrphanSweepCompleted, "checked", checked, "removed", removed)
	return err
}

func (j *OrphanSweepJob) sweep(ctx context.Context) (removed, checked int, err error) {
	infos, err := j.docs.ListDocuments(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list plan documents: %w", err)
	}

	cutoff := j.now().Add(-j.minAge)
	candidates := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.ModifiedAt.After(cutoff) {
			candidates = append(candidates, info.ID)
		}
	}

	var errs []error
	for start := 0; start < len(candidates); start += sweepBatchSize {
		batch := candidates[start:min(start+sweepBatchSize, len(candidates))]

		existing, err := j.plans.ExistingPlanIDs(ctx, batch)
		if err != nil {
			return removed, checked, errors.Join(append(errs, fmt.Errorf("look up plan ids: %w", err))...)
		}
		checked += len(batch)

		for _, id := range batch {
			if existing[id] {
				continue
			}
			if err := j.docs.DeleteDocument(ctx, id); err != nil {
				logger.FromContext(ctx).Warn(LogMsgOrphanDeleteFailed, "plan_id", id, "error", err)
				errs = append(errs, err)
				continue
			}
			removed++
		}
	}

	return removed, checked, errors.Join(errs...)
}
