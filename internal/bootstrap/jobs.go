package bootstrap

import (
	"log/slog"

	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/scheduler"
	"github.com/osse101/FactoryPlanner_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the orphaned document sweep.
// Both returned components must be passed to GracefulShutdown.
func StartBackgroundJobs(cfg *config.Config, stores *Stores) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(backgroundWorkers, backgroundQueueSize, worker.DefaultJobTimeout)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.OrphanSweepInterval <= 0 {
		slog.Info(LogMsgOrphanSweepDisabled)
		return pool, sched
	}

	sweep := worker.NewOrphanSweepJob(stores.Plans, stores.Documents, cfg.OrphanSweepMinAge)
	sched.Schedule(JobNameOrphanSweep, cfg.OrphanSweepInterval, sweep)
	slog.Info(LogMsgOrphanSweepScheduled,
		"interval", cfg.OrphanSweepInterval,
		"min_age", cfg.OrphanSweepMinAge)

	return pool, sched
}
