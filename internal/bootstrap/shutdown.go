package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FactoryPlanner_Go/internal/database"
	"github.com/osse101/FactoryPlanner_Go/internal/scheduler"
	"github.com/osse101/FactoryPlanner_Go/internal/server"
	"github.com/osse101/FactoryPlanner_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight requests finish
// against an open pool, then the background jobs, then closes the database pool.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkers)
		components.WorkerPool.Stop()
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
