package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/FactoryPlanner_Go/docs"
	"github.com/osse101/FactoryPlanner_Go/internal/bootstrap"
	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/database"
	"github.com/osse101/FactoryPlanner_Go/internal/handler"
	"github.com/osse101/FactoryPlanner_Go/internal/plan"
	"github.com/osse101/FactoryPlanner_Go/internal/planner"
	"github.com/osse101/FactoryPlanner_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()
	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	// A corrupt recipe dataset is a data-integrity fault; refuse to start.
	recipes, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		slog.Error("Recipe catalog rejected", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Failed to apply database migrations", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	stores, err := bootstrap.InitializeStores(cfg, dbPool)
	if err != nil {
		slog.Error("Failed to initialize stores", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	resolver := planner.NewResolver(recipes, planner.WithMaxDepth(cfg.MaxDepth))
	planService := plan.NewService(resolver, recipes, stores.Plans, stores.Documents, plan.Config{
		RoundingDigits: cfg.RoundingDigits,
		Cache: plan.CacheConfig{
			Size: cfg.PlanCacheSize,
			TTL:  cfg.PlanCacheTTL,
		},
	})

	handler.SetPlanAmountBounds(cfg.MinPlanAmount, cfg.MaxPlanAmount)
	docs.SwaggerInfo.Version = cfg.Version
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateWindow:     cfg.RateLimitWindow,
		RateLimit:      cfg.RateLimitRequests,
	}, dbPool, planService, recipes, recipes.Version())

	workerPool, sched := bootstrap.StartBackgroundJobs(cfg, stores)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
		DBPool:     dbPool,
	})
}
