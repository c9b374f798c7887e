package config

import "time"

const (
	// Configuration file paths
	ConfigPathRecipes = "configs/recipes.json"

	DefaultServiceName = "factory-planner"
	DefaultBlobBucket  = "plans"

	// Database pool
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	// Planner
	DefaultRoundingDigits = 5
	DefaultMaxDepth       = 64
	DefaultMinPlanAmount  = 1.0
	DefaultMaxPlanAmount  = 50000.0

	// Plan document cache
	DefaultPlanCacheSize = 256
	DefaultPlanCacheTTL  = 10 * time.Minute

	// HTTP rate limit per client IP
	DefaultRateLimitWindow   = 5 * time.Minute
	DefaultRateLimitRequests = 1000

	// Orphaned plan document sweep
	DefaultOrphanSweepInterval = time.Hour
	DefaultOrphanSweepMinAge   = 15 * time.Minute
)
