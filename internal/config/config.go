package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for authentication

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honoured
	TrustedProxies []string

	// Per-IP request budget enforced by the server
	RateLimitWindow   time.Duration
	RateLimitRequests int

	// Database
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Planner
	CatalogPath    string
	RoundingDigits int
	MaxDepth       int
	MinPlanAmount  float64
	MaxPlanAmount  float64

	// Plan document store and cache
	BlobEndpoint  string
	BlobAccessKey string
	BlobSecretKey string
	BlobBucket    string
	BlobUseSSL    bool
	PlanCacheSize int
	PlanCacheTTL  time.Duration

	// Background sweep of plan documents without metadata; an interval of 0 disables it
	OrphanSweepInterval time.Duration
	OrphanSweepMinAge   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES"),

		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "factoryplanner"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogPath:    getEnv("CATALOG_PATH", ConfigPathRecipes),
		RoundingDigits: getEnvAsInt("PLAN_ROUNDING_DIGITS", DefaultRoundingDigits),
		MaxDepth:       getEnvAsInt("PLAN_MAX_DEPTH", DefaultMaxDepth),
		MinPlanAmount:  getEnvAsFloat("MIN_PLAN_AMOUNT", DefaultMinPlanAmount),
		MaxPlanAmount:  getEnvAsFloat("MAX_PLAN_AMOUNT", DefaultMaxPlanAmount),

		BlobEndpoint:  getEnv("BLOB_ENDPOINT", "localhost:9000"),
		BlobAccessKey: getEnv("BLOB_ACCESS_KEY", ""),
		BlobSecretKey: getEnv("BLOB_SECRET_KEY", ""),
		BlobBucket:    getEnv("BLOB_BUCKET", DefaultBlobBucket),
		BlobUseSSL:    getEnvAsBool("BLOB_USE_SSL", false),
		PlanCacheSize: getEnvAsInt("PLAN_CACHE_SIZE", DefaultPlanCacheSize),
		PlanCacheTTL:  getEnvAsDuration("PLAN_CACHE_TTL", DefaultPlanCacheTTL),

		OrphanSweepInterval: getEnvAsDuration("ORPHAN_SWEEP_INTERVAL", DefaultOrphanSweepInterval),
		OrphanSweepMinAge:   getEnvAsDuration("ORPHAN_SWEEP_MIN_AGE", DefaultOrphanSweepMinAge),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.MaxPlanAmount <= 0 {
		return nil, fmt.Errorf("MAX_PLAN_AMOUNT must be positive, got %v", cfg.MaxPlanAmount)
	}
	if cfg.MinPlanAmount <= 0 || cfg.MinPlanAmount > cfg.MaxPlanAmount {
		return nil, fmt.Errorf("MIN_PLAN_AMOUNT must be positive and at most MAX_PLAN_AMOUNT, got %v", cfg.MinPlanAmount)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back on parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice splits a comma separated environment variable, dropping empty entries
func getEnvAsSlice(key string) []string {
	var values []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// getEnvAsDuration retrieves a duration environment variable such as "10m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// BlobStoreEnabled reports whether credentials for the plan document store are configured
func (c *Config) BlobStoreEnabled() bool {
	return c.BlobAccessKey != "" && c.BlobSecretKey != ""
}
