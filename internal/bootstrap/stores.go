package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FactoryPlanner_Go/internal/blobstore"
	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/database/postgres"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// Stores holds the persistence adapters used by the plan service
type Stores struct {
	Plans     repository.Plan
	Documents repository.PlanDocuments
}

// InitializeStores creates the metadata repository and the plan document store.
// Without object storage credentials documents are kept in memory.
func InitializeStores(cfg *config.Config, dbPool *pgxpool.Pool) (*Stores, error) {
	docs, err := newDocumentStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Stores{
		Plans:     postgres.NewPlanRepository(dbPool),
		Documents: docs,
	}, nil
}

func newDocumentStore(cfg *config.Config) (repository.PlanDocuments, error) {
	if !cfg.BlobStoreEnabled() {
		slog.Warn(LogMsgBlobStoreInMemory)
		return blobstore.NewMemoryStore(), nil
	}

	store, err := blobstore.NewS3Store(blobstore.S3Config{
		Endpoint:  cfg.BlobEndpoint,
		AccessKey: cfg.BlobAccessKey,
		SecretKey: cfg.BlobSecretKey,
		Bucket:    cfg.BlobBucket,
		UseSSL:    cfg.BlobUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateBlobFS, err)
	}
	slog.Info(LogMsgBlobStoreEnabled, "endpoint", cfg.BlobEndpoint, "bucket", cfg.BlobBucket)
	return store, nil
}

// LoadCatalog reads and validates the recipe dataset named by the configuration
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"version", c.Version(),
		"recipes", c.RecipeCount(),
		"items", len(c.ProducibleItems()))
	return c, nil
}
