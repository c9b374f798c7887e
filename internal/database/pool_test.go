package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/FactoryPlanner_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func testPoolConfig(maxConns int) PoolConfig {
	return PoolConfig{MaxConns: maxConns, MaxIdleTime: time.Minute, MaxLifetime: 5 * time.Minute}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	pool, err := NewPool(context.Background(), "://not a url", testPoolConfig(1))

	assert.Nil(t, pool)
	assert.ErrorContains(t, err, ErrMsgFailedToParseConnString)
}

// requireDB skips integration tests when no container is available and
// returns a migrated pool capped at maxConns
func requireDB(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, testPoolConfig(maxConns))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(ctx, pool))
	return pool
}

const insertTestPlan = `INSERT INTO plans (plan_id, plan_name, product, amount) VALUES ($1, $2, $3, $4)`

func TestMigrate_CreatesPlansTable(t *testing.T) {
	pool := requireDB(t, 5)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool), "migrations must be idempotent")

	var exists bool
	err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'plans')").Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMigrate_PlanConstraints(t *testing.T) {
	pool := requireDB(t, 5)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		id := "00000000-0000-0000-0000-00000000a001"
		_, err := pool.Exec(ctx, insertTestPlan, id, "Plates", "Iron Plate", 30.0)
		require.NoError(t, err)

		var overrides string
		var views int
		var public bool
		err = pool.QueryRow(ctx, "SELECT overrides::text, views, is_public FROM plans WHERE plan_id = $1", id).Scan(&overrides, &views, &public)
		require.NoError(t, err)
		assert.Equal(t, "{}", overrides)
		assert.Zero(t, views)
		assert.False(t, public)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := pool.Exec(ctx, insertTestPlan, "00000000-0000-0000-0000-00000000a002", "Nothing", "Iron Plate", 0.0)
		assert.Error(t, err)
	})
}

func TestPool_ReleasesConnections(t *testing.T) {
	pool := requireDB(t, 5)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"plan count", "SELECT count(*) FROM plans", false},
		{"missing table", "SELECT count(*) FROM nonexistent_table_xyz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				conn, err := pool.Acquire(ctx)
				require.NoError(t, err)

				var n int
				err = conn.QueryRow(ctx, tt.query).Scan(&n)
				conn.Release()

				if tt.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			}
			assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
		})
	}
}

func TestPool_MaxConnsEnforced(t *testing.T) {
	maxConns := 3
	pool := requireDB(t, maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conns := make([]*pgxpool.Conn, maxConns)
	for i := range conns {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		conns[i] = conn
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	shortCtx, shortCancel := context.WithTimeout(ctx, 100*time.Millisecond)
	_, err := pool.Acquire(shortCtx)
	shortCancel()
	assert.Error(t, err, "acquire must fail while the pool is exhausted")

	conns[0].Release()
	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn.Release()

	for _, c := range conns[1:] {
		c.Release()
	}
}

// TestPool_ConcurrentViewIncrements bumps one plan's view counter from many goroutines
func TestPool_ConcurrentViewIncrements(t *testing.T) {
	pool := requireDB(t, 10)
	ctx := context.Background()

	id := "00000000-0000-0000-0000-00000000b001"
	_, err := pool.Exec(ctx, insertTestPlan, id, "Popular", "Reinforced Iron Plate", 5.0)
	require.NoError(t, err)

	checker := leaktest.NewGoroutineChecker(t)

	const viewers = 20
	var wg sync.WaitGroup
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := pool.Exec(ctx, "UPDATE plans SET views = views + 1 WHERE plan_id = $1", id); err != nil {
				t.Errorf("increment failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var views int
	require.NoError(t, pool.QueryRow(ctx, "SELECT views FROM plans WHERE plan_id = $1", id).Scan(&views))
	assert.Equal(t, viewers, views)
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())

	checker.Check(2)
}
