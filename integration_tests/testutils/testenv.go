package testutils

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/Black-And-White-Club/intern-dashboard/integration_tests/containers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// TestEnv is a shared Postgres container plus a verification connection that
// goes through pgx, independent of the driver under test.
type TestEnv struct {
	DSN       string
	DB        *bun.DB
	container *postgres.PostgresContainer
}

var (
	envOnce sync.Once
	env     *TestEnv
	envErr  error
)

// SetupTestEnv returns the package-wide environment, starting the container
// on first use. Tests are skipped in -short mode or without a Docker provider.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	envOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, dsn, err := containers.SetupPostgresContainer(ctx)
		if err != nil {
			envErr = err
			return
		}

		sqldb, err := sql.Open("pgx", dsn)
		if err != nil {
			container.Terminate(ctx)
			envErr = err
			return
		}
		env = &TestEnv{
			DSN:       dsn,
			DB:        bun.NewDB(sqldb, pgdialect.New()),
			container: container,
		}
	})
	if envErr != nil {
		t.Fatalf("failed to set up test environment: %v", envErr)
	}
	return env
}

// Shutdown terminates the container. Call it from TestMain.
func Shutdown(ctx context.Context) {
	if env == nil {
		return
	}
	env.DB.Close()
	env.container.Terminate(ctx)
}
