// Package testutil starts throwaway PostgreSQL instances for integration tests.
package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
)

const (
	postgresImage = "postgres:16-alpine"
	dbName        = "sabbath_lessons"
	dbUser        = "user"
	dbPwd         = "password"
)

// StartPostgres runs a PostgreSQL container with the schema applied and
// returns a pool connected to it. The test is skipped in -short mode or when
// no container runtime is reachable.
func StartPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %v", err)
	}

	db, err := sqlx.Connect("pgx", connStr)
	if err != nil {
		t.Fatalf("connect to postgres: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(ctx, db.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
