// Package dbtest runs a disposable PostgreSQL container for integration tests.
//
// Tests using it are skipped in -short mode and when no container runtime is
// reachable, so the unit suite stays runnable anywhere.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/db"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// StartPostgres starts a PostgreSQL container, applies the embedded
// migrations and returns a connected DB. Everything is torn down through
// t.Cleanup.
func StartPostgres(t *testing.T) *db.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "accounts",
		},
		// postgres logs readiness twice: once for the init run, once for the real server.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to get postgres host")

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err, "failed to get postgres port")

	cfg := config.DatabaseConfig{
		Host:            host,
		Port:            port.Port(),
		User:            "postgres",
		Password:        "postgres",
		DBName:          "accounts",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, db.Migrate(cfg.URL(), logger), "failed to migrate test database")

	database, err := db.Connect(ctx, &cfg, logger)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// Truncate removes every account and resets the id sequence.
func Truncate(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `TRUNCATE TABLE accounts RESTART IDENTITY`)
	require.NoError(t, err, "failed to truncate accounts")
}
