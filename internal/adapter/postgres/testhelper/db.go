// Package testhelper provides a shared PostgreSQL container for repository
// integration tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/migrations"
)

const (
	image    = "postgres:17-alpine"
	user     = "moderation"
	password = "moderation"
	database = "moderation_test"
)

var (
	once    sync.Once
	dsn     string
	initErr error
)

// SetupTestDB returns a pool on a migrated database inside a PostgreSQL
// container. The container starts once per test binary and is shared by all
// tests, so tests must scope their data (see ReserveIDs). The pool is closed
// via t.Cleanup. Skipped with -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping container-backed test in -short mode")
	}

	once.Do(func() { dsn, initErr = startContainer() })
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	pool, err := postgres.NewPool(context.Background(), poolConfig(dsn))
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func poolConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        8,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
		ConnectTimeout:  10 * time.Second,
	}
}

// startContainer boots PostgreSQL and applies the embedded migrations.
func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       database,
			},
			// The server restarts once after initdb; the second message is the real one.
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", user, password, endpoint, database)

	pool, err := postgres.NewPool(ctx, poolConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if _, err := migrations.Up(ctx, db, migrations.Postgres); err != nil {
		return "", err
	}
	return dsn, nil
}
