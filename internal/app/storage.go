package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/moderation-backend/internal/adapter/memory"
	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/adapter/postgres/term"
	"github.com/heartmarshall/moderation-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/migrations"
)

// termStore is the method set every dictionary backend provides.
type termStore interface {
	List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
	Create(ctx context.Context, term *domain.Term) (*domain.Term, error)
	Update(ctx context.Context, id int64, patch domain.TermPatch) (*domain.Term, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	Import(ctx context.Context, terms []domain.Term) (int, error)
}

// pinger reports storage reachability to the health endpoints.
type pinger interface {
	Ping(ctx context.Context) error
}

// sqlPinger adapts *sql.DB to pinger.
type sqlPinger struct{ db *sql.DB }

func (p sqlPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// storage is an opened dictionary backend.
type storage struct {
	terms  termStore
	pinger pinger // nil for memory
	close  func()
}

// openStorage opens the backend selected by cfg.Storage.Driver. Persistent
// backends are migrated before use.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		db := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, db, migrations.Postgres)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database ready", slog.String("driver", cfg.Storage.Driver), slog.Int("migrations_applied", applied))

		return &storage{
			terms:  term.New(pool, postgres.NewTxManager(pool)),
			pinger: pool,
			close:  pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("database ready", slog.String("driver", cfg.Storage.Driver), slog.String("path", cfg.SQLite.Path))

		return &storage{
			terms:  sqlite.NewTermRepo(db),
			pinger: sqlPinger{db: db},
			close:  func() { _ = db.Close() },
		}, nil

	case config.DriverMemory:
		return &storage{terms: memory.NewTermRepo(), close: func() {}}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// OpenMigrationDB returns a database/sql handle for the persistent driver
// in cfg together with its migration dialect. The memory driver has no
// schema and is rejected.
func OpenMigrationDB(ctx context.Context, cfg *config.Config) (*sql.DB, migrations.Dialect, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, "", nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, migrations.Postgres, func() {
			_ = db.Close()
			pool.Close()
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, "", nil, err
		}
		return db, migrations.SQLite, func() { _ = db.Close() }, nil
	}

	return nil, "", nil, fmt.Errorf("storage driver %q has no migrations", cfg.Storage.Driver)
}
