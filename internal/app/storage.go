package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/premier-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/premier-dashboard/internal/adapter/postgres/kv"
	"github.com/heartmarshall/premier-dashboard/internal/adapter/postgres/migrations"
	"github.com/heartmarshall/premier-dashboard/internal/adapter/storage"
	"github.com/heartmarshall/premier-dashboard/internal/config"
)

// OpenStorage opens the KV backend selected by cfg.Storage.Driver. The
// caller owns the returned store and must Close it.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		return storage.NewMemory(), nil

	case config.DriverFile:
		return storage.NewFile(cfg.Storage.Dir)

	case config.DriverBolt:
		return storage.OpenBolt(cfg.Storage.BoltPath)

	case config.DriverPostgres:
		return openPostgres(ctx, cfg.Database, logger)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (storage.KV, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrate {
		// goose requires *sql.DB. The handle borrows pool connections and
		// keeps no idle ones, so it is left for the pool to own.
		applied, err := migrations.Up(ctx, stdlib.OpenDBFromPool(pool))
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	return kv.New(pool), nil
}

var _ storage.KV = (*kv.Repo)(nil)
