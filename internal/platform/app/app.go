// Package app wires configuration into stores and services for the server and
// the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/SscSPs/treasury_ledger/internal/repositories/cache"
	"github.com/SscSPs/treasury_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/treasury_ledger/internal/repositories/memory"
	"github.com/SscSPs/treasury_ledger/pkg/database"
)

// NewLogger returns a JSON slog logger at the configured level.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// Resources are the opened stores. Close releases them in reverse order.
type Resources struct {
	Repos   portsrepo.RepositoryProvider
	closers []func()
}

// Close releases every opened resource.
func (r *Resources) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// Open connects the configured store driver and idempotency store. With
// migrate set, pending migrations run before the pool is opened.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*Resources, error) {
	res := &Resources{}

	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("Using in-memory store; state is lost on exit")
		res.Repos.Store = memory.NewStore()
	default:
		if migrate {
			if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{})
		if err != nil {
			return nil, err
		}
		res.closers = append(res.closers, func() { database.ClosePgxPool(pool) })
		res.Repos.Store = pgsql.NewTreasuryStore(pool, cfg.DBLockTimeout)
		logger.Info("Database connection pool established.")
	}

	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisIdempotencyStore(ctx, cfg.RedisURL)
		if err != nil {
			res.Close()
			return nil, fmt.Errorf("failed to connect idempotency store: %w", err)
		}
		res.closers = append(res.closers, func() { _ = redisStore.Close() })
		res.Repos.Idempotency = redisStore
		logger.Info("Redis idempotency store connected.")
	} else {
		res.Repos.Idempotency = cache.NewMemoryIdempotencyStore()
	}
	return res, nil
}

// SeedCatalog loads the configured catalog and creates missing accounts.
func SeedCatalog(ctx context.Context, cfg *config.Config, accounts portssvc.AccountBootstrapSvc) (int, error) {
	specs, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return 0, err
	}
	return accounts.BootstrapCatalog(ctx, specs)
}
