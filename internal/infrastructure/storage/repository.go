package storage

import (
	"context"
	"fmt"
	"time"

	"orgnet/internal/domain"
	"orgnet/internal/infrastructure/mysql"
	"orgnet/internal/infrastructure/sqlite"
)

// Journal is the persistence surface shared by both database backends.
type Journal interface {
	StoreOutcome(ctx context.Context, record domain.OutcomeRecord) error
	QueryOutcomes(ctx context.Context, filter domain.OutcomeFilter) ([]domain.OutcomeRecord, error)
	LastOutcomeID(ctx context.Context) (int64, bool, error)
	Ping(ctx context.Context) error
	Close() error
}

type Config struct {
	Driver    string
	DSN       string
	Path      string
	RedisAddr string
	CacheTTL  time.Duration
}

// Open selects the journal backend by driver name. MySQL is the production
// backend and gains a Redis read cache when an address is configured; SQLite
// serves single-node deployments.
func Open(cfg Config) (Journal, error) {
	switch cfg.Driver {
	case "mysql", "":
		base, err := mysql.NewRepository(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return mysql.NewCachedRepository(base, mysql.CacheConfig{Addr: cfg.RedisAddr, TTL: cfg.CacheTTL})
	case "sqlite":
		return sqlite.NewRepository(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
