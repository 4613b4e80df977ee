package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"orgnet/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	outcomeCacheVersionKey = "orgnet:outcomes:version"
	outcomeCacheKeyPrefix  = "orgnet:outcomes:v"
	defaultCacheTTL        = time.Hour
)

type CacheConfig struct {
	Addr string
	TTL  time.Duration
}

// CachedRepository layers a Redis read cache over the journal. Every write
// bumps a version counter and reads embed the current version in their cache
// key, so stale entries are never served and expire on their own.
type CachedRepository struct {
	*Repository
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedRepository(base *Repository, cfg CacheConfig) (*CachedRepository, error) {
	if base == nil {
		return nil, errors.New("base repository is required")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return &CachedRepository{Repository: base}, nil
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &CachedRepository{Repository: base, cache: client, ttl: cfg.TTL}, nil
}

func (r *CachedRepository) StoreOutcome(ctx context.Context, record domain.OutcomeRecord) error {
	if err := r.Repository.StoreOutcome(ctx, record); err != nil {
		return err
	}
	r.invalidateOutcomeCache(ctx)
	return nil
}

func (r *CachedRepository) QueryOutcomes(ctx context.Context, filter domain.OutcomeFilter) ([]domain.OutcomeRecord, error) {
	if r.cache == nil {
		return r.Repository.QueryOutcomes(ctx, filter)
	}
	version, ok := r.cacheVersion(ctx)
	if !ok {
		return r.Repository.QueryOutcomes(ctx, filter)
	}
	key := outcomeCacheKey(version, filter)
	if cached, err := r.cache.Get(ctx, key).Result(); err == nil {
		var records []domain.OutcomeRecord
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			return records, nil
		}
	}

	records, err := r.Repository.QueryOutcomes(ctx, filter)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return records, nil
	}
	_ = r.cache.Set(ctx, key, payload, r.ttl).Err()
	return records, nil
}

func (r *CachedRepository) Close() error {
	if r.cache != nil {
		_ = r.cache.Close()
	}
	return r.Repository.Close()
}

func (r *CachedRepository) cacheVersion(ctx context.Context) (string, bool) {
	version, err := r.cache.Get(ctx, outcomeCacheVersionKey).Result()
	if err == nil {
		return version, true
	}
	if errors.Is(err, redis.Nil) {
		return "0", true
	}
	return "", false
}

func (r *CachedRepository) invalidateOutcomeCache(ctx context.Context) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Incr(ctx, outcomeCacheVersionKey).Err()
}

func outcomeCacheKey(version string, filter domain.OutcomeFilter) string {
	var b strings.Builder
	b.Grow(128)
	b.WriteString(outcomeCacheKeyPrefix)
	b.WriteString(version)
	b.WriteString(":domain=")
	if filter.Domain != "" {
		b.WriteString(strings.ToLower(filter.Domain))
	} else {
		b.WriteString("any")
	}
	b.WriteString(":action=")
	if filter.Action != "" {
		b.WriteString(strings.ToLower(filter.Action))
	} else {
		b.WriteString("any")
	}
	b.WriteString(":sender=")
	if filter.Sender != "" {
		b.WriteString(strings.ToLower(filter.Sender))
	} else {
		b.WriteString("any")
	}
	b.WriteString(":entity=")
	if filter.EntityID != nil {
		b.WriteString(strconv.FormatUint(*filter.EntityID, 10))
	} else {
		b.WriteString("any")
	}
	b.WriteString(":from=")
	if filter.FromBlock != nil {
		b.WriteString(strconv.FormatUint(*filter.FromBlock, 10))
	} else {
		b.WriteString("any")
	}
	b.WriteString(":to=")
	if filter.ToBlock != nil {
		b.WriteString(strconv.FormatUint(*filter.ToBlock, 10))
	} else {
		b.WriteString("any")
	}
	b.WriteString(":limit=")
	b.WriteString(strconv.Itoa(normalizeOutcomeLimit(filter.Limit)))
	return b.String()
}

func normalizeOutcomeLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return 100
	}
	return limit
}
