package slots

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ddlogi/quote-platform/pkg/logging"
)

const cacheGenKey = "slots:gen"

// CachedStore is a read-through cache over another Store. Per-date confirmed
// sets are cached under a generation counter; any write bumps the generation,
// which invalidates every cached date at once. Cancel only knows the
// reservation id, not its date, so per-date invalidation is not possible.
//
// Redis failures never fail a request: reads fall through to the inner store
// and writes proceed uncached.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps a store with a redis cache.
func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, logger *logging.Logger) *CachedStore {
	if inner == nil {
		panic("slots: inner store cannot be nil")
	}
	if client == nil {
		panic("slots: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CachedStore{inner: inner, client: client, ttl: ttl, logger: logger}
}

// Insert writes through and bumps the cache generation.
func (s *CachedStore) Insert(ctx context.Context, res *Reservation) error {
	if err := s.inner.Insert(ctx, res); err != nil {
		return err
	}
	s.bumpGeneration(ctx)
	return nil
}

// Cancel writes through and bumps the cache generation.
func (s *CachedStore) Cancel(ctx context.Context, id string) error {
	if err := s.inner.Cancel(ctx, id); err != nil {
		return err
	}
	s.bumpGeneration(ctx)
	return nil
}

// ConfirmedByDate serves from cache when possible.
func (s *CachedStore) ConfirmedByDate(ctx context.Context, date string) ([]Reservation, error) {
	key, ok := s.cacheKey(ctx, date)
	if ok {
		if cached, hit := s.get(ctx, key); hit {
			return cached, nil
		}
	}

	rows, err := s.inner.ConfirmedByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if ok {
		s.put(ctx, key, rows)
	}
	return rows, nil
}

// ListConfirmed always hits the inner store; the admin list is rare and needs
// fresh memos.
func (s *CachedStore) ListConfirmed(ctx context.Context, fromDate string) ([]Reservation, error) {
	return s.inner.ListConfirmed(ctx, fromDate)
}

func (s *CachedStore) cacheKey(ctx context.Context, date string) (string, bool) {
	gen, err := s.client.Get(ctx, cacheGenKey).Int64()
	if err != nil && err != redis.Nil {
		s.logger.Warn("slots cache unavailable, falling through", "error", err)
		return "", false
	}
	return fmt.Sprintf("slots:confirmed:%d:%s", gen, date), true
}

func (s *CachedStore) get(ctx context.Context, key string) ([]Reservation, bool) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("slots cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	var rows []Reservation
	if err := json.Unmarshal(raw, &rows); err != nil {
		s.logger.Warn("slots cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return rows, true
}

func (s *CachedStore) put(ctx context.Context, key string, rows []Reservation) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("slots cache write failed", "key", key, "error", err)
	}
}

func (s *CachedStore) bumpGeneration(ctx context.Context) {
	if err := s.client.Incr(ctx, cacheGenKey).Err(); err != nil {
		s.logger.Warn("slots cache invalidation failed", "error", err)
	}
}
