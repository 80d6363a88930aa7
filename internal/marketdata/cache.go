package marketdata

import (
	"context"
	"time"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/pkg/logger"
	"github.com/wonny/oracle/pkg/redis"
)

// CachedProvider wraps a provider with a Redis snapshot cache. Cache
// failures are logged and degrade to a direct fetch; a scan never
// fails because Redis is down.
type CachedProvider struct {
	inner contracts.MarketDataProvider
	cache *redis.Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewCached wraps inner with snapshot caching at the given TTL.
func NewCached(inner contracts.MarketDataProvider, cache *redis.Cache, ttl time.Duration, log *logger.Logger) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		log:   log.WithField("component", "snapshot_cache"),
	}
}

// Snapshot returns the cached snapshot when present, otherwise fetches
// from the wrapped provider and stores the result.
func (p *CachedProvider) Snapshot(ctx context.Context, ticker string, lookbackDays int) (*contracts.TickerSnapshot, error) {
	key := redis.SnapshotKey(ticker, lookbackDays)

	var cached contracts.TickerSnapshot
	hit, err := p.cache.Get(ctx, key, &cached)
	if err != nil {
		p.log.WithField("ticker", ticker).WithError(err).Debug("cache read failed")
	}
	if hit {
		return &cached, nil
	}

	snap, err := p.inner.Snapshot(ctx, ticker, lookbackDays)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, snap, p.ttl); err != nil {
		p.log.WithField("ticker", ticker).WithError(err).Debug("cache write failed")
	}
	return snap, nil
}
