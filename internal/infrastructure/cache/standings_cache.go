// Package cache implements the TTL'd standings cache.
// Advent of Code asks that the leaderboard API is not polled more often than
// once every 15 minutes, so the TTL here is a hard ceiling on fetch frequency
// mandated by the source's rate-limit contract, not a performance
// optimization. The cache is in-memory and lives for the process lifetime.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

// Source fetches and parses a fresh standings snapshot.
type Source interface {
	FetchStandings(ctx context.Context) (*standings.Snapshot, error)
}

// Config contains configuration for the standings cache.
type Config struct {
	// TTL is the minimum time between two fetches. Clamped to at least one
	// minute; default is the 15 minutes AoC mandates.
	TTL time.Duration

	// Logger for structured logging.
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TTL: 15 * time.Minute,
	}
}

// StandingsCache wraps a Source with a single cached snapshot slot.
//
// The refresh is a blocking, non-reentrant critical section: while one
// refresh is in flight every other Get blocks on the mutex, so N concurrent
// callers inside one TTL window produce exactly one fetch. The slot is
// replaced atomically as a whole; snapshots themselves are immutable.
type StandingsCache struct {
	source Source
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	snapshot *standings.Snapshot

	// now is swappable for tests.
	now func() time.Time
}

// NewStandingsCache creates a cache around the given source.
func NewStandingsCache(source Source, config Config) *StandingsCache {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	ttl := config.TTL
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return &StandingsCache{
		source: source,
		ttl:    ttl,
		logger: config.Logger,
		now:    time.Now,
	}
}

// Get returns the current snapshot, refreshing it first when the slot is
// empty or older than the TTL. A failed refresh leaves the slot untouched
// and propagates the error; it never invalidates the previous snapshot.
func (c *StandingsCache) Get(ctx context.Context) (*standings.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.snapshot != nil && now.Sub(c.snapshot.FetchedAt) <= c.ttl {
		c.logger.Debug("got leaderboard from cache", "age", c.snapshot.Age(now).String())
		return c.snapshot, nil
	}

	snap, err := c.source.FetchStandings(ctx)
	if err != nil {
		return nil, err
	}

	c.snapshot = snap
	c.logger.Debug("got leaderboard fresh", "members", snap.Len())
	return c.snapshot, nil
}

// TTL returns the effective minimum poll interval.
func (c *StandingsCache) TTL() time.Duration {
	return c.ttl
}
