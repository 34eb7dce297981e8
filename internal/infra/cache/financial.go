package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"property-rental/internal/pkg/metrics"
	"property-rental/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	financialCacheName = "financial"
	generationKey      = "financial:generation"
)

// FinancialCache keeps financial statements in redis. Keys embed a generation
// counter; bumping the counter orphans every entry at once and the TTL
// reclaims them later.
type FinancialCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFinancialCache(client *redis.Client, ttl time.Duration) *FinancialCache {
	return &FinancialCache{client: client, ttl: ttl}
}

// Get looks key up under the current generation and returns that generation
// so a miss can be filled with Set. A negative generation means the counter
// could not be read and the result must not be stored.
func (c *FinancialCache) Get(ctx context.Context, key string) (*queries.FinancialStatement, int64, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.fail("get generation", err)
		return nil, -1, false
	}

	b, err := c.client.Get(ctx, entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveCache(financialCacheName, "miss")
		return nil, gen, false
	}
	if err != nil {
		c.fail("get", err)
		return nil, gen, false
	}

	var st queries.FinancialStatement
	if err := json.Unmarshal(b, &st); err != nil {
		c.fail("decode", err)
		return nil, gen, false
	}
	metrics.ObserveCache(financialCacheName, "hit")
	return &st, gen, true
}

// Set stores st under gen, the generation Get reported before the statement
// was computed. If a booking invalidated the cache in between, the entry
// lands on an orphaned key and is never served.
func (c *FinancialCache) Set(ctx context.Context, key string, gen int64, st *queries.FinancialStatement) {
	if gen < 0 {
		return
	}
	b, err := json.Marshal(st)
	if err != nil {
		c.fail("encode", err)
		return
	}
	if err := c.client.Set(ctx, entryKey(gen, key), b, c.ttl).Err(); err != nil {
		c.fail("set", err)
		return
	}
	metrics.ObserveCache(financialCacheName, "set")
}

func (c *FinancialCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.fail("invalidate", err)
		return
	}
	metrics.ObserveCache(financialCacheName, "invalidate")
}

func (c *FinancialCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// A broken cache degrades to recomputation; it never fails a request.
func (c *FinancialCache) fail(op string, err error) {
	metrics.ObserveCache(financialCacheName, "error")
	slog.Warn("financial cache "+op+" failed", "error", err)
}

func entryKey(gen int64, key string) string {
	return "financial:" + strconv.FormatInt(gen, 10) + ":" + key
}

// NopFinancialCache is used when no redis address is configured.
type NopFinancialCache struct{}

func (NopFinancialCache) Get(context.Context, string) (*queries.FinancialStatement, int64, bool) {
	return nil, -1, false
}
func (NopFinancialCache) Set(context.Context, string, int64, *queries.FinancialStatement) {}
func (NopFinancialCache) Invalidate(context.Context)                                      {}
