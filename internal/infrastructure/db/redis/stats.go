package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultStatsTTL = time.Minute

const (
	keyTotalJobs     = "stats:total_jobs"
	keyTotalAccounts = "stats:total_accounts"
)

// StatsCache holds the landing-page aggregate counts with a short TTL so the
// home page does not hit Mongo on every request. A miss simply falls through
// to the store; the cache is never authoritative.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached counts. ok is false when either key is missing or
// unreadable, in which case the caller should recount from the store.
func (c *StatsCache) Get(ctx context.Context) (jobs, accounts int64, ok bool) {
	vals, err := c.client.MGet(ctx, keyTotalJobs, keyTotalAccounts).Result()
	if err != nil || len(vals) != 2 {
		return 0, 0, false
	}

	jobs, ok1 := parseCount(vals[0])
	accounts, ok2 := parseCount(vals[1])
	return jobs, accounts, ok1 && ok2
}

// Set stores both counts, each expiring after the configured TTL.
func (c *StatsCache) Set(ctx context.Context, jobs, accounts int64) error {
	pipe := c.client.Pipeline()
	pipe.Set(ctx, keyTotalJobs, jobs, c.ttl)
	pipe.Set(ctx, keyTotalAccounts, accounts, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func parseCount(v interface{}) (int64, bool) {
	s, isString := v.(string)
	if !isString {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
