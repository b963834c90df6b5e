package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportKeyPrefix namespaces cached analytics reports
const ReportKeyPrefix = "reports:"

// ReportCache stores report results as JSON with a TTL
type ReportCache struct {
	ttl time.Duration
}

// NewReportCache creates a report cache on the package client
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{ttl: ttl}
}

// Get decodes the cached report into dest. It reports false on a miss.
func (c *ReportCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := Get(ctx, ReportKeyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode cached report %s: %w", key, err)
	}
	return true, nil
}

// Set encodes value as JSON under key
func (c *ReportCache) Set(ctx context.Context, key string, value interface{}) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode report %s: %w", key, err)
	}
	return Set(ctx, ReportKeyPrefix+key, data, c.ttl)
}

// Invalidate drops every cached report
func (c *ReportCache) Invalidate(ctx context.Context) (int, error) {
	if client == nil {
		return 0, nil
	}
	return DelPattern(ctx, ReportKeyPrefix+"*")
}
