// Package cache memoizes engine results. Engines are pure, so a result keyed
// on its full input never goes stale; the TTL only bounds memory.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Cache stores serialized results by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key derives a stable cache key from the JSON encoding of v.
func Key(prefix string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", prefix, err)
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(data)), nil
}
