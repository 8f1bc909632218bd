package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3, time.Minute)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "buckets are per client")

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(30 * time.Minute)
	rl.Allow("b")
	now = now.Add(45 * time.Minute)

	assert.Equal(t, 1, rl.Cleanup())
	assert.Len(t, rl.clients, 1)
}
