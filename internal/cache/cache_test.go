package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	type input struct {
		Price int    `json:"price"`
		Label string `json:"label"`
	}

	a, err := Key("acq", input{Price: 1, Label: "x"})
	require.NoError(t, err)
	b, err := Key("acq", input{Price: 1, Label: "x"})
	require.NoError(t, err)
	c, err := Key("acq", input{Price: 2, Label: "x"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^acq:[0-9a-f]{16}$`, a)

	_, err = Key("bad", make(chan int))
	assert.Error(t, err)
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("result")
	require.NoError(t, c.Set(ctx, "k", value, 0))
	value[0] = 'X'

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "result", string(got))
}

func TestMemoryCache_ExpiryAndSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "short", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "long", []byte("b"), time.Hour))
	require.NoError(t, c.Set(ctx, "forever", []byte("c"), 0))

	now = now.Add(2 * time.Minute)
	_, ok, _ := c.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "long")
	assert.True(t, ok)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 2, c.Len())

	now = now.Add(24 * time.Hour)
	assert.Equal(t, 1, c.Sweep())
	_, ok, _ = c.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	c := NewRedisCache(addr)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	key, err := Key("test", time.Now().UnixNano())
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, []byte("v"), time.Minute))
	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))
}
