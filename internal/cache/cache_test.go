package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute)
}

func TestSetGetJSON(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Size  string  `json:"size"`
		Price float64 `json:"price"`
	}

	require.NoError(t, c.SetJSON(ctx, "pricing:row", payload{Size: "4x12", Price: 2500}))

	var got payload
	found, err := c.GetJSON(ctx, "pricing:row", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "4x12", got.Size)
	assert.Equal(t, 2500.0, got.Price)
}

func TestGetJSONMiss(t *testing.T) {
	c := newTestCache(t)
	var got map[string]any
	found, err := c.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.SetJSON(ctx, "k", []string{"a"}))
	require.NoError(t, c.Invalidate(ctx, "k"))

	var got []string
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientIsNoOp(t *testing.T) {
	c := New(nil, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.SetJSON(ctx, "k", "v"))
	var got string
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, c.Invalidate(ctx, "k"))
}
