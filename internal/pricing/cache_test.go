package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRefreshReplacesSnapshot(t *testing.T) {
	source := &fixtureSource{rows: []Row{
		{Size: "4x12", Level: "عادي", Category: "عادي", Monthly: map[int]float64{1: 2500}},
	}}
	cache := NewCache(source, zerolog.Nop())
	require.NoError(t, cache.Init(context.Background()))

	row, ok := cache.Lookup("4x12", "عادي", "عادي")
	require.True(t, ok)
	assert.Equal(t, 2500.0, row.Monthly[1])

	source.rows = []Row{
		{Size: "4x12", Level: "عادي", Category: "عادي", Monthly: map[int]float64{1: 2800}},
		{Size: "3x9", Level: "VIP", Category: "شركات", Monthly: map[int]float64{1: 1900}},
	}
	require.NoError(t, cache.Refresh(context.Background()))

	row, ok = cache.Lookup("4x12", "عادي", "عادي")
	require.True(t, ok)
	assert.Equal(t, 2800.0, row.Monthly[1])
	_, ok = cache.Lookup("3x9", "VIP", "شركات")
	assert.True(t, ok)
}

func TestCacheFailedRefreshKeepsSnapshot(t *testing.T) {
	source := &fixtureSource{rows: []Row{
		{Size: "4x12", Level: "عادي", Category: "عادي", Monthly: map[int]float64{1: 2500}},
	}}
	cache := NewCache(source, zerolog.Nop())
	require.NoError(t, cache.Init(context.Background()))

	source.err = errors.New("backend down")
	require.Error(t, cache.Refresh(context.Background()))

	row, ok := cache.Lookup("4x12", "عادي", "عادي")
	require.True(t, ok)
	assert.Equal(t, 2500.0, row.Monthly[1])
}

func TestCacheUnloaded(t *testing.T) {
	cache := NewCache(&fixtureSource{err: errors.New("unreachable")}, zerolog.Nop())
	assert.False(t, cache.Loaded())
	assert.True(t, cache.LoadedAt().IsZero())
	_, ok := cache.Lookup("4x12", "عادي", "عادي")
	assert.False(t, ok)
}
