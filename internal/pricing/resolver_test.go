package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureSource struct {
	rows []Row
	err  error
}

func (s *fixtureSource) PricingRows(_ context.Context) ([]Row, error) {
	return s.rows, s.err
}

func newTestResolver(t *testing.T, rows []Row) *Resolver {
	t.Helper()
	cache := NewCache(&fixtureSource{rows: rows}, zerolog.Nop())
	require.NoError(t, cache.Init(context.Background()))
	return NewResolver(cache)
}

func floatPtr(v float64) *float64 { return &v }

func TestResolveMonthlyLiveTable(t *testing.T) {
	r := newTestResolver(t, []Row{
		{
			Size:     "4x12",
			Level:    "عادي",
			Category: "عادي",
			Monthly:  map[int]float64{1: 2500, 3: 6000, 12: 22000},
		},
	})

	price, err := r.ResolveMonthly("4x12", "عادي", "عادي", 1)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, price)

	// Input normalization flows through the live lookup.
	price, err = r.ResolveMonthly("12*4", "standard", "عادي", 3)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, price)
}

func TestResolveMonthlyBucketMissingFallsBack(t *testing.T) {
	r := newTestResolver(t, []Row{
		{
			Size:     "4x12",
			Level:    "عادي",
			Category: "عادي",
			Monthly:  map[int]float64{1: 2500},
		},
	})

	// 6-month column absent from the live row: static base 2000 * 4.5.
	price, err := r.ResolveMonthly("4x12", "عادي", "عادي", 6)
	require.NoError(t, err)
	assert.Equal(t, 9000.0, price)
}

func TestResolveMonthlyNonBucketIsLinear(t *testing.T) {
	r := newTestResolver(t, []Row{
		{
			Size:     "4x12",
			Level:    "عادي",
			Category: "عادي",
			Monthly:  map[int]float64{1: 2500, 2: 4500, 3: 6000, 6: 10500, 12: 20000},
		},
	})

	// 4 months is not a live bucket even when the live row exists.
	price, err := r.ResolveMonthly("4x12", "عادي", "عادي", 4)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, price)
}

func TestResolveMonthlyFallbackMonotonic(t *testing.T) {
	r := newTestResolver(t, nil)
	buckets := []int{1, 2, 3, 6, 12}
	prev := 0.0
	for _, months := range buckets {
		price, err := r.ResolveMonthly("6x18", "vip", "شركات", months)
		require.NoError(t, err)
		assert.Greater(t, price, prev, "price for %d months should exceed %d months", months, months-1)
		prev = price
	}
}

func TestResolveMonthlyUnknownCategoryNeutralFactor(t *testing.T) {
	// Categories merged in from the live backend have no static factor; they
	// price at the base rate rather than failing the fallback.
	r := newTestResolver(t, nil)
	price, err := r.ResolveMonthly("4x12", "عادي", "وكالات", 1)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, price)
}

func TestResolveMonthlyNoPriceSentinel(t *testing.T) {
	r := newTestResolver(t, nil)
	price, err := r.ResolveMonthly("5x15", "عادي", "عادي", 1)
	require.ErrorIs(t, err, ErrNoPrice)
	assert.Zero(t, price)

	_, err = r.ResolveMonthly("4x12", "عادي", "عادي", 0)
	require.ErrorIs(t, err, ErrNoPrice)
}

func TestResolveDaily(t *testing.T) {
	r := newTestResolver(t, []Row{
		{
			Size:     "4x12",
			Level:    "VIP",
			Category: "عادي",
			Monthly:  map[int]float64{1: 3000},
			Daily:    floatPtr(120),
		},
		{
			Size:     "3x9",
			Level:    "عادي",
			Category: "عادي",
			Monthly:  map[int]float64{1: 1000},
		},
	})

	price, err := r.ResolveDaily("4x12", "vip", "عادي")
	require.NoError(t, err)
	assert.Equal(t, 120.0, price)

	// No per-day column: derived from the live monthly price / 30.
	price, err = r.ResolveDaily("3x9", "عادي", "عادي")
	require.NoError(t, err)
	assert.Equal(t, 33.33, price)

	_, err = r.ResolveDaily("7x21", "عادي", "عادي")
	require.ErrorIs(t, err, ErrNoPrice)
}

func TestResolverToleratesEmptyCache(t *testing.T) {
	cache := NewCache(&fixtureSource{err: errors.New("backend down")}, zerolog.Nop())
	require.Error(t, cache.Init(context.Background()))
	r := NewResolver(cache)

	price, err := r.ResolveMonthly("4x12", "عادي", "عادي", 1)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, price)
}
