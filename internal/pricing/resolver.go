// Package pricing resolves rental prices from the live pricing table with a
// static fallback, keyed by canonical (size, level, customer category).
package pricing

import (
	"errors"
	"math"

	"github.com/nurpe/billboard-rentals/internal/units"
)

// ErrNoPrice marks a triple absent from both the live table and the static
// fallback. It is an expected outcome, distinct from a price of zero.
var ErrNoPrice = errors.New("no price for size/level/category")

// Row is one live pricing table entry. Monthly holds only the duration
// buckets the table actually prices; a missing bucket falls through to the
// static table.
type Row struct {
	Size     string          `json:"size"`
	Level    string          `json:"level"`
	Category string          `json:"category"`
	Monthly  map[int]float64 `json:"monthly"`
	Daily    *float64        `json:"daily,omitempty"`
}

type Resolver struct {
	cache *Cache
}

func NewResolver(cache *Cache) *Resolver {
	return &Resolver{cache: cache}
}

// ResolveMonthly returns the rental price for the given duration in months.
// Inputs are canonicalized before lookup. A missing or stale live cache
// degrades silently to the static fallback table.
func (r *Resolver) ResolveMonthly(size, level, category string, months int) (float64, error) {
	if months <= 0 {
		return 0, ErrNoPrice
	}
	size = units.CanonicalizeSize(size)
	level = units.CanonicalizeLevel(level)

	if _, bucketed := monthlyBuckets[months]; bucketed {
		if row, ok := r.cache.Lookup(size, level, category); ok {
			if price, ok := row.Monthly[months]; ok {
				return price, nil
			}
		}
	}

	base, ok := fallbackMonthlyBase(size, level, category)
	if !ok {
		return 0, ErrNoPrice
	}
	if mult, ok := durationMultiplier[months]; ok {
		return base * mult, nil
	}
	return math.Round(base * float64(months)), nil
}

// ResolveDaily prefers the live table's per-day column, then derives from the
// one-month price as monthly/30 rounded to two decimals.
func (r *Resolver) ResolveDaily(size, level, category string) (float64, error) {
	canonSize := units.CanonicalizeSize(size)
	canonLevel := units.CanonicalizeLevel(level)
	if row, ok := r.cache.Lookup(canonSize, canonLevel, category); ok && row.Daily != nil {
		return *row.Daily, nil
	}

	monthly, err := r.ResolveMonthly(size, level, category, 1)
	if err != nil {
		return 0, err
	}
	return math.Round(monthly/30*100) / 100, nil
}
