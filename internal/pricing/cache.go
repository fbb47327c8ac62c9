package pricing

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// RowSource loads the live pricing table. In production this is backed by the
// pricing repository (optionally through redis); tests seed it with fixtures.
type RowSource interface {
	PricingRows(ctx context.Context) ([]Row, error)
}

type rowKey struct {
	size     string
	level    string
	category string
}

type snapshot struct {
	index    map[rowKey]Row
	loadedAt time.Time
}

// Cache holds a copy-on-write snapshot of the live pricing table. Refresh
// replaces the snapshot wholesale; readers never observe a partial update.
// An unloaded cache simply reports misses so the resolver degrades to the
// static fallback.
type Cache struct {
	source RowSource
	log    zerolog.Logger
	snap   atomic.Pointer[snapshot]
}

func NewCache(source RowSource, log zerolog.Logger) *Cache {
	return &Cache{source: source, log: log}
}

// Init performs the first load. Failure leaves the cache empty but usable.
func (c *Cache) Init(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh reloads the live table and swaps the snapshot atomically.
func (c *Cache) Refresh(ctx context.Context) error {
	rows, err := c.source.PricingRows(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("pricing table refresh failed, keeping previous snapshot")
		return err
	}

	index := make(map[rowKey]Row, len(rows))
	for _, row := range rows {
		index[rowKey{row.Size, row.Level, row.Category}] = row
	}
	c.snap.Store(&snapshot{index: index, loadedAt: time.Now()})
	c.log.Debug().Int("rows", len(rows)).Msg("pricing table snapshot replaced")
	return nil
}

// Lookup returns the live row for the exact triple, if the cache has one.
func (c *Cache) Lookup(size, level, category string) (Row, bool) {
	snap := c.snap.Load()
	if snap == nil {
		return Row{}, false
	}
	row, ok := snap.index[rowKey{size, level, category}]
	return row, ok
}

// Loaded reports whether at least one snapshot has been installed.
func (c *Cache) Loaded() bool {
	return c.snap.Load() != nil
}

// LoadedAt returns the install time of the current snapshot, zero if none.
func (c *Cache) LoadedAt() time.Time {
	if snap := c.snap.Load(); snap != nil {
		return snap.loadedAt
	}
	return time.Time{}
}
