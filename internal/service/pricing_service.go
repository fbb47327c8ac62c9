package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/billboard-rentals/internal/cache"
	"github.com/nurpe/billboard-rentals/internal/model"
	"github.com/nurpe/billboard-rentals/internal/pricing"
	"github.com/nurpe/billboard-rentals/internal/units"
)

const (
	pricingRowsKey = "pricing:rows"
	categoriesKey  = "pricing:categories"
)

// PricingStore is the live pricing data source.
type PricingStore interface {
	ListRows(ctx context.Context) ([]model.PricingRow, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// pricingRowSource feeds the in-memory snapshot, reading through redis so
// sibling instances share one load of the live table.
type pricingRowSource struct {
	store PricingStore
	redis *cache.Cache
}

func (s *pricingRowSource) PricingRows(ctx context.Context) ([]pricing.Row, error) {
	var rows []pricing.Row
	if found, err := s.redis.GetJSON(ctx, pricingRowsKey, &rows); err == nil && found {
		return rows, nil
	}

	dbRows, err := s.store.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([]pricing.Row, 0, len(dbRows))
	for _, row := range dbRows {
		rows = append(rows, pricing.Row{
			Size:     row.Size,
			Level:    row.Level,
			Category: row.Category,
			Monthly:  row.MonthlyBuckets(),
			Daily:    row.OneDay,
		})
	}
	_ = s.redis.SetJSON(ctx, pricingRowsKey, rows)
	return rows, nil
}

type PricingExcelGenerator interface {
	PricingWorkbook(rows []model.PricingRow) ([]byte, error)
}

type PricingService struct {
	store    PricingStore
	redis    *cache.Cache
	excel    PricingExcelGenerator
	snapshot *pricing.Cache
	resolver *pricing.Resolver
	log      zerolog.Logger
}

func NewPricingService(store PricingStore, redis *cache.Cache, excel PricingExcelGenerator, log zerolog.Logger) *PricingService {
	snapshot := pricing.NewCache(&pricingRowSource{store: store, redis: redis}, log)
	return &PricingService{
		store:    store,
		redis:    redis,
		excel:    excel,
		snapshot: snapshot,
		resolver: pricing.NewResolver(snapshot),
		log:      log,
	}
}

// Init warms the snapshot. Failure is non-fatal: the resolver degrades to
// the static fallback until a refresh succeeds.
func (s *PricingService) Init(ctx context.Context) {
	if err := s.snapshot.Init(ctx); err != nil {
		s.log.Warn().Err(err).Msg("pricing snapshot warmup failed, using static fallback")
	}
}

func (s *PricingService) Resolver() *pricing.Resolver {
	return s.resolver
}

type ResolveInput struct {
	Size     string
	Level    string
	Category string
	Months   int
	Daily    bool
}

type ResolveResult struct {
	Size     string  `json:"size"`
	Level    string  `json:"level"`
	Category string  `json:"category"`
	Months   int     `json:"months,omitempty"`
	Daily    bool    `json:"daily"`
	Price    float64 `json:"price"`
}

func (s *PricingService) Resolve(ctx context.Context, in ResolveInput) (*ResolveResult, error) {
	if in.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if !in.Daily && in.Months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive", ErrInvalidInput)
	}

	size := units.CanonicalizeSize(in.Size)
	level := units.CanonicalizeLevel(in.Level)

	var price float64
	var err error
	if in.Daily {
		price, err = s.resolver.ResolveDaily(size, level, in.Category)
	} else {
		price, err = s.resolver.ResolveMonthly(size, level, in.Category, in.Months)
	}
	if err != nil {
		return nil, err
	}

	return &ResolveResult{
		Size:     size,
		Level:    level,
		Category: in.Category,
		Months:   in.Months,
		Daily:    in.Daily,
		Price:    price,
	}, nil
}

// Categories merges the static baseline with the live list. Backend failure
// degrades to the baseline rather than failing the caller.
func (s *PricingService) Categories(ctx context.Context) []string {
	var fetched []string
	if found, err := s.redis.GetJSON(ctx, categoriesKey, &fetched); err == nil && found {
		return units.MergeCategories(fetched)
	}

	fetched, err := s.store.ListCategories(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("category list fetch failed, serving baseline")
		return units.MergeCategories(nil)
	}
	_ = s.redis.SetJSON(ctx, categoriesKey, fetched)
	return units.MergeCategories(fetched)
}

// Refresh drops the shared redis copy and reloads the snapshot wholesale.
func (s *PricingService) Refresh(ctx context.Context) error {
	_ = s.redis.Invalidate(ctx, pricingRowsKey)
	_ = s.redis.Invalidate(ctx, categoriesKey)
	return s.snapshot.Refresh(ctx)
}

func (s *PricingService) Rows(ctx context.Context) ([]model.PricingRow, error) {
	return s.store.ListRows(ctx)
}

// ExportExcel renders the live pricing table as a workbook for review or
// re-import.
func (s *PricingService) ExportExcel(ctx context.Context) (*ExportResult, error) {
	rows, err := s.store.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.PricingWorkbook(rows)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("pricing-%s.xlsx", time.Now().Format("20060102"))
	return &ExportResult{FileName: name, Content: content}, nil
}
