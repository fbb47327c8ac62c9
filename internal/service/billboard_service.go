package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/model"
	"github.com/nurpe/billboard-rentals/internal/units"
)

type BillboardWriter interface {
	BillboardStore
	Create(ctx context.Context, b model.Billboard) (*model.Billboard, error)
	List(ctx context.Context, status *model.BillboardStatus) ([]model.Billboard, error)
}

type BillboardService struct {
	repo BillboardWriter
}

func NewBillboardService(repo BillboardWriter) *BillboardService {
	return &BillboardService{repo: repo}
}

// Create canonicalizes size and level before the billboard is stored so the
// pricing lookups never see raw labels.
func (s *BillboardService) Create(ctx context.Context, b model.Billboard) (*model.Billboard, error) {
	if strings.TrimSpace(b.Name) == "" {
		return nil, fmt.Errorf("%w: billboard name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(b.Size) == "" {
		return nil, fmt.Errorf("%w: billboard size is required", ErrInvalidInput)
	}

	b.Size = units.CanonicalizeSize(b.Size)
	b.Level = units.CanonicalizeLevel(b.Level)
	if b.Faces <= 0 {
		b.Faces = 1
	}
	if b.Status == "" {
		b.Status = model.BillboardStatusAvailable
	}
	if b.CapitalRemaining == 0 && b.Capital > 0 {
		b.CapitalRemaining = b.Capital
	}
	return s.repo.Create(ctx, b)
}

// Import ingests billboards exported from the legacy system, resolving
// field-name spelling variants through the record adapter before the usual
// create path canonicalizes and stores them.
func (s *BillboardService) Import(ctx context.Context, records []map[string]any) ([]model.Billboard, error) {
	imported := make([]model.Billboard, 0, len(records))
	for i, rec := range records {
		board := model.BillboardFromRecord(rec)
		if strings.TrimSpace(board.Name) == "" {
			return nil, fmt.Errorf("%w: record %d has no billboard name", ErrInvalidInput, i)
		}
		saved, err := s.Create(ctx, board)
		if err != nil {
			return nil, err
		}
		imported = append(imported, *saved)
	}
	return imported, nil
}

func (s *BillboardService) Get(ctx context.Context, id uuid.UUID) (*model.Billboard, error) {
	board, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return board, nil
}

func (s *BillboardService) List(ctx context.Context, status *model.BillboardStatus) ([]model.Billboard, error) {
	return s.repo.List(ctx, status)
}
