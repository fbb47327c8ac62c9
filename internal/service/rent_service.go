package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/model"
	"github.com/nurpe/billboard-rentals/internal/partnership"
)

// LedgerStore appends rent-split records. RecordRentSplit invokes build with
// the billboard's current remaining capital read under the same transaction
// that writes the result, so concurrent rent events on one billboard cannot
// lose a capital deduction.
type LedgerStore interface {
	RecordRentSplit(ctx context.Context, billboardID uuid.UUID, build func(capitalRemaining float64) (float64, []model.PartnerTransaction)) error
	ListByBillboard(ctx context.Context, billboardID uuid.UUID) ([]model.PartnerTransaction, error)
}

// RentService applies rent events to shared billboards: it computes the
// two-phase split and appends the resulting ledger records.
type RentService struct {
	billboards BillboardStore
	ledger     LedgerStore
	company    string
	log        zerolog.Logger
}

func NewRentService(billboards BillboardStore, ledger LedgerStore, company string, log zerolog.Logger) *RentService {
	return &RentService{billboards: billboards, ledger: ledger, company: company, log: log}
}

type ApplyRentInput struct {
	BillboardID uuid.UUID
	ContractID  *uuid.UUID
	Amount      float64
}

type ApplyRentResult struct {
	Split   partnership.Split   `json:"split"`
	Entries []partnership.Entry `json:"entries"`
}

func (s *RentService) ApplyRent(ctx context.Context, in ApplyRentInput) (*ApplyRentResult, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: rent amount must be positive", ErrInvalidInput)
	}

	board, err := s.billboards.GetByID(ctx, in.BillboardID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !board.IsPartnership {
		return nil, fmt.Errorf("%w: %s", ErrNotShared, board.Name)
	}

	// The split is computed from the capital value the ledger holds at write
	// time, not from the read above, which may be stale by then.
	var result ApplyRentResult
	err = s.ledger.RecordRentSplit(ctx, in.BillboardID, func(capitalRemaining float64) (float64, []model.PartnerTransaction) {
		split := partnership.ComputeSplit(capitalRemaining, in.Amount)
		entries := partnership.Allocate(split, s.company, board.PartnerCompanies)

		records := make([]model.PartnerTransaction, 0, len(entries))
		for _, entry := range entries {
			records = append(records, model.PartnerTransaction{
				BillboardID: in.BillboardID,
				ContractID:  in.ContractID,
				Beneficiary: entry.Beneficiary,
				Amount:      entry.Amount,
				Kind:        entry.Kind,
			})
		}

		result = ApplyRentResult{Split: split, Entries: entries}
		return split.NewCapitalRemaining, records
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("billboard_id", in.BillboardID.String()).
		Float64("amount", in.Amount).
		Float64("capital_remaining", result.Split.NewCapitalRemaining).
		Msg("rent split recorded")

	return &result, nil
}

func (s *RentService) Ledger(ctx context.Context, billboardID uuid.UUID) ([]model.PartnerTransaction, error) {
	return s.ledger.ListByBillboard(ctx, billboardID)
}
