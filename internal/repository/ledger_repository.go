package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/model"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// RecordRentSplit appends the partner transactions for one rent event and
// writes back the billboard's remaining capital, atomically. The billboard
// row is locked for the duration so build sees the current capital and two
// concurrent rent events serialize instead of overwriting each other. The
// ledger is append-only: nothing here ever updates or deletes existing
// records.
func (r *LedgerRepository) RecordRentSplit(
	ctx context.Context,
	billboardID uuid.UUID,
	build func(capitalRemaining float64) (float64, []model.PartnerTransaction),
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var capitalRemaining float64
		if err := tx.Raw(`
			SELECT capital_remaining FROM billboards WHERE id = ? FOR UPDATE
		`, billboardID).Scan(&capitalRemaining).Error; err != nil {
			return err
		}

		newCapitalRemaining, entries := build(capitalRemaining)
		for _, entry := range entries {
			if err := tx.Exec(`
				INSERT INTO partner_transactions (billboard_id, contract_id, beneficiary, amount, kind)
				VALUES (?, ?, ?, ?, ?)
			`, billboardID, entry.ContractID, entry.Beneficiary, entry.Amount, entry.Kind).Error; err != nil {
				return err
			}
		}
		return tx.Exec(`
			UPDATE billboards SET capital_remaining = ? WHERE id = ?
		`, newCapitalRemaining, billboardID).Error
	})
}

func (r *LedgerRepository) ListByBillboard(ctx context.Context, billboardID uuid.UUID) ([]model.PartnerTransaction, error) {
	var entries []model.PartnerTransaction
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, billboard_id, contract_id, beneficiary, amount, kind, created_at
		FROM partner_transactions
		WHERE billboard_id = ?
		ORDER BY created_at ASC
	`, billboardID).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
