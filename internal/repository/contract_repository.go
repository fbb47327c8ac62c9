package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create persists the contract snapshot, its billboard links and its
// installment schedule in one transaction.
func (r *ContractRepository) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	saved := contract
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct {
			ID uuid.UUID
		}
		err := tx.Raw(`
			INSERT INTO contracts (
				number,
				customer_id,
				customer_name,
				customer_category,
				ad_type,
				start_at,
				end_at,
				duration_months,
				base_total,
				discount_type,
				discount_value,
				discount_amount,
				final_total,
				installation_cost,
				rental_cost_only,
				operating_fee_rate,
				operating_fee,
				status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id
		`,
			contract.Number,
			contract.CustomerID,
			contract.CustomerName,
			contract.CustomerCategory,
			contract.AdType,
			contract.StartAt,
			contract.EndAt,
			contract.DurationMonths,
			contract.BaseTotal,
			contract.DiscountType,
			contract.DiscountValue,
			contract.DiscountAmount,
			contract.FinalTotal,
			contract.InstallationCost,
			contract.RentalCostOnly,
			contract.OperatingFeeRate,
			contract.OperatingFee,
			contract.Status,
		).Scan(&row).Error
		if err != nil {
			return err
		}
		saved.ID = row.ID

		for _, billboardID := range contract.BillboardIDs {
			if err := tx.Exec(`
				INSERT INTO contract_billboards (contract_id, billboard_id)
				VALUES (?, ?)
			`, saved.ID, billboardID).Error; err != nil {
				return err
			}
		}

		for i, inst := range contract.Installments {
			if err := tx.Exec(`
				INSERT INTO installments (contract_id, seq, amount, payment_type, description, due_date)
				VALUES (?, ?, ?, ?, ?, ?)
			`, saved.ID, i, inst.Amount, inst.PaymentType, inst.Description, inst.DueDate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			customer_name,
			customer_category,
			ad_type,
			start_at,
			end_at,
			duration_months,
			base_total,
			discount_type,
			discount_value,
			discount_amount,
			final_total,
			installation_cost,
			rental_cost_only,
			operating_fee_rate,
			operating_fee,
			status,
			created_at
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, seq, amount, payment_type, description, due_date, paid_at
		FROM installments
		WHERE contract_id = ?
		ORDER BY seq ASC
	`, id).Scan(&contract.Installments).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT billboard_id
		FROM contract_billboards
		WHERE contract_id = ?
		ORDER BY billboard_id
	`, id).Scan(&contract.BillboardIDs).Error; err != nil {
		return nil, err
	}

	return &contract, nil
}

func (r *ContractRepository) List(ctx context.Context, status *model.ContractStatus) ([]model.Contract, error) {
	query := `
		SELECT
			id,
			number,
			customer_name,
			customer_category,
			ad_type,
			start_at,
			end_at,
			duration_months,
			base_total,
			discount_amount,
			final_total,
			installation_cost,
			operating_fee,
			status,
			created_at
		FROM contracts
	`
	args := []interface{}{}
	if status != nil {
		query += " WHERE status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY created_at DESC"

	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// DeleteOutcome classifies a delete strategy result so the chain can decide
// whether to move on to the next strategy.
type DeleteOutcome int

const (
	DeleteSucceeded DeleteOutcome = iota
	DeleteRetryable
	DeleteFatal
)

type deleteStrategy struct {
	name string
	run  func(ctx context.Context, id uuid.UUID) (DeleteOutcome, error)
}

// Delete removes a contract through an ordered strategy chain: first the
// backend stored procedure that detaches dependents, then a direct cascade
// delete. A retryable failure moves to the next strategy; a fatal one stops
// the chain.
func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	strategies := []deleteStrategy{
		{name: "stored_procedure", run: r.deleteViaProcedure},
		{name: "direct", run: r.deleteDirect},
	}

	var failures []string
	for _, strategy := range strategies {
		outcome, err := strategy.run(ctx, id)
		switch outcome {
		case DeleteSucceeded:
			return nil
		case DeleteFatal:
			return fmt.Errorf("delete contract via %s: %w", strategy.name, err)
		case DeleteRetryable:
			failures = append(failures, fmt.Sprintf("%s: %v", strategy.name, err))
		}
	}
	return fmt.Errorf("all delete strategies failed: %s", strings.Join(failures, "; "))
}

func (r *ContractRepository) deleteViaProcedure(ctx context.Context, id uuid.UUID) (DeleteOutcome, error) {
	if err := r.db.WithContext(ctx).Exec(`SELECT delete_contract(?)`, id).Error; err != nil {
		// The procedure may not exist on older schemas; fall through.
		return DeleteRetryable, err
	}
	return DeleteSucceeded, nil
}

func (r *ContractRepository) deleteDirect(ctx context.Context, id uuid.UUID) (DeleteOutcome, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM installments WHERE contract_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM contract_billboards WHERE contract_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM contracts WHERE id = ?`, id).Error
	})
	if err != nil {
		return DeleteFatal, err
	}
	return DeleteSucceeded, nil
}
