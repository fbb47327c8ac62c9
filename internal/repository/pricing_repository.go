package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/model"
)

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

func (r *PricingRepository) ListRows(ctx context.Context) ([]model.PricingRow, error) {
	var rows []model.PricingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			size,
			level,
			category,
			one_month,
			two_months,
			three_months,
			six_months,
			full_year,
			one_day
		FROM pricing
		ORDER BY size, level, category
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PricingRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT name
		FROM pricing_categories
		ORDER BY name ASC
	`).Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
