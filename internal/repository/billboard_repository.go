package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/model"
)

type BillboardRepository struct {
	db *gorm.DB
}

func NewBillboardRepository(db *gorm.DB) *BillboardRepository {
	return &BillboardRepository{db: db}
}

type billboardRow struct {
	ID               uuid.UUID
	Name             string
	Location         string
	Municipality     string
	Size             string
	Level            string
	Faces            int
	Status           string
	ImageURL         *string
	IsPartnership    bool
	Capital          float64
	CapitalRemaining float64
	PartnerCompanies string
}

func (r *BillboardRepository) Create(ctx context.Context, b model.Billboard) (*model.Billboard, error) {
	var saved struct {
		ID uuid.UUID
	}
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO billboards (
			name,
			location,
			municipality,
			size,
			level,
			faces,
			status,
			image_url,
			is_partnership,
			capital,
			capital_remaining,
			partner_companies
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		b.Name,
		b.Location,
		b.Municipality,
		b.Size,
		b.Level,
		b.Faces,
		b.Status,
		b.ImageURL,
		b.IsPartnership,
		b.Capital,
		b.CapitalRemaining,
		joinPartners(b.PartnerCompanies),
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	b.ID = saved.ID
	return &b, nil
}

func (r *BillboardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Billboard, error) {
	var row billboardRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			location,
			municipality,
			size,
			level,
			faces,
			status,
			image_url,
			is_partnership,
			capital,
			capital_remaining,
			partner_companies
		FROM billboards
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	b := rowToBillboard(row)
	return &b, nil
}

func (r *BillboardRepository) List(ctx context.Context, status *model.BillboardStatus) ([]model.Billboard, error) {
	query := `
		SELECT
			id,
			name,
			location,
			municipality,
			size,
			level,
			faces,
			status,
			image_url,
			is_partnership,
			capital,
			capital_remaining,
			partner_companies
		FROM billboards
	`
	args := []interface{}{}
	if status != nil {
		query += " WHERE status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY name ASC"

	var rows []billboardRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	boards := make([]model.Billboard, 0, len(rows))
	for _, row := range rows {
		boards = append(boards, rowToBillboard(row))
	}
	return boards, nil
}

func (r *BillboardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BillboardStatus) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE billboards SET status = ? WHERE id = ?
	`, status, id).Error
}

func rowToBillboard(row billboardRow) model.Billboard {
	return model.Billboard{
		ID:               row.ID,
		Name:             row.Name,
		Location:         row.Location,
		Municipality:     row.Municipality,
		Size:             row.Size,
		Level:            row.Level,
		Faces:            row.Faces,
		Status:           model.BillboardStatus(row.Status),
		ImageURL:         row.ImageURL,
		IsPartnership:    row.IsPartnership,
		Capital:          row.Capital,
		CapitalRemaining: row.CapitalRemaining,
		PartnerCompanies: splitPartners(row.PartnerCompanies),
	}
}

func joinPartners(partners []string) string {
	return strings.Join(partners, ",")
}

func splitPartners(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
