package model

import (
	"github.com/google/uuid"
)

// PricingRow is one row of the live pricing table. Duration columns are
// nullable: a NULL bucket means the row does not price that duration and the
// resolver falls through to the static table.
type PricingRow struct {
	ID          uuid.UUID
	Size        string
	Level       string
	Category    string
	OneMonth    *float64
	TwoMonths   *float64
	ThreeMonths *float64
	SixMonths   *float64
	FullYear    *float64
	OneDay      *float64
}

// MonthlyBuckets flattens the nullable duration columns into the bucket map
// the resolver consumes.
func (r PricingRow) MonthlyBuckets() map[int]float64 {
	buckets := make(map[int]float64, 5)
	put := func(months int, v *float64) {
		if v != nil {
			buckets[months] = *v
		}
	}
	put(1, r.OneMonth)
	put(2, r.TwoMonths)
	put(3, r.ThreeMonths)
	put(6, r.SixMonths)
	put(12, r.FullYear)
	return buckets
}
