package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerTransaction is one append-only ledger record produced by applying
// rent to a shared billboard.
type PartnerTransaction struct {
	ID          uuid.UUID
	BillboardID uuid.UUID
	ContractID  *uuid.UUID
	Beneficiary string
	Amount      float64
	Kind        string
	CreatedAt   time.Time
}
