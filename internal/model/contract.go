package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// Contract is the persisted snapshot of a rental contract: identity, rental
// terms and the fully-computed financial breakdown. Derived fields are stored
// as computed, never re-derived by the persistence layer.
type Contract struct {
	ID               uuid.UUID
	Number           string
	CustomerID       *uuid.UUID
	CustomerName     string
	CustomerCategory string
	AdType           string
	StartAt          time.Time
	EndAt            time.Time
	DurationMonths   int
	BaseTotal        float64
	DiscountType     string
	DiscountValue    float64
	DiscountAmount   float64
	FinalTotal       float64
	InstallationCost float64
	RentalCostOnly   float64
	OperatingFeeRate float64
	OperatingFee     float64
	Status           ContractStatus
	BillboardIDs     []uuid.UUID   `gorm:"-"`
	Installments     []Installment `gorm:"-"`
	CreatedAt        time.Time
}

type Installment struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Seq         int // creation/display order, not necessarily due-date order
	Amount      float64
	PaymentType string
	Description string
	DueDate     time.Time
	PaidAt      *time.Time
}
