// Package finance computes the derived financial breakdown of a rental
// contract: discount, installation cost, operating fee and totals.
package finance

// DefaultOperatingFeeRate applies when the caller never set a rate explicitly.
const DefaultOperatingFeeRate = 3.0

const (
	DiscountPercent = "percent"
	DiscountAmount  = "amount"
)

// InstallationDetail is one billboard's installation line on a contract.
// The stored price covers the full two-face job, so billboards with two
// faces contribute half of it per contract.
type InstallationDetail struct {
	BillboardID string  `json:"billboard_id"`
	Price       float64 `json:"price"`
	Faces       int     `json:"faces"`
}

// EffectivePrice is the amount this detail contributes to the contract's
// installation cost.
func (d InstallationDetail) EffectivePrice() float64 {
	if d.Faces >= 2 {
		return d.Price / 2
	}
	return d.Price
}

// DisplayFullPrice is the doubled original price shown in the UI as "what it
// would have been without the per-face split". Never used in totals.
func (d InstallationDetail) DisplayFullPrice() float64 {
	return d.Price * 2
}

type Input struct {
	BaseTotal        float64
	DiscountType     string
	DiscountValue    float64
	Installation     []InstallationDetail
	OperatingFeeRate *float64
}

type Breakdown struct {
	BaseTotal        float64 `json:"base_total"`
	DiscountType     string  `json:"discount_type"`
	DiscountValue    float64 `json:"discount_value"`
	DiscountAmount   float64 `json:"discount_amount"`
	FinalTotal       float64 `json:"final_total"`
	InstallationCost float64 `json:"installation_cost"`
	RentalCostOnly   float64 `json:"rental_cost_only"`
	OperatingFeeRate float64 `json:"operating_fee_rate"`
	OperatingFee     float64 `json:"operating_fee"`
}

// Compute derives the full financial breakdown. The discount is clamped to
// [0, baseTotal] so the final total never goes negative; rentalCostOnly is
// deliberately not clamped — a negative value signals an over-discounted or
// over-installed contract and is the caller's to surface.
func Compute(in Input) Breakdown {
	discount := in.DiscountValue
	if in.DiscountType == DiscountPercent {
		discount = in.BaseTotal * in.DiscountValue / 100
	}
	if discount < 0 {
		discount = 0
	}
	if discount > in.BaseTotal {
		discount = in.BaseTotal
	}

	finalTotal := in.BaseTotal - discount

	installation := 0.0
	for _, detail := range in.Installation {
		installation += detail.EffectivePrice()
	}

	rentalOnly := finalTotal - installation

	rate := DefaultOperatingFeeRate
	if in.OperatingFeeRate != nil {
		rate = *in.OperatingFeeRate
	}

	return Breakdown{
		BaseTotal:        in.BaseTotal,
		DiscountType:     in.DiscountType,
		DiscountValue:    in.DiscountValue,
		DiscountAmount:   discount,
		FinalTotal:       finalTotal,
		InstallationCost: installation,
		RentalCostOnly:   rentalOnly,
		OperatingFeeRate: rate,
		OperatingFee:     rentalOnly * rate / 100,
	}
}
