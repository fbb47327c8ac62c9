// Package schedule builds and edits contract installment schedules.
package schedule

import (
	"math"
	"time"
)

// Payment trigger labels, in the order DistributeEvenly cycles through them.
const (
	PayOnSigning      = "on_signing"
	PayOnInstallation = "on_installation"
	PayMonthly        = "monthly"
	PayBimonthly      = "bimonthly"
	PayQuarterly      = "quarterly"
	PayEndOfContract  = "end_of_contract"
)

var paymentTypeCycle = []string{
	PayOnSigning,
	PayOnInstallation,
	PayMonthly,
	PayBimonthly,
	PayQuarterly,
	PayEndOfContract,
}

// MismatchTolerance is the allowed drift between the installment sum and the
// contract final total before Validate reports a mismatch.
const MismatchTolerance = 1.0

type Installment struct {
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"payment_type"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

// DuePolicy assigns a due date from the payment trigger and schedule position.
type DuePolicy func(paymentType string, index int) time.Time

// MonthlyFrom is the standard due-date policy: on-signing installments fall
// due immediately, everything else at start plus index months.
func MonthlyFrom(start time.Time) DuePolicy {
	return func(paymentType string, index int) time.Time {
		if paymentType == PayOnSigning {
			return start
		}
		return start.AddDate(0, index, 0)
	}
}

// DistributeEvenly splits total into count equal shares at cent precision.
// Any remainder lands on the last installment so the schedule always sums to
// total exactly. A non-positive count yields an empty schedule.
func DistributeEvenly(total float64, count int, due DuePolicy) []Installment {
	if count <= 0 {
		return nil
	}

	totalCents := int64(math.Round(total * 100))
	shareCents := totalCents / int64(count)

	list := make([]Installment, count)
	assigned := int64(0)
	for i := 0; i < count; i++ {
		cents := shareCents
		if i == count-1 {
			cents = totalCents - assigned
		}
		assigned += cents

		paymentType := paymentTypeCycle[i%len(paymentTypeCycle)]
		list[i] = Installment{
			Amount:      float64(cents) / 100,
			PaymentType: paymentType,
			DueDate:     due(paymentType, i),
		}
	}
	return list
}

// Add appends a zero-amount installment the user fills in afterwards.
func Add(list []Installment, due DuePolicy) []Installment {
	index := len(list)
	paymentType := paymentTypeCycle[index%len(paymentTypeCycle)]
	return append(list, Installment{
		PaymentType: paymentType,
		DueDate:     due(paymentType, index),
	})
}

// Remove drops the installment at index. Out-of-range indexes are a no-op so
// racing UI edits never fault.
func Remove(list []Installment, index int) []Installment {
	if index < 0 || index >= len(list) {
		return list
	}
	return append(list[:index:index], list[index+1:]...)
}

// Update applies fn to the installment at index; out of range is a no-op.
func Update(list []Installment, index int, fn func(*Installment)) {
	if index < 0 || index >= len(list) {
		return
	}
	fn(&list[index])
}

// ClearAll empties the schedule.
func ClearAll() []Installment {
	return nil
}

// Sum returns the cent-exact total of the schedule.
func Sum(list []Installment) float64 {
	cents := int64(0)
	for _, inst := range list {
		cents += int64(math.Round(inst.Amount * 100))
	}
	return float64(cents) / 100
}

// Validation reports how far the schedule drifts from the contract total.
// It is informational only; correction is always left to the user.
type Validation struct {
	Sum        float64 `json:"sum"`
	Difference float64 `json:"difference"`
	OK         bool    `json:"ok"`
}

func Validate(list []Installment, finalTotal float64) Validation {
	sum := Sum(list)
	diff := sum - finalTotal
	return Validation{
		Sum:        sum,
		Difference: diff,
		OK:         math.Abs(diff) <= MismatchTolerance,
	}
}
