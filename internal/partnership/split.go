// Package partnership computes the revenue split for shared billboards under
// the two-phase capital-recoupment policy.
package partnership

// PlaceholderPartner receives the partner share when a shared billboard has
// no partner companies listed, so no money is silently dropped.
const PlaceholderPartner = "شريك"

// Ledger record kinds.
const (
	KindCompanyShare     = "company_share"
	KindPartnerShare     = "partner_share"
	KindCapitalDeduction = "capital_deduction"
)

// Recoupment-phase percentages. Once the capital is recovered the split
// becomes an even 50/50 with no deduction, permanently.
const (
	recoupCompanyPct = 0.35
	recoupPartnerPct = 0.35
	recoupDeductPct  = 0.30
	finalSharePct    = 0.50
)

type Split struct {
	Company             float64 `json:"company"`
	Partner             float64 `json:"partner"`
	Deduct              float64 `json:"deduct"`
	NewCapitalRemaining float64 `json:"new_capital_remaining"`
}

// Entry is one append-only ledger record produced from a rent event.
type Entry struct {
	Beneficiary string  `json:"beneficiary"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind"`
}

// ComputeSplit applies the two-phase policy to a single rent amount.
// While capital remains unrecovered: 35% company, 35% partner, 30% capital
// deduction. After recoupment: 50/50, no deduction. The remaining capital
// only ever decreases; the transition at zero is one-way.
func ComputeSplit(capitalRemaining, rentAmount float64) Split {
	if capitalRemaining <= 0 {
		return Split{
			Company: rentAmount * finalSharePct,
			Partner: rentAmount * finalSharePct,
		}
	}

	deduct := rentAmount * recoupDeductPct
	remaining := capitalRemaining - deduct
	if remaining < 0 {
		remaining = 0
	}
	return Split{
		Company:             rentAmount * recoupCompanyPct,
		Partner:             rentAmount * recoupPartnerPct,
		Deduct:              deduct,
		NewCapitalRemaining: remaining,
	}
}

// Allocate turns a split into ledger entries, dividing the partner share
// equally among partners. With no partners listed the whole partner share is
// booked against the generic placeholder.
func Allocate(split Split, company string, partners []string) []Entry {
	entries := []Entry{
		{Beneficiary: company, Amount: split.Company, Kind: KindCompanyShare},
	}

	if len(partners) == 0 {
		entries = append(entries, Entry{
			Beneficiary: PlaceholderPartner,
			Amount:      split.Partner,
			Kind:        KindPartnerShare,
		})
	} else {
		perPartner := split.Partner / float64(len(partners))
		for _, partner := range partners {
			entries = append(entries, Entry{
				Beneficiary: partner,
				Amount:      perPartner,
				Kind:        KindPartnerShare,
			})
		}
	}

	if split.Deduct > 0 {
		entries = append(entries, Entry{
			Beneficiary: company,
			Amount:      split.Deduct,
			Kind:        KindCapitalDeduction,
		})
	}
	return entries
}
