// internal/models/loan.go
package models

// PayoutType is a channel through which the loan is paid out.
type PayoutType string

const (
	PayoutCard    PayoutType = "card"
	PayoutBank    PayoutType = "bank"
	PayoutCash    PayoutType = "cash"
	PayoutEWallet PayoutType = "ewallet"
)

// AllPayoutTypes lists payout channels in catalog order.
var AllPayoutTypes = []PayoutType{PayoutCard, PayoutBank, PayoutCash, PayoutEWallet}

// IsValid reports whether p is a known payout channel.
func (p PayoutType) IsValid() bool {
	for _, v := range AllPayoutTypes {
		if v == p {
			return true
		}
	}
	return false
}

// BorrowerRequirement is a condition the borrower has to satisfy.
type BorrowerRequirement string

const (
	RequirementPassport    BorrowerRequirement = "passport"
	RequirementIncomeProof BorrowerRequirement = "incomeProof"
	RequirementNoBadCredit BorrowerRequirement = "noBadCredit"
	RequirementCitizenship BorrowerRequirement = "citizenship"
	RequirementAge18Plus   BorrowerRequirement = "age18Plus"
)

// AllRequirements lists borrower requirements in catalog order.
var AllRequirements = []BorrowerRequirement{
	RequirementPassport,
	RequirementIncomeProof,
	RequirementNoBadCredit,
	RequirementCitizenship,
	RequirementAge18Plus,
}

func (r BorrowerRequirement) IsValid() bool {
	for _, v := range AllRequirements {
		if v == r {
			return true
		}
	}
	return false
}

// LoanOffer is a generated catalog entry. Rates are percent per year,
// terms are months.
type LoanOffer struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Organization string                `json:"organization"`
	Rating       float64               `json:"rating"`
	RateFrom     float64               `json:"rateFrom"`
	RateTo       float64               `json:"rateTo"`
	AmountMin    int                   `json:"amountMin"`
	AmountMax    int                   `json:"amountMax"`
	TermMin      int                   `json:"termMin"`
	TermMax      int                   `json:"termMax"`
	PayoutTypes  []PayoutType          `json:"payoutTypes"`
	Requirements []BorrowerRequirement `json:"requirements"`
}

// HasPayoutType reports whether the offer pays out through p.
func (o LoanOffer) HasPayoutType(p PayoutType) bool {
	for _, v := range o.PayoutTypes {
		if v == p {
			return true
		}
	}
	return false
}

// HasRequirement reports whether the offer lists r.
func (o LoanOffer) HasRequirement(r BorrowerRequirement) bool {
	for _, v := range o.Requirements {
		if v == r {
			return true
		}
	}
	return false
}
