package loans

import (
	"math"
	"net/url"

	"loan-catalog/internal/models"
)

// CalculatorInput carries the user's choice; nil fields take the offer's
// defaults (midpoint amount and term, lowest rate).
type CalculatorInput struct {
	Amount *float64 `json:"amount,omitempty"`
	Term   *float64 `json:"term,omitempty"`
	Rate   *float64 `json:"rate,omitempty"`
}

// ParseCalculatorInput reads amount, term and rate from URL parameters.
// Malformed values are treated as absent.
func ParseCalculatorInput(values url.Values) CalculatorInput {
	return CalculatorInput{
		Amount: parseNumber(values, "amount"),
		Term:   parseNumber(values, "term"),
		Rate:   parseNumber(values, "rate"),
	}
}

// Calculation is an annuity schedule summary in roubles.
type Calculation struct {
	OfferID        string  `json:"offerId"`
	Amount         int     `json:"amount"`
	Term           int     `json:"term"`
	Rate           float64 `json:"rate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	Overpayment    float64 `json:"overpayment"`
}

// Calculate clamps the input into the offer's ranges and computes the
// annuity payment.
func Calculate(offer models.LoanOffer, in CalculatorInput) Calculation {
	amount := math.Round(float64(offer.AmountMin+offer.AmountMax) / 2)
	if in.Amount != nil {
		amount = *in.Amount
	}
	term := math.Round(float64(offer.TermMin+offer.TermMax) / 2)
	if in.Term != nil {
		term = *in.Term
	}
	rate := offer.RateFrom
	if in.Rate != nil {
		rate = *in.Rate
	}

	a := clamp(math.Round(amount), float64(offer.AmountMin), float64(offer.AmountMax))
	t := clamp(math.Round(term), float64(offer.TermMin), float64(offer.TermMax))
	r := clamp(rate, offer.RateFrom, offer.RateTo)

	payment := MonthlyPayment(a, r, int(t))
	total := payment * t

	return Calculation{
		OfferID:        offer.ID,
		Amount:         int(a),
		Term:           int(t),
		Rate:           r,
		MonthlyPayment: round2(payment),
		TotalPayment:   round2(total),
		Overpayment:    round2(total - a),
	}
}

// MonthlyPayment is the annuity payment for amount at annualRate percent
// over months. A non-positive rate splits the amount evenly.
func MonthlyPayment(amount, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 100 / 12
	if r <= 0 {
		return amount / float64(months)
	}
	return amount * r / (1 - math.Pow(1+r, -float64(months)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
