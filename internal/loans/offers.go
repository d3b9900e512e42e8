package loans

import (
	"fmt"
	"math"

	"loan-catalog/internal/models"
)

const (
	DefaultOfferCount        = 80
	DefaultSeed       uint32 = 20241021
)

// Organizations is the fixed lender list offers are drawn from.
var Organizations = []string{
	"БыстроДеньги",
	"Займер",
	"Манимен",
	"Екапуста",
	"ВиваДеньги",
	"ДругиеДеньги",
	"ЗаймГарант",
	"ФинТраст",
	"МигКредит",
	"ДомашниеДеньги",
}

// GenerateOffers builds count offers from seed. The per-offer draw order
// is fixed; reordering draws changes every value downstream.
func GenerateOffers(count int, seed uint32) []models.LoanOffer {
	if count <= 0 {
		return []models.LoanOffer{}
	}

	rng := NewRNG(seed)
	offers := make([]models.LoanOffer, 0, count)

	for i := 0; i < count; i++ {
		organization := PickOne(rng, Organizations)
		base := 5000 + int(math.Floor(rng.Next()*95000))
		amountMax := base + int(math.Floor(rng.Next()*400000))
		termMin := 1 + int(math.Floor(rng.Next()*5))
		termMax := termMin + 6 + int(math.Floor(rng.Next()*24))
		rateFrom := round1(5 + rng.Next()*25)
		rateTo := round1(math.Max(rateFrom+rng.Next()*15, rateFrom+1))
		rating := round1(3 + rng.Next()*2)
		payout := PickSome(rng, models.AllPayoutTypes, 1, 3)
		requirements := PickSome(rng, models.AllRequirements, 1, 3)

		offers = append(offers, models.LoanOffer{
			ID:           fmt.Sprintf("offer_%d", i+1),
			Title:        fmt.Sprintf("%s: займ до %s ₽", organization, FormatNumber(amountMax)),
			Organization: organization,
			Rating:       rating,
			RateFrom:     rateFrom,
			RateTo:       rateTo,
			AmountMin:    base,
			AmountMax:    amountMax,
			TermMin:      termMin,
			TermMax:      termMax,
			PayoutTypes:  payout,
			Requirements: requirements,
		})
	}

	return offers
}

// OfferIDSet returns the ids of offers as a lookup set.
func OfferIDSet(offers []models.LoanOffer) map[string]struct{} {
	set := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		set[o.ID] = struct{}{}
	}
	return set
}
