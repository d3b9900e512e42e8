package loans

import (
	"sort"

	"loan-catalog/internal/models"
)

const DefaultRelatedCount = 4

// RelatedOffers returns up to limit other offers sharing at least one
// payout type with offer, best rated first.
func RelatedOffers(offer models.LoanOffer, offers []models.LoanOffer, limit int) []models.LoanOffer {
	if limit <= 0 {
		limit = DefaultRelatedCount
	}
	related := make([]models.LoanOffer, 0, limit)
	for _, o := range offers {
		if o.ID == offer.ID {
			continue
		}
		for _, p := range o.PayoutTypes {
			if offer.HasPayoutType(p) {
				related = append(related, o)
				break
			}
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Rating > related[j].Rating
	})

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

// TopRated returns the n best rated offers, keeping catalog order on ties.
func TopRated(offers []models.LoanOffer, n int) []models.LoanOffer {
	sorted := append([]models.LoanOffer(nil), offers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
