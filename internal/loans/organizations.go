package loans

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"loan-catalog/internal/models"
)

// Organization groups the catalog offers of one lender.
type Organization struct {
	Name   string             `json:"name"`
	Slug   string             `json:"slug"`
	Offers []models.LoanOffer `json:"offers"`
}

// OrganizationSummary aggregates an organization's offers. Zero values
// mean the organization has no offers.
type OrganizationSummary struct {
	TotalOffers   int                          `json:"totalOffers"`
	AverageRating float64                      `json:"averageRating"`
	MinRate       float64                      `json:"minRate"`
	MaxRate       float64                      `json:"maxRate"`
	MinAmount     int                          `json:"minAmount"`
	MaxAmount     int                          `json:"maxAmount"`
	MinTerm       int                          `json:"minTerm"`
	MaxTerm       int                          `json:"maxTerm"`
	PayoutTypes   []models.PayoutType          `json:"payoutTypes"`
	Requirements  []models.BorrowerRequirement `json:"requirements"`
}

func OrganizationSlug(name string) string {
	return Slugify(name)
}

// FindOrganizationBySlug collects the offers of the first organization
// whose slug matches.
func FindOrganizationBySlug(offers []models.LoanOffer, s string) (Organization, bool) {
	name := ""
	for _, o := range offers {
		if OrganizationSlug(o.Organization) == s {
			name = o.Organization
			break
		}
	}
	if name == "" {
		return Organization{}, false
	}

	org := Organization{Name: name, Slug: OrganizationSlug(name)}
	for _, o := range offers {
		if o.Organization == name {
			org.Offers = append(org.Offers, o)
		}
	}
	return org, true
}

func SummarizeOffers(offers []models.LoanOffer) OrganizationSummary {
	summary := OrganizationSummary{
		PayoutTypes:  []models.PayoutType{},
		Requirements: []models.BorrowerRequirement{},
	}
	if len(offers) == 0 {
		return summary
	}

	first := offers[0]
	summary.TotalOffers = len(offers)
	summary.MinRate, summary.MaxRate = first.RateFrom, first.RateTo
	summary.MinAmount, summary.MaxAmount = first.AmountMin, first.AmountMax
	summary.MinTerm, summary.MaxTerm = first.TermMin, first.TermMax

	ratingSum := 0.0
	payouts := map[models.PayoutType]bool{}
	reqs := map[models.BorrowerRequirement]bool{}
	for _, o := range offers {
		ratingSum += o.Rating
		summary.MinRate = math.Min(summary.MinRate, o.RateFrom)
		summary.MaxRate = math.Max(summary.MaxRate, o.RateTo)
		summary.MinAmount = min(summary.MinAmount, o.AmountMin)
		summary.MaxAmount = max(summary.MaxAmount, o.AmountMax)
		summary.MinTerm = min(summary.MinTerm, o.TermMin)
		summary.MaxTerm = max(summary.MaxTerm, o.TermMax)
		for _, p := range o.PayoutTypes {
			if !payouts[p] {
				payouts[p] = true
				summary.PayoutTypes = append(summary.PayoutTypes, p)
			}
		}
		for _, r := range o.Requirements {
			if !reqs[r] {
				reqs[r] = true
				summary.Requirements = append(summary.Requirements, r)
			}
		}
	}
	summary.AverageRating = round1(ratingSum / float64(len(offers)))

	sort.Slice(summary.PayoutTypes, func(i, j int) bool { return summary.PayoutTypes[i] < summary.PayoutTypes[j] })
	sort.Slice(summary.Requirements, func(i, j int) bool { return summary.Requirements[i] < summary.Requirements[j] })

	return summary
}

// BuildDescription renders the one-line organization blurb used in page
// metadata.
func BuildDescription(name string, summary OrganizationSummary) string {
	if summary.TotalOffers == 0 {
		return name + ": предложения по займам"
	}
	parts := []string{
		fmt.Sprintf("%d предложений", summary.TotalOffers),
		"ставка от " + FormatRateRU(summary.MinRate),
		"сумма до " + FormatRub(summary.MaxAmount),
	}
	return name + ": " + strings.Join(parts, ", ")
}

// OrganizationReviewCount keeps organization pages at three to five
// reviews.
func OrganizationReviewCount(summary OrganizationSummary) int {
	return min(5, max(3, summary.TotalOffers))
}

func OrganizationPath(name string) string {
	return "/organizations/" + OrganizationSlug(name)
}
