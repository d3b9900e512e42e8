// internal/seed/dataset.go
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

const (
	DefaultSeed       uint32 = 424242
	OrganizationCount        = 9
	OfferCount               = 60
)

// BaseDate anchors every generated timestamp so reruns produce identical rows.
var BaseDate = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

var (
	idNamespace    = uuid.MustParse("6f1c2d4e-8a3b-4c5d-9e7f-0a1b2c3d4e5f")
	day            = 24 * time.Hour
	reviewTitles   = []string{"Great value", "Highly recommended", "Decent overall", "Could be better", "Not worth it"}
	companyStems   = []string{"Credit", "Finance", "Capital", "Money", "Lend", "Trust", "Fund", "Cash", "Bank"}
	companySuffix  = []string{"Group", "Partners", "Holdings", "Systems", "LLC", "Inc"}
	catchPhrases   = []string{"Fast decisions for everyday needs", "Transparent terms without hidden fees", "Flexible repayments for small business", "Online approval in minutes", "Trusted lending since day one"}
	adjectives     = []string{"Quick", "Smart", "Simple", "Flexible", "Premium", "Friendly", "Instant", "Modern"}
	products       = []string{"Loan", "Card", "Deposit", "Credit Line", "Microloan", "Installment"}
	months         = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	jobTitles      = []string{"Credit Analyst", "Loan Officer", "Risk Manager", "Support Specialist", "Collections Agent"}
	loremSentences = []string{
		"Apply online and receive a decision the same day.",
		"No collateral is required for the first loan.",
		"Repay early without penalties at any time.",
		"Terms depend on your credit history and income.",
		"Funds arrive on your card within minutes.",
		"Support is available around the clock.",
	}
	domainSuffix = []string{"com", "net", "org", "io"}
)

type cityTemplate struct {
	Name        string
	State       string
	CountryCode string
}

var cityCatalog = []cityTemplate{
	{"New York", "NY", "US"},
	{"Los Angeles", "CA", "US"},
	{"Chicago", "IL", "US"},
	{"Miami", "FL", "US"},
	{"Seattle", "WA", "US"},
	{"Austin", "TX", "US"},
	{"San Francisco", "CA", "US"},
	{"Boston", "MA", "US"},
	{"Denver", "CO", "US"},
	{"Atlanta", "GA", "US"},
	{"London", "", "GB"},
	{"Berlin", "", "DE"},
	{"Paris", "", "FR"},
	{"Toronto", "ON", "CA"},
	{"Sydney", "NSW", "AU"},
}

var tagCatalog = []string{
	"Technology", "Food & Drink", "Health & Wellness", "Beauty", "Travel",
	"Fitness", "Education", "Entertainment", "Home & Garden", "Automotive",
	"Pets", "Kids & Family", "Finance", "Real Estate", "Sports",
	"Music", "Art", "Fashion", "Outdoors", "Events",
}

// Dataset is everything one seeding run writes.
type Dataset struct {
	Cities        []models.City
	Tags          []models.Tag
	Organizations []models.Organization
	Offers        []models.Offer
	Reviews       []models.OfferReview
}

// Generate builds the demo dataset. The same seed always yields the same
// rows, ids included.
func Generate(seed uint32) Dataset {
	g := &generator{rng: loans.NewRNG(seed), seed: seed}

	var ds Dataset
	for _, c := range cityCatalog {
		parts := []string{c.Name}
		if c.State != "" {
			parts = append(parts, c.State)
		}
		parts = append(parts, c.CountryCode)
		slug := loans.Slugify(strings.Join(parts, " "))
		ds.Cities = append(ds.Cities, models.City{
			ID:          g.id("city", slug),
			Name:        c.Name,
			State:       c.State,
			CountryCode: c.CountryCode,
			Slug:        slug,
		})
	}

	for _, name := range tagCatalog {
		slug := loans.Slugify(name)
		ds.Tags = append(ds.Tags, models.Tag{
			ID:          g.id("tag", slug),
			Name:        name,
			Slug:        slug,
			Description: name + " related offers",
		})
	}

	for i := 0; i < OrganizationCount; i++ {
		ds.Organizations = append(ds.Organizations, g.organization(i, ds.Cities))
	}

	for i := 0; i < OfferCount; i++ {
		org := loans.PickOne(g.rng, ds.Organizations)
		offer := g.offer(i, org, ds.Cities, ds.Tags)
		ds.Offers = append(ds.Offers, offer)

		var count int
		if offer.Status == models.OfferStatusPublished {
			count = g.intRange(0, 5)
		} else {
			count = g.intRange(0, 2)
		}
		for j := 0; j < count; j++ {
			ds.Reviews = append(ds.Reviews, g.review(offer, j))
		}
	}

	return ds
}

type generator struct {
	rng  *loans.RNG
	seed uint32
}

// id derives a stable UUID from the seed and a natural key.
func (g *generator) id(kind, key string) string {
	return uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%d/%s/%s", g.seed, kind, key))).String()
}

func (g *generator) intRange(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func (g *generator) chance(p float64) bool {
	return g.rng.Next() < p
}

func (g *generator) sentences(min, max int) string {
	n := g.intRange(min, max)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, loans.PickOne(g.rng, loremSentences))
	}
	return strings.Join(out, " ")
}

func (g *generator) organization(index int, cities []models.City) models.Organization {
	base := loans.PickOne(g.rng, companyStems) + " " + loans.PickOne(g.rng, companySuffix)
	city := loans.PickOne(g.rng, cities)
	name := fmt.Sprintf("%s %d", base, index+1)
	return models.Organization{
		ID:          g.id("organization", name),
		Name:        name,
		Description: loans.PickOne(g.rng, catchPhrases),
		Website:     "https://www." + loans.Slugify(base) + ".com",
		CityID:      city.ID,
	}
}

func (g *generator) offer(index int, org models.Organization, cities []models.City, tags []models.Tag) models.Offer {
	typ := loans.PickOne(g.rng, models.AllOfferTypes)

	// Published offers are weighted heavier.
	var status models.OfferStatus
	if g.chance(0.7) {
		status = loans.PickOne(g.rng, []models.OfferStatus{models.OfferStatusPublished, models.OfferStatusPublished, models.OfferStatusPublished, models.OfferStatusDraft})
	} else {
		status = loans.PickOne(g.rng, []models.OfferStatus{models.OfferStatusArchived, models.OfferStatusDraft})
	}

	cityID := loans.PickOne(g.rng, cities).ID
	if g.chance(0.7) && org.CityID != "" {
		cityID = org.CityID
	}

	var title string
	switch typ {
	case models.OfferTypeEvent:
		title = fmt.Sprintf("%s %s %s Event", loans.PickOne(g.rng, months), loans.PickOne(g.rng, adjectives), loans.PickOne(g.rng, products))
	case models.OfferTypeJob:
		title = fmt.Sprintf("%s at %s", loans.PickOne(g.rng, jobTitles), org.Name)
	case models.OfferTypeCoupon:
		title = fmt.Sprintf("%s coupon on %s", loans.PickOne(g.rng, adjectives), loans.PickOne(g.rng, products))
	case models.OfferTypeDiscount:
		title = fmt.Sprintf("%d%% off %s %s", g.intRange(10, 60), loans.PickOne(g.rng, adjectives), loans.PickOne(g.rng, products))
	default:
		title = fmt.Sprintf("%s %s deal", loans.PickOne(g.rng, adjectives), loans.PickOne(g.rng, products))
	}

	description := g.sentences(2, 6)
	startsAt := BaseDate.Add(time.Duration(g.intRange(-45, 15)) * day)
	endsAt := startsAt.Add(time.Duration(g.intRange(3, 45)) * day)

	switch {
	case status == models.OfferStatusPublished && endsAt.Before(BaseDate):
		status = models.OfferStatusArchived
	case status == models.OfferStatusArchived && endsAt.After(BaseDate):
		status = models.OfferStatusPublished
	}

	picked := loans.PickSome(g.rng, tags, 1, 4)
	tagIDs := make([]string, 0, len(picked))
	for _, t := range picked {
		tagIDs = append(tagIDs, t.ID)
	}

	var url string
	if g.chance(0.7) {
		url = fmt.Sprintf("https://%s.%s/%s", loans.Slugify(org.Name), loans.PickOne(g.rng, domainSuffix), loans.Slugify(title))
	}

	return models.Offer{
		ID:             g.id("offer", fmt.Sprintf("%d", index)),
		Title:          title,
		Description:    description,
		Status:         status,
		Type:           typ,
		URL:            url,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		OrganizationID: org.ID,
		CityID:         cityID,
		TagIDs:         tagIDs,
	}
}

func (g *generator) review(offer models.Offer, index int) models.OfferReview {
	rating := models.AllReviewRatings[g.intRange(1, 5)-1]
	return models.OfferReview{
		ID:        g.id("review", fmt.Sprintf("%s/%d", offer.ID, index)),
		Rating:    rating,
		Title:     loans.PickOne(g.rng, reviewTitles),
		Comment:   g.sentences(1, 3),
		OfferID:   offer.ID,
		CreatedAt: BaseDate.Add(time.Duration(g.intRange(-60, 0)) * day),
	}
}
