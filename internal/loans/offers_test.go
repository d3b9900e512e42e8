package loans

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/models"
)

// ==========================
// Determinism
// ==========================

func TestGenerateOffers_Deterministic(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, DefaultSeed} {
		a := GenerateOffers(DefaultOfferCount, seed)
		b := GenerateOffers(DefaultOfferCount, seed)
		assert.Equal(t, a, b, "seed %d", seed)
	}
}

func TestGenerateOffers_DifferentSeedsDiffer(t *testing.T) {
	a := GenerateOffers(10, 1)
	b := GenerateOffers(10, 2)
	assert.NotEqual(t, a, b)
}

func TestGenerateOffers_PrefixStable(t *testing.T) {
	short := GenerateOffers(10, DefaultSeed)
	long := GenerateOffers(120, DefaultSeed)
	assert.Equal(t, short, long[:10])
}

func TestGenerateOffers_FirstOfferFixture(t *testing.T) {
	offers := GenerateOffers(3, DefaultSeed)
	require.Len(t, offers, 3)

	first := offers[0]
	assert.Equal(t, "offer_1", first.ID)
	assert.Equal(t, "ЗаймГарант", first.Organization)
	assert.Equal(t, 13931, first.AmountMin)
	assert.Equal(t, 149465, first.AmountMax)
	assert.Equal(t, 4, first.TermMin)
	assert.Equal(t, 31, first.TermMax)
	assert.Equal(t, 29.6, first.RateFrom)
	assert.Equal(t, 44.1, first.RateTo)
	assert.Equal(t, 5.0, first.Rating)
	assert.Equal(t, []models.PayoutType{models.PayoutCash}, first.PayoutTypes)
	assert.Equal(t, []models.BorrowerRequirement{models.RequirementIncomeProof}, first.Requirements)

	second := offers[1]
	assert.Equal(t, "ВиваДеньги", second.Organization)
	assert.Equal(t, []models.PayoutType{models.PayoutEWallet, models.PayoutBank, models.PayoutCard}, second.PayoutTypes)
	assert.Equal(t, []models.BorrowerRequirement{
		models.RequirementCitizenship,
		models.RequirementIncomeProof,
		models.RequirementNoBadCredit,
	}, second.Requirements)
}

func TestGenerateOffers_Title(t *testing.T) {
	offer := GenerateOffers(1, DefaultSeed)[0]

	assert.True(t, strings.HasPrefix(offer.Title, "ЗаймГарант: займ до "))
	assert.True(t, strings.HasSuffix(offer.Title, " ₽"))
	digits := strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(offer.Title)
	assert.Contains(t, digits, "149465")
}

// ==========================
// Invariants
// ==========================

func TestGenerateOffers_IDsAndRanges(t *testing.T) {
	offers := GenerateOffers(500, DefaultSeed)
	require.Len(t, offers, 500)

	ids := map[string]bool{}
	for i, o := range offers {
		assert.Equal(t, fmt.Sprintf("offer_%d", i+1), o.ID)
		assert.False(t, ids[o.ID])
		ids[o.ID] = true

		assert.Contains(t, Organizations, o.Organization)
		assert.GreaterOrEqual(t, o.Rating, 3.0)
		assert.LessOrEqual(t, o.Rating, 5.0)
		assert.GreaterOrEqual(t, o.RateFrom, 5.0)
		assert.LessOrEqual(t, o.RateFrom, 30.0)
		assert.GreaterOrEqual(t, o.RateTo, round1(o.RateFrom+1)-1e-9)
		assert.LessOrEqual(t, o.RateTo, o.RateFrom+15.05)
		assert.GreaterOrEqual(t, o.AmountMin, 5000)
		assert.LessOrEqual(t, o.AmountMin, 100000)
		assert.GreaterOrEqual(t, o.AmountMax, o.AmountMin)
		assert.GreaterOrEqual(t, o.TermMin, 1)
		assert.LessOrEqual(t, o.TermMin, 6)
		assert.Greater(t, o.TermMax, o.TermMin)

		assertDistinctWithin(t, o.PayoutTypes, 1, 3)
		assertDistinctWithin(t, o.Requirements, 1, 3)
	}
}

func TestGenerateOffers_EmptyCount(t *testing.T) {
	assert.Empty(t, GenerateOffers(0, DefaultSeed))
	assert.Empty(t, GenerateOffers(-5, DefaultSeed))
}

func TestOfferIDSet(t *testing.T) {
	set := OfferIDSet(GenerateOffers(5, DefaultSeed))
	assert.Len(t, set, 5)
	assert.Contains(t, set, "offer_5")
}

func assertDistinctWithin[T comparable](t *testing.T, values []T, min, max int) {
	t.Helper()
	assert.GreaterOrEqual(t, len(values), min)
	assert.LessOrEqual(t, len(values), max)
	seen := map[T]bool{}
	for _, v := range values {
		assert.False(t, seen[v], "duplicate %v", v)
		seen[v] = true
	}
}
