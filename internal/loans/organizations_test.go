package loans

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/models"
)

func TestFindOrganizationBySlug(t *testing.T) {
	offers := GenerateOffers(120, DefaultSeed)

	org, ok := FindOrganizationBySlug(offers, OrganizationSlug("ЗаймГарант"))
	require.True(t, ok)

	assert.Equal(t, "ЗаймГарант", org.Name)
	require.Len(t, org.Offers, 13)
	assert.Equal(t, []string{"offer_1", "offer_3", "offer_4", "offer_14", "offer_27"}, idsOf(org.Offers[:5]))
	for _, o := range org.Offers {
		assert.Equal(t, "ЗаймГарант", o.Organization)
	}

	_, ok = FindOrganizationBySlug(offers, "no-such-lender")
	assert.False(t, ok)
}

func TestOrganizationCountsCoverCatalog(t *testing.T) {
	offers := GenerateOffers(120, DefaultSeed)
	want := map[string]int{
		"МигКредит":      14,
		"ДомашниеДеньги": 14,
		"ЗаймГарант":     13,
		"ДругиеДеньги":   13,
		"ФинТраст":       13,
		"БыстроДеньги":   12,
		"Манимен":        12,
		"Займер":         11,
		"Екапуста":       10,
		"ВиваДеньги":     8,
	}

	for name, count := range want {
		org, ok := FindOrganizationBySlug(offers, OrganizationSlug(name))
		require.True(t, ok, name)
		assert.Len(t, org.Offers, count, name)
	}
}

func TestSummarizeOffers(t *testing.T) {
	org, ok := FindOrganizationBySlug(GenerateOffers(120, DefaultSeed), OrganizationSlug("ЗаймГарант"))
	require.True(t, ok)

	summary := SummarizeOffers(org.Offers)

	assert.Equal(t, 13, summary.TotalOffers)
	assert.Equal(t, 3.9, summary.AverageRating)
	assert.Equal(t, 10.2, summary.MinRate)
	assert.Equal(t, 44.1, summary.MaxRate)
	assert.Equal(t, 7648, summary.MinAmount)
	assert.Equal(t, 428310, summary.MaxAmount)
	assert.Equal(t, 1, summary.MinTerm)
	assert.Equal(t, 31, summary.MaxTerm)
	assert.Equal(t, []models.PayoutType{
		models.PayoutBank, models.PayoutCard, models.PayoutCash, models.PayoutEWallet,
	}, summary.PayoutTypes)
	assert.Equal(t, []models.BorrowerRequirement{
		models.RequirementAge18Plus,
		models.RequirementCitizenship,
		models.RequirementIncomeProof,
		models.RequirementNoBadCredit,
		models.RequirementPassport,
	}, summary.Requirements)
}

func TestSummarizeOffers_Empty(t *testing.T) {
	summary := SummarizeOffers(nil)

	assert.Zero(t, summary.TotalOffers)
	assert.Zero(t, summary.AverageRating)
	assert.NotNil(t, summary.PayoutTypes)
	assert.NotNil(t, summary.Requirements)
	assert.Equal(t, 3, OrganizationReviewCount(summary))
}

func TestBuildDescription(t *testing.T) {
	org, _ := FindOrganizationBySlug(GenerateOffers(120, DefaultSeed), OrganizationSlug("ЗаймГарант"))
	desc := BuildDescription(org.Name, SummarizeOffers(org.Offers))

	assert.True(t, strings.HasPrefix(desc, "ЗаймГарант: 13 предложений, ставка от 10"))
	assert.Contains(t, desc, "сумма до ")
	assert.True(t, strings.HasSuffix(desc, " ₽"))

	assert.Equal(t, "Пусто: предложения по займам", BuildDescription("Пусто", SummarizeOffers(nil)))
}

func TestOrganizationReviewCount(t *testing.T) {
	assert.Equal(t, 3, OrganizationReviewCount(OrganizationSummary{TotalOffers: 1}))
	assert.Equal(t, 4, OrganizationReviewCount(OrganizationSummary{TotalOffers: 4}))
	assert.Equal(t, 5, OrganizationReviewCount(OrganizationSummary{TotalOffers: 13}))
}
