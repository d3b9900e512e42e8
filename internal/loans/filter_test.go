package loans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/models"
)

func ptr(v float64) *float64 {
	return &v
}

func TestFilterSortPaginate_RateAscendingScenario(t *testing.T) {
	offers := GenerateOffers(120, DefaultSeed)

	result := FilterSortPaginate(offers, LoanQuery{SortBy: SortByRate, Order: OrderAsc, Page: 1, PerPage: 10})

	require.Len(t, result.Items, 10)
	assert.Equal(t, 120, result.Total)
	assert.Equal(t, 12, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	for i := 1; i < len(result.Items); i++ {
		assert.LessOrEqual(t, result.Items[i-1].RateFrom, result.Items[i].RateFrom)
	}

	ids := make([]string, 0, len(result.Items))
	for _, o := range result.Items {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{
		"offer_34", "offer_7", "offer_5", "offer_77", "offer_112",
		"offer_89", "offer_2", "offer_60", "offer_102", "offer_29",
	}, ids)
}

func TestFilterSortPaginate_AmountFilter(t *testing.T) {
	offers := GenerateOffers(120, DefaultSeed)
	amount := 50000.0

	result := FilterSortPaginate(offers, LoanQuery{Amount: &amount, PerPage: 200})

	assert.Equal(t, 49, result.Total)
	kept := map[string]bool{}
	for _, o := range result.Items {
		kept[o.ID] = true
		assert.LessOrEqual(t, float64(o.AmountMin), amount)
		assert.GreaterOrEqual(t, float64(o.AmountMax), amount)
	}
	for _, o := range offers {
		if !kept[o.ID] {
			assert.True(t, float64(o.AmountMin) > amount || amount > float64(o.AmountMax))
		}
	}
}

func TestFilterSortPaginate_Filters(t *testing.T) {
	offers := GenerateOffers(120, DefaultSeed)

	tests := []struct {
		name  string
		query LoanQuery
		check func(t *testing.T, o models.LoanOffer)
	}{
		{
			name:  "term",
			query: LoanQuery{Term: ptr(12)},
			check: func(t *testing.T, o models.LoanOffer) {
				assert.LessOrEqual(t, o.TermMin, 12)
				assert.GreaterOrEqual(t, o.TermMax, 12)
			},
		},
		{
			name:  "max rate",
			query: LoanQuery{MaxRate: ptr(12.5)},
			check: func(t *testing.T, o models.LoanOffer) {
				assert.LessOrEqual(t, o.RateFrom, 12.5)
			},
		},
		{
			name:  "payout type",
			query: LoanQuery{PayoutType: models.PayoutCash},
			check: func(t *testing.T, o models.LoanOffer) {
				assert.True(t, o.HasPayoutType(models.PayoutCash))
			},
		},
		{
			name: "requirements superset",
			query: LoanQuery{Requirements: []models.BorrowerRequirement{
				models.RequirementPassport, models.RequirementIncomeProof,
			}},
			check: func(t *testing.T, o models.LoanOffer) {
				assert.True(t, o.HasRequirement(models.RequirementPassport))
				assert.True(t, o.HasRequirement(models.RequirementIncomeProof))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.PerPage = 200
			result := FilterSortPaginate(offers, tt.query)
			assert.Less(t, result.Total, len(offers))
			assert.Len(t, result.Items, result.Total)
			for _, o := range result.Items {
				tt.check(t, o)
			}
		})
	}
}

func TestFilterSortPaginate_PagesReproduceSet(t *testing.T) {
	offers := GenerateOffers(120, DefaultSeed)

	for _, perPage := range []int{1, 7, 10, 33, 120, 500} {
		query := LoanQuery{SortBy: SortByAmount, PerPage: perPage, Page: 1}
		full := FilterSortPaginate(offers, LoanQuery{SortBy: SortByAmount, PerPage: 1000})

		first := FilterSortPaginate(offers, query)
		expectedPages := (first.Total + perPage - 1) / perPage
		if expectedPages < 1 {
			expectedPages = 1
		}
		assert.Equal(t, expectedPages, first.TotalPages)

		var all []models.LoanOffer
		for page := 1; page <= first.TotalPages; page++ {
			query.Page = page
			all = append(all, FilterSortPaginate(offers, query).Items...)
		}
		assert.Equal(t, full.Items, all, "perPage %d", perPage)
	}
}

func TestFilterSortPaginate_StableSort(t *testing.T) {
	offers := []models.LoanOffer{
		{ID: "a", Rating: 4.0},
		{ID: "b", Rating: 4.5},
		{ID: "c", Rating: 4.0},
		{ID: "d", Rating: 4.5},
		{ID: "e", Rating: 4.0},
	}

	desc := FilterSortPaginate(offers, LoanQuery{SortBy: SortByRating, Order: OrderDesc})
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, idsOf(desc.Items))

	asc := FilterSortPaginate(offers, LoanQuery{SortBy: SortByRating, Order: OrderAsc})
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, idsOf(asc.Items))
}

func TestFilterSortPaginate_PageClamping(t *testing.T) {
	offers := GenerateOffers(25, DefaultSeed)

	high := FilterSortPaginate(offers, LoanQuery{Page: 99, PerPage: 10})
	assert.Equal(t, 3, high.Page)
	assert.Len(t, high.Items, 5)

	low := FilterSortPaginate(offers, LoanQuery{Page: -3, PerPage: 10})
	assert.Equal(t, 1, low.Page)
	assert.Len(t, low.Items, 10)
}

func TestFilterSortPaginate_EmptyResult(t *testing.T) {
	offers := GenerateOffers(25, DefaultSeed)

	result := FilterSortPaginate(offers, LoanQuery{Amount: ptr(-1), Page: 4})

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	assert.Empty(t, result.Items)
}

func TestFilterSortPaginate_Defaults(t *testing.T) {
	offers := GenerateOffers(30, DefaultSeed)

	result := FilterSortPaginate(offers, LoanQuery{})

	assert.Equal(t, DefaultPerPage, result.PerPage)
	assert.Len(t, result.Items, 10)
	for i := 1; i < len(result.Items); i++ {
		assert.GreaterOrEqual(t, result.Items[i-1].Rating, result.Items[i].Rating)
	}

	rate := FilterSortPaginate(offers, LoanQuery{SortBy: SortByRate})
	for i := 1; i < len(rate.Items); i++ {
		assert.LessOrEqual(t, rate.Items[i-1].RateFrom, rate.Items[i].RateFrom)
	}
}

func TestFilterSortPaginate_DoesNotMutateInput(t *testing.T) {
	offers := GenerateOffers(40, DefaultSeed)
	before := append([]models.LoanOffer(nil), offers...)

	FilterSortPaginate(offers, LoanQuery{SortBy: SortByAmount, Order: OrderAsc})

	assert.Equal(t, before, offers)
}

func idsOf(offers []models.LoanOffer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids
}
