package loans

import (
	"sort"

	"loan-catalog/internal/models"
)

// PageResult is one window of a filtered and sorted catalog. Total counts
// the filtered set before pagination.
type PageResult struct {
	Items      []models.LoanOffer `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PerPage    int                `json:"perPage"`
	TotalPages int                `json:"totalPages"`
}

// FilterSortPaginate applies q to offers without modifying the input.
// Out-of-range pages are clamped, never rejected.
func FilterSortPaginate(offers []models.LoanOffer, q LoanQuery) PageResult {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortByRating
	}
	order := q.Order
	if order == "" {
		order = DefaultOrder(sortBy)
	}
	page := q.Page
	if page == 0 {
		page = DefaultPage
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	items := make([]models.LoanOffer, 0, len(offers))
	for _, o := range offers {
		if matches(o, q) {
			items = append(items, o)
		}
	}

	key := sortKey(sortBy)
	sort.SliceStable(items, func(i, j int) bool {
		if order == OrderAsc {
			return key(items[i]) < key(items[j])
		}
		return key(items[i]) > key(items[j])
	})

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	safePage := page
	if safePage < 1 {
		safePage = 1
	}
	if safePage > totalPages {
		safePage = totalPages
	}

	start := (safePage - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageResult{
		Items:      items[start:end],
		Total:      total,
		Page:       safePage,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

func matches(o models.LoanOffer, q LoanQuery) bool {
	if q.Amount != nil {
		amount := *q.Amount
		if float64(o.AmountMin) > amount || amount > float64(o.AmountMax) {
			return false
		}
	}
	if q.Term != nil {
		term := *q.Term
		if float64(o.TermMin) > term || term > float64(o.TermMax) {
			return false
		}
	}
	if q.MaxRate != nil && o.RateFrom > *q.MaxRate {
		return false
	}
	if q.PayoutType != "" && !o.HasPayoutType(q.PayoutType) {
		return false
	}
	for _, r := range q.Requirements {
		if !o.HasRequirement(r) {
			return false
		}
	}
	return true
}

func sortKey(sortBy SortBy) func(models.LoanOffer) float64 {
	switch sortBy {
	case SortByRate:
		return func(o models.LoanOffer) float64 { return o.RateFrom }
	case SortByAmount:
		return func(o models.LoanOffer) float64 { return float64(o.AmountMax) }
	default:
		return func(o models.LoanOffer) float64 { return o.Rating }
	}
}
