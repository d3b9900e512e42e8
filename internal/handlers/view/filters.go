// internal/handlers/view/filters.go
package view

import (
	"strconv"

	"loan-catalog/internal/compare"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FilterBar is the state of the catalog filter form.
type FilterBar struct {
	Action         string          `json:"action"`
	Query          loans.LoanQuery `json:"query"`
	PayoutTypes    []Choice        `json:"payoutTypes"`
	Requirements   []Choice        `json:"requirements"`
	SortOptions    []Choice        `json:"sortOptions"`
	OrderOptions   []Choice        `json:"orderOptions"`
	PerPageOptions []Choice        `json:"perPageOptions"`
}

// PerPageOptions are the page sizes offered in the filter form.
var PerPageOptions = []int{10, 20, 30, 50}

func NewFilterBar(action string, q loans.LoanQuery) FilterBar {
	bar := FilterBar{Action: action, Query: q}

	for _, p := range models.AllPayoutTypes {
		bar.PayoutTypes = append(bar.PayoutTypes, Choice{
			Value: string(p), Label: compare.PayoutTypeLabels[p], Selected: q.PayoutType == p,
		})
	}

	selected := make(map[models.BorrowerRequirement]bool, len(q.Requirements))
	for _, r := range q.Requirements {
		selected[r] = true
	}
	for _, r := range models.AllRequirements {
		bar.Requirements = append(bar.Requirements, Choice{
			Value: string(r), Label: compare.RequirementLabels[r], Selected: selected[r],
		})
	}

	for _, s := range []struct {
		by    loans.SortBy
		label string
	}{
		{loans.SortByRating, "Рейтинг"},
		{loans.SortByRate, "Ставка"},
		{loans.SortByAmount, "Сумма"},
	} {
		bar.SortOptions = append(bar.SortOptions, Choice{Value: string(s.by), Label: s.label, Selected: q.SortBy == s.by})
	}

	bar.OrderOptions = []Choice{
		{Value: string(loans.OrderAsc), Label: "По возрастанию", Selected: q.Order == loans.OrderAsc},
		{Value: string(loans.OrderDesc), Label: "По убыванию", Selected: q.Order == loans.OrderDesc},
	}

	perPage := q.PerPage
	if perPage == 0 {
		perPage = loans.DefaultPerPage
	}
	for _, n := range PerPageOptions {
		bar.PerPageOptions = append(bar.PerPageOptions, Choice{Value: strconv.Itoa(n), Label: strconv.Itoa(n), Selected: n == perPage})
	}
	return bar
}
