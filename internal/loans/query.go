package loans

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"loan-catalog/internal/models"
)

type SortBy string

const (
	SortByRating SortBy = "rating"
	SortByRate   SortBy = "rate"
	SortByAmount SortBy = "amount"
)

func (s SortBy) IsValid() bool {
	return s == SortByRating || s == SortByRate || s == SortByAmount
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// LoanQuery narrows, orders and windows a catalog. Nil numeric filters and
// an empty PayoutType are absent.
type LoanQuery struct {
	Amount       *float64                     `json:"amount,omitempty"`
	Term         *float64                     `json:"term,omitempty"`
	MaxRate      *float64                     `json:"maxRate,omitempty"`
	PayoutType   models.PayoutType            `json:"payoutType,omitempty"`
	Requirements []models.BorrowerRequirement `json:"requirements,omitempty"`
	SortBy       SortBy                       `json:"sortBy"`
	Order        SortOrder                    `json:"order"`
	Page         int                          `json:"page"`
	PerPage      int                          `json:"perPage"`
}

// DefaultOrder is asc for rate and desc otherwise. It only applies when
// the caller gave no order at all.
func DefaultOrder(sortBy SortBy) SortOrder {
	if sortBy == SortByRate {
		return OrderAsc
	}
	return OrderDesc
}

// ParseLoanQuery reads a LoanQuery from URL parameters. It never fails:
// malformed numbers and unknown enum values are treated as absent.
func ParseLoanQuery(values url.Values) LoanQuery {
	q := LoanQuery{
		Amount:  parseNumber(values, "amount"),
		Term:    parseNumber(values, "term"),
		MaxRate: parseNumber(values, "maxRate"),
		SortBy:  SortByRating,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}

	if p := models.PayoutType(first(values, "payoutType")); p.IsValid() {
		q.PayoutType = p
	}

	seen := make(map[models.BorrowerRequirement]bool)
	for _, raw := range values["requirements"] {
		for _, part := range strings.Split(raw, ",") {
			r := models.BorrowerRequirement(strings.TrimSpace(part))
			if r.IsValid() && !seen[r] {
				seen[r] = true
				q.Requirements = append(q.Requirements, r)
			}
		}
	}

	sortBy := SortBy(first(values, "sortBy"))
	if sortBy.IsValid() {
		q.SortBy = sortBy
	}

	order := SortOrder(first(values, "order"))
	if order.IsValid() {
		q.Order = order
	} else {
		q.Order = DefaultOrder(sortBy)
	}

	if page := parseNumber(values, "page"); page != nil && *page >= 1 {
		q.Page = int(math.Floor(*page))
	}

	if perPage := parseNumber(values, "perPage"); perPage != nil && *perPage >= 1 {
		q.PerPage = int(math.Floor(*perPage))
		if q.PerPage > MaxPerPage {
			q.PerPage = MaxPerPage
		}
	}

	return q
}

// CanonicalParams returns the parameters list pages carry between pages.
// Page itself is left out so callers can set it.
func CanonicalParams(q LoanQuery) url.Values {
	params := url.Values{}
	setNumber(params, "amount", q.Amount)
	setNumber(params, "term", q.Term)
	setNumber(params, "maxRate", q.MaxRate)
	if q.PayoutType != "" {
		params.Set("payoutType", string(q.PayoutType))
	}
	for _, r := range q.Requirements {
		params.Add("requirements", string(r))
	}
	if q.SortBy != "" {
		params.Set("sortBy", string(q.SortBy))
	}
	if q.Order != "" {
		params.Set("order", string(q.Order))
	}
	if q.PerPage > 0 {
		params.Set("perPage", strconv.Itoa(q.PerPage))
	}
	return params
}

// BuildQueryHref copies params, applies merge (nil deletes the key) and
// returns base with the encoded query, or base alone when nothing is left.
func BuildQueryHref(base string, params url.Values, merge map[string]*string) string {
	qp := url.Values{}
	for k, v := range params {
		qp[k] = append([]string(nil), v...)
	}
	for k, v := range merge {
		if v == nil {
			qp.Del(k)
		} else {
			qp.Set(k, *v)
		}
	}
	if qs := qp.Encode(); qs != "" {
		return base + "?" + qs
	}
	return base
}

// StringPtr is a convenience for BuildQueryHref merges.
func StringPtr(s string) *string {
	return &s
}

func first(values url.Values, key string) string {
	if v := values[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func parseNumber(values url.Values, key string) *float64 {
	raw := first(values, key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func setNumber(params url.Values, key string, v *float64) {
	if v != nil {
		params.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
