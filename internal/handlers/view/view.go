// internal/handlers/view/view.go
package view

import (
	"fmt"
	"strconv"

	"loan-catalog/internal/compare"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
	"loan-catalog/internal/seo"
)

// Page carries what every page response shares.
type Page struct {
	Meta        seo.PageMetadata `json:"meta"`
	Breadcrumbs []Breadcrumb     `json:"breadcrumbs,omitempty"`
	JSONLD      []any            `json:"jsonLd"`
}

// Breadcrumb is a visible crumb. The current page has no Href.
type Breadcrumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// OfferCard is an offer with its display strings and catalog link.
type OfferCard struct {
	models.LoanOffer
	Slug              string   `json:"slug"`
	Href              string   `json:"href"`
	OrganizationHref  string   `json:"organizationHref"`
	RatingLabel       string   `json:"ratingLabel"`
	RateLabel         string   `json:"rateLabel"`
	AmountLabel       string   `json:"amountLabel"`
	TermLabel         string   `json:"termLabel"`
	PayoutLabels      []string `json:"payoutLabels"`
	RequirementLabels []string `json:"requirementLabels"`
}

// Listing is a page of offers with pagination links. Prev and Next are
// empty at the ends.
type Listing struct {
	Items      []OfferCard `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"perPage"`
	TotalPages int         `json:"totalPages"`
	PrevHref   string      `json:"prevHref,omitempty"`
	NextHref   string      `json:"nextHref,omitempty"`
}

// Stat is a labelled headline figure.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func NewOfferCard(o models.LoanOffer) OfferCard {
	return OfferCard{
		LoanOffer:         o,
		Slug:              loans.MakeOfferSlug(o),
		Href:              loans.OfferPath(o),
		OrganizationHref:  loans.OrganizationPath(o.Organization),
		RatingLabel:       strconv.FormatFloat(o.Rating, 'f', 1, 64),
		RateLabel:         FormatRate(o.RateFrom),
		AmountLabel:       fmt.Sprintf("%s–%s ₽", loans.FormatNumber(o.AmountMin), loans.FormatNumber(o.AmountMax)),
		TermLabel:         fmt.Sprintf("%d–%d мес.", o.TermMin, o.TermMax),
		PayoutLabels:      compare.PayoutLabels(o.PayoutTypes),
		RequirementLabels: compare.RequirementLabelsFor(o.Requirements),
	}
}

func Cards(offers []models.LoanOffer) []OfferCard {
	out := make([]OfferCard, len(offers))
	for i, o := range offers {
		out[i] = NewOfferCard(o)
	}
	return out
}

// NewListing pages result under basePath, keeping the canonical filter
// params in the prev/next links.
func NewListing(result loans.PageResult, basePath string, q loans.LoanQuery) Listing {
	params := loans.CanonicalParams(q)
	l := Listing{
		Items:      Cards(result.Items),
		Total:      result.Total,
		Page:       result.Page,
		PerPage:    result.PerPage,
		TotalPages: result.TotalPages,
	}
	if result.Page > 1 {
		l.PrevHref = loans.BuildQueryHref(basePath, params, map[string]*string{"page": loans.StringPtr(strconv.Itoa(result.Page - 1))})
	}
	if result.Page < result.TotalPages {
		l.NextHref = loans.BuildQueryHref(basePath, params, map[string]*string{"page": loans.StringPtr(strconv.Itoa(result.Page + 1))})
	}
	return l
}

// FormatRate drops a trailing ".0", so 12 renders as "12%" and 12.5 as
// "12.5%".
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// ValidDocuments checks every JSON-LD document and returns them as a
// slice ready for a Page.
func ValidDocuments(docs ...any) ([]any, error) {
	for _, d := range docs {
		if err := seo.ValidateJSONLD(d); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// Links turns offers into ItemList entries pointing at their detail pages.
func Links(offers []models.LoanOffer) []seo.Link {
	out := make([]seo.Link, len(offers))
	for i, o := range offers {
		out[i] = seo.Link{Name: o.Title, Path: loans.OfferPath(o)}
	}
	return out
}
