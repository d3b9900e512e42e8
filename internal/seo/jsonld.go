// internal/seo/jsonld.go
package seo

import (
	"loan-catalog/internal/models"
)

const schemaContext = "https://schema.org"

type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type OrganizationLD struct {
	Context   string   `json:"@context"`
	Type      string   `json:"@type"`
	Name      string   `json:"name"`
	LegalName string   `json:"legalName"`
	URL       string   `json:"url"`
	Logo      string   `json:"logo"`
	SameAs    []string `json:"sameAs"`
}

// ListItem serves both breadcrumbs (Item) and item lists (URL).
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
	URL      string `json:"url,omitempty"`
}

type ItemListLD struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type MonetaryAmount struct {
	Type     string `json:"@type"`
	MinValue int    `json:"minValue"`
	MaxValue int    `json:"maxValue"`
	Currency string `json:"currency"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

// LoanOrCreditLD omits @context when nested inside another document.
type LoanOrCreditLD struct {
	Context         string           `json:"@context,omitempty"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	Brand           *Thing           `json:"brand,omitempty"`
	URL             string           `json:"url"`
	Description     string           `json:"description,omitempty"`
	InterestRate    float64          `json:"interestRate"`
	Amount          *MonetaryAmount  `json:"amount,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
}

type Rating struct {
	Type        string `json:"@type"`
	RatingValue int    `json:"ratingValue"`
	BestRating  int    `json:"bestRating"`
	WorstRating int    `json:"worstRating"`
}

type ReviewLD struct {
	Context       string `json:"@context"`
	Type          string `json:"@type"`
	ItemReviewed  Thing  `json:"itemReviewed"`
	Author        Thing  `json:"author"`
	ReviewBody    string `json:"reviewBody"`
	ReviewRating  Rating `json:"reviewRating"`
	DatePublished string `json:"datePublished,omitempty"`
}

type FinancialServiceLD struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	AggregateRating AggregateRating  `json:"aggregateRating"`
	AreaServed      string           `json:"areaServed"`
	MakesOffer      []LoanOrCreditLD `json:"makesOffer"`
}

// Crumb is a breadcrumb entry. The last crumb usually has no Path.
type Crumb struct {
	Name string
	Path string
}

// Link names a page by its site-relative path.
type Link struct {
	Name string
	Path string
}

// LoanInput describes a LoanOrCredit document. Path is site-relative.
type LoanInput struct {
	Name         string
	Brand        string
	Description  string
	Path         string
	InterestRate float64
	AmountMin    int
	AmountMax    int
	Rating       float64
	ReviewCount  int
}

// ReviewInput describes a Review document. Path is site-relative.
type ReviewInput struct {
	ItemName      string
	Path          string
	Author        string
	Body          string
	Rating        int
	DatePublished string
}

// Organization describes the company running the site.
func (s *Site) Organization() OrganizationLD {
	org := s.cfg.Organization
	sameAs := org.SameAs
	if sameAs == nil {
		sameAs = []string{}
	}
	return OrganizationLD{
		Context:   schemaContext,
		Type:      "Organization",
		Name:      org.Name,
		LegalName: org.LegalName,
		URL:       org.URL,
		Logo:      s.AbsoluteURL(org.Logo),
		SameAs:    sameAs,
	}
}

func (s *Site) Breadcrumbs(crumbs []Crumb) ItemListLD {
	items := make([]ListItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = ListItem{Type: "ListItem", Position: i + 1, Name: c.Name}
		if c.Path != "" {
			items[i].Item = s.AbsoluteURL(c.Path)
		}
	}
	return ItemListLD{Context: schemaContext, Type: "BreadcrumbList", ItemListElement: items}
}

func (s *Site) ItemList(links []Link) ItemListLD {
	items := make([]ListItem, len(links))
	for i, l := range links {
		items[i] = ListItem{Type: "ListItem", Position: i + 1, Name: l.Name, URL: s.AbsoluteURL(l.Path)}
	}
	return ItemListLD{Context: schemaContext, Type: "ItemList", ItemListElement: items}
}

func (s *Site) LoanOrCredit(in LoanInput) LoanOrCreditLD {
	doc := s.loan(in)
	doc.Context = schemaContext
	doc.Brand = &Thing{Type: "Brand", Name: in.Brand}
	doc.AggregateRating = &AggregateRating{Type: "AggregateRating", RatingValue: in.Rating, ReviewCount: in.ReviewCount}
	return doc
}

func (s *Site) loan(in LoanInput) LoanOrCreditLD {
	return LoanOrCreditLD{
		Type:         "LoanOrCredit",
		Name:         in.Name,
		URL:          s.AbsoluteURL(in.Path),
		Description:  in.Description,
		InterestRate: in.InterestRate,
		Amount: &MonetaryAmount{
			Type:     "MonetaryAmount",
			MinValue: in.AmountMin,
			MaxValue: in.AmountMax,
			Currency: "RUB",
		},
	}
}

func (s *Site) Review(in ReviewInput) ReviewLD {
	item := Thing{Type: "Thing", Name: in.ItemName}
	if in.Path != "" {
		item.URL = s.AbsoluteURL(in.Path)
	}
	return ReviewLD{
		Context:       schemaContext,
		Type:          "Review",
		ItemReviewed:  item,
		Author:        Thing{Type: "Person", Name: in.Author},
		ReviewBody:    in.Body,
		ReviewRating:  Rating{Type: "Rating", RatingValue: in.Rating, BestRating: 5, WorstRating: 1},
		DatePublished: in.DatePublished,
	}
}

// FinancialService describes a lender. Offers become nested LoanOrCredit
// entries without brand or rating.
func (s *Site) FinancialService(name, path string, rating float64, reviewCount int, offers []LoanInput) FinancialServiceLD {
	makes := make([]LoanOrCreditLD, len(offers))
	for i, o := range offers {
		makes[i] = s.loan(o)
	}
	return FinancialServiceLD{
		Context:         schemaContext,
		Type:            "FinancialService",
		Name:            name,
		URL:             s.AbsoluteURL(path),
		AggregateRating: AggregateRating{Type: "AggregateRating", RatingValue: rating, ReviewCount: reviewCount},
		AreaServed:      "RU",
		MakesOffer:      makes,
	}
}

// LoanFromOffer maps a catalog offer onto a LoanInput linked at path.
func LoanFromOffer(o models.LoanOffer, path string) LoanInput {
	return LoanInput{
		Name:         o.Title,
		Brand:        o.Organization,
		Path:         path,
		InterestRate: o.RateFrom,
		AmountMin:    o.AmountMin,
		AmountMax:    o.AmountMax,
		Rating:       o.Rating,
	}
}
