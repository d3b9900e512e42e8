package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/common/config"
	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/reviews"
	"loan-catalog/pkg/registry"
)

// ==========================
// Test Helpers
// ==========================

func createTestSite(url string) *Site {
	return NewSite(config.SiteConfig{
		Name:        "Займы RU",
		Description: "Каталог займов",
		URL:         url,
		Locale:      "ru_RU",
		Twitter:     config.TwitterConfig{Card: "summary_large_image", Site: "@example", Creator: "@example"},
		Organization: config.OrganizationConfig{
			Name:      "Demo Fintech LLC",
			LegalName: "Demo Fintech LLC",
			Logo:      "/logo.png",
			SameAs:    []string{"https://twitter.com/example"},
		},
	})
}

func toMap(t *testing.T, doc any) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// ==========================
// URLs and Metadata
// ==========================

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://localhost:3000", "/loans", "http://localhost:3000/loans"},
		{"http://localhost:3000/", "/loans", "http://localhost:3000/loans"},
		{"https://example.ru", "loans", "https://example.ru/loans"},
		{"https://example.ru", "", "https://example.ru/"},
		{"https://example.ru/", "/", "https://example.ru/"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"|"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, createTestSite(tt.base).AbsoluteURL(tt.path))
		})
	}
}

func TestBuildPageMetadata(t *testing.T) {
	site := createTestSite("https://example.ru")

	meta := site.BuildPageMetadata(PageInput{
		Title:  "Каталог займов",
		Path:   "/loans",
		Images: []string{"/og.png"},
	})

	assert.Equal(t, "Каталог займов", meta.Title)
	assert.Equal(t, "Каталог займов — Займы RU", meta.FullTitle)
	assert.Equal(t, "Каталог займов", meta.Description, "falls back to site description")
	assert.Equal(t, "https://example.ru/loans", meta.Canonical)
	assert.Equal(t, "website", meta.OpenGraph.Type)
	assert.Equal(t, "Займы RU", meta.OpenGraph.SiteName)
	assert.Equal(t, "ru_RU", meta.OpenGraph.Locale)
	assert.Equal(t, []OGImage{{URL: "/og.png"}}, meta.OpenGraph.Images)
	assert.Equal(t, "summary_large_image", meta.Twitter.Card)
	assert.Equal(t, []string{"/og.png"}, meta.Twitter.Images)
}

func TestBuildPageMetadata_ExplicitDescriptionNoImages(t *testing.T) {
	meta := createTestSite("https://example.ru").BuildPageMetadata(PageInput{
		Title: "Главная", Description: "Онлайн займы", Path: "/",
	})

	assert.Equal(t, "Онлайн займы", meta.OpenGraph.Description)
	assert.Equal(t, "Онлайн займы", meta.Twitter.Description)
	assert.Nil(t, meta.OpenGraph.Images)

	raw := toMap(t, meta)
	assert.NotContains(t, raw["openGraph"], "images")
}

func TestFullTitle_EmptyUsesSiteName(t *testing.T) {
	assert.Equal(t, "Займы RU", createTestSite("https://example.ru").FullTitle(""))
}

// ==========================
// JSON-LD Builders
// ==========================

func TestOrganization(t *testing.T) {
	site := createTestSite("https://example.ru/")
	doc := site.Organization()

	assert.Equal(t, "https://schema.org", doc.Context)
	assert.Equal(t, "https://example.ru/", doc.URL, "organization url defaults to site url")
	assert.Equal(t, "https://example.ru/logo.png", doc.Logo)
	require.NoError(t, ValidateJSONLD(doc))
}

func TestBreadcrumbs(t *testing.T) {
	site := createTestSite("https://example.ru")
	doc := site.Breadcrumbs([]Crumb{{Name: "Главная", Path: "/"}, {Name: "Займы", Path: "/loans"}, {Name: "Оффер"}})

	raw := toMap(t, doc)
	items := raw["itemListElement"].([]interface{})
	require.Len(t, items, 3)
	last := items[2].(map[string]interface{})
	assert.Equal(t, float64(3), last["position"])
	assert.NotContains(t, last, "item")
	assert.Equal(t, "https://example.ru/loans", items[1].(map[string]interface{})["item"])
	require.NoError(t, ValidateJSONLD(doc))
}

func TestItemList(t *testing.T) {
	site := createTestSite("https://example.ru")
	doc := site.ItemList([]Link{{Name: "A", Path: "/loans/a"}, {Name: "B", Path: "/loans/b"}})

	assert.Equal(t, "ItemList", doc.Type)
	assert.Equal(t, 2, doc.ItemListElement[1].Position)
	assert.Equal(t, "https://example.ru/loans/b", doc.ItemListElement[1].URL)
	require.NoError(t, ValidateJSONLD(doc))
}

func TestLoanOrCredit(t *testing.T) {
	site := createTestSite("https://example.ru")
	offer := loans.GenerateOffers(1, loans.DefaultSeed)[0]

	doc := site.LoanOrCredit(LoanFromOffer(offer, loans.OfferPath(offer)))

	raw := toMap(t, doc)
	assert.Equal(t, "LoanOrCredit", raw["@type"])
	assert.Equal(t, map[string]interface{}{"@type": "Brand", "name": offer.Organization}, raw["brand"])
	amount := raw["amount"].(map[string]interface{})
	assert.Equal(t, "RUB", amount["currency"])
	assert.Equal(t, float64(offer.AmountMax), amount["maxValue"])
	assert.True(t, strings.HasPrefix(doc.URL, "https://example.ru/loans/"))
	assert.Equal(t, offer.Rating, doc.AggregateRating.RatingValue)
	require.NoError(t, ValidateJSONLD(doc))
}

func TestReview(t *testing.T) {
	site := createTestSite("https://example.ru")
	now := time.Date(2024, 10, 21, 9, 30, 0, 0, time.UTC)
	r := reviews.Generate("offer_1", 1, now)[0]

	doc := site.Review(ReviewInput{
		ItemName: "Займ", Path: "/loans/x", Author: r.Author, Body: r.Comment, Rating: r.Rating, DatePublished: r.Date,
	})

	assert.Equal(t, "Person", doc.Author.Type)
	assert.Equal(t, "https://example.ru/loans/x", doc.ItemReviewed.URL)
	assert.Equal(t, 5, doc.ReviewRating.BestRating)
	assert.Equal(t, 1, doc.ReviewRating.WorstRating)
	require.NoError(t, ValidateJSONLD(doc))
}

func TestFinancialService(t *testing.T) {
	site := createTestSite("https://example.ru")
	offers := loans.GenerateOffers(3, loans.DefaultSeed)
	inputs := make([]LoanInput, len(offers))
	for i, o := range offers {
		inputs[i] = LoanFromOffer(o, loans.OfferPath(o))
	}

	doc := site.FinancialService("ЗаймГарант", "/organizations/zaimgarant", 4.2, 3, inputs)

	raw := toMap(t, doc)
	assert.Equal(t, "RU", raw["areaServed"])
	makes := raw["makesOffer"].([]interface{})
	require.Len(t, makes, 3)
	nested := makes[0].(map[string]interface{})
	assert.NotContains(t, nested, "@context")
	assert.NotContains(t, nested, "brand")
	require.NoError(t, ValidateJSONLD(doc))
}

// ==========================
// JSON-LD Validation
// ==========================

func TestValidateJSONLD_Failures(t *testing.T) {
	site := createTestSite("https://example.ru")

	tests := []struct {
		name string
		doc  any
	}{
		{"unknown type", map[string]string{"@context": "https://schema.org", "@type": "Movie"}},
		{"rating out of range", site.Review(ReviewInput{ItemName: "x", Author: "a", Body: "b", Rating: 7})},
		{"empty review body", site.Review(ReviewInput{ItemName: "x", Author: "a", Rating: 4})},
		{"relative logo", OrganizationLD{Context: schemaContext, Type: "Organization", Name: "x", URL: "https://e.ru", Logo: "/logo.png"}},
		{"wrong context", ItemListLD{Context: "http://example.org", Type: "ItemList", ItemListElement: []ListItem{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONLD(tt.doc)
			require.Error(t, err)
			stdErr, ok := apperrors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeSchemaValidationFailed, stdErr.Code)
		})
	}
}

// ==========================
// Sitemap and Robots
// ==========================

func TestSitemap(t *testing.T) {
	site := createTestSite("https://example.ru/")
	reg, err := registry.LoadDefault()
	require.NoError(t, err)
	now := time.Date(2024, 10, 21, 9, 30, 0, 0, time.FixedZone("MSK", 3*3600))

	set := site.Sitemap(reg.Routes, now)

	require.Len(t, set.URLs, 2)
	assert.Equal(t, SitemapURL{Loc: "https://example.ru/", LastModified: "2024-10-21T06:30:00Z", ChangeFrequency: "daily", Priority: "1.0"}, set.URLs[0])
	assert.Equal(t, SitemapURL{Loc: "https://example.ru/loans", LastModified: "2024-10-21T06:30:00Z", ChangeFrequency: "weekly", Priority: "0.8"}, set.URLs[1])

	body, err := RenderSitemap(set)
	require.NoError(t, err)
	xmlText := string(body)
	assert.True(t, strings.HasPrefix(xmlText, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xmlText, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xmlText, "<loc>https://example.ru/loans</loc>")
}

func TestRobots(t *testing.T) {
	site := createTestSite("https://example.ru")

	got := site.Robots([]string{"/go/"})

	want := "User-Agent: *\nAllow: /\nDisallow: /go/\n\nSitemap: https://example.ru/sitemap.xml\n"
	assert.Equal(t, want, got)
}
