package view

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

// ==========================
// Cards and Listings
// ==========================

func TestNewOfferCard(t *testing.T) {
	offer := models.LoanOffer{
		ID: "offer_7", Title: "Быстрый займ", Organization: "ЗаймГарант", Rating: 4,
		RateFrom: 12, RateTo: 20.5, AmountMin: 1000, AmountMax: 250000, TermMin: 3, TermMax: 12,
		PayoutTypes: []models.PayoutType{models.PayoutCard}, Requirements: []models.BorrowerRequirement{models.RequirementPassport},
	}

	card := NewOfferCard(offer)

	assert.Equal(t, "/loans/"+card.Slug, card.Href)
	assert.Equal(t, "/organizations/zaimgarant", card.OrganizationHref)
	assert.Equal(t, "4.0", card.RatingLabel)
	assert.Equal(t, "12%", card.RateLabel)
	assert.Equal(t, "3–12 мес.", card.TermLabel)
	assert.Contains(t, card.AmountLabel, "₽")
	assert.Equal(t, []string{"На карту"}, card.PayoutLabels)
	assert.Equal(t, []string{"Паспорт"}, card.RequirementLabels)
}

func TestNewListing_Links(t *testing.T) {
	offers := loans.GenerateOffers(120, loans.DefaultSeed)
	q := loans.ParseLoanQuery(url.Values{"sortBy": {"rate"}, "page": {"2"}, "perPage": {"10"}})

	listing := NewListing(loans.FilterSortPaginate(offers, q), "/loans", q)

	require.Len(t, listing.Items, 10)
	assert.Equal(t, 12, listing.TotalPages)
	assert.Equal(t, "/loans?order=asc&page=1&perPage=10&sortBy=rate", listing.PrevHref)
	assert.Equal(t, "/loans?order=asc&page=3&perPage=10&sortBy=rate", listing.NextHref)
}

func TestNewListing_SinglePageHasNoLinks(t *testing.T) {
	offers := loans.GenerateOffers(5, loans.DefaultSeed)
	q := loans.ParseLoanQuery(url.Values{})

	listing := NewListing(loans.FilterSortPaginate(offers, q), "/loans", q)

	assert.Empty(t, listing.PrevHref)
	assert.Empty(t, listing.NextHref)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "12%", FormatRate(12))
	assert.Equal(t, "12.5%", FormatRate(12.5))
}

func TestValidDocuments_RejectsUnknownType(t *testing.T) {
	_, err := ValidDocuments(map[string]string{"@type": "Movie"})
	assert.Error(t, err)
}

// ==========================
// Responder
// ==========================

func TestResponder_Write(t *testing.T) {
	r := NewResponder("test-page", nil, logger.NewTestLogger(t))
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	t.Run("ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.Write(rec, req, time.Now(), map[string]int{"total": 1}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total":1}`, rec.Body.String())
	})

	t.Run("standard error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.Write(rec, req, time.Now(), nil, apperrors.NewOrganizationNotFoundError("nope"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Organization not found"}`, rec.Body.String())
	})

	t.Run("plain error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.Write(rec, req, time.Now(), nil, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})
}

func TestNewFilterBar(t *testing.T) {
	q := loans.ParseLoanQuery(url.Values{
		"payoutType":   {"cash"},
		"requirements": {"passport", "age18Plus"},
		"sortBy":       {"amount"},
		"perPage":      {"20"},
	})

	bar := NewFilterBar("/loans", q)

	assert.Equal(t, "/loans", bar.Action)
	require.Len(t, bar.PayoutTypes, 4)
	assert.True(t, bar.PayoutTypes[2].Selected)
	assert.Equal(t, "Наличными", bar.PayoutTypes[2].Label)
	var selected []string
	for _, c := range bar.Requirements {
		if c.Selected {
			selected = append(selected, c.Value)
		}
	}
	assert.Equal(t, []string{"passport", "age18Plus"}, selected)
	assert.True(t, bar.SortOptions[2].Selected)
	assert.True(t, bar.OrderOptions[1].Selected, "amount sorts descending by default")
	assert.True(t, bar.PerPageOptions[1].Selected)
}
