// internal/handlers/catalog/organization-detail/handler.go
package organizationdetail

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/compare"
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
	"loan-catalog/internal/reviews"
	"loan-catalog/internal/seo"
)

const (
	HandlerName = "organization-detail"

	// Offers from the current page described as nested and standalone
	// structured data.
	serviceOffers    = 3
	productDocuments = 2
)

type Handler struct {
	config    *Config
	site      *seo.Site
	obs       *observability.Observability
	logger    logger.Logger
	responder *view.Responder
}

func NewHandler(config *Config, site *seo.Site, obs *observability.Observability, log logger.Logger) *Handler {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Handler{
		config:    config,
		site:      site,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"handler": HandlerName}),
		responder: view.NewResponder(HandlerName, obs, log),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	out, err := h.Execute(r.Context(), &Input{Slug: chi.URLParam(r, "slug"), Query: r.URL.Query()})
	h.responder.Write(w, r, start, out, err)
}

// Execute builds a lender page. The lender's offers go through the same
// filters and pagination as the catalog.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	offers := loans.GenerateOffers(h.config.OfferCount, h.config.Seed)
	h.obs.RecordOffersGenerated(ctx, HandlerName, len(offers))

	org, ok := loans.FindOrganizationBySlug(offers, input.Slug)
	if !ok {
		return nil, apperrors.NewOrganizationNotFoundError(input.Slug)
	}

	basePath := loans.OrganizationPath(org.Name)
	summary := loans.SummarizeOffers(org.Offers)
	q := loans.ParseLoanQuery(input.Query)
	result := loans.FilterSortPaginate(org.Offers, q)

	rs := reviews.ForOrganization(org.Slug, loans.OrganizationReviewCount(summary), h.config.Now())
	h.obs.RecordReviewsGenerated(ctx, "organization", len(rs))

	jsonLD, err := view.ValidDocuments(h.documents(org, basePath, summary, result, rs)...)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("organization page built", map[string]interface{}{
		"organization": org.Slug,
		"offers":       summary.TotalOffers,
		"matched":      result.Total,
	})

	return &Output{
		Page: view.Page{
			Meta: h.site.BuildPageMetadata(seo.PageInput{
				Title:       org.Name + " — предложения и условия",
				Description: loans.BuildDescription(org.Name, summary),
				Path:        basePath,
			}),
			Breadcrumbs: []view.Breadcrumb{{Label: "Главная", Href: "/"}, {Label: "Организации"}, {Label: org.Name}},
			JSONLD:      jsonLD,
		},
		Name:              org.Name,
		Slug:              org.Slug,
		Description:       loans.BuildDescription(org.Name, summary),
		Intro:             intro(summary),
		Summary:           summary,
		Stats:             stats(summary),
		PayoutLabels:      compare.PayoutLabels(summary.PayoutTypes),
		RequirementLabels: compare.RequirementLabelsFor(summary.Requirements),
		Filters:           view.NewFilterBar(basePath, q),
		Listing:           view.NewListing(result, basePath, q),
		Reviews:           rs,
		ReviewSummary:     reviewSummary(summary, len(rs)),
	}, nil
}

func (h *Handler) documents(org loans.Organization, basePath string, summary loans.OrganizationSummary, result loans.PageResult, rs []models.Review) []any {
	docs := []any{
		h.site.Breadcrumbs([]seo.Crumb{{Name: "Главная", Path: "/"}, {Name: "Организации"}, {Name: org.Name, Path: basePath}}),
		h.site.ItemList(view.Links(result.Items)),
	}

	services := make([]seo.LoanInput, 0, serviceOffers)
	for _, o := range result.Items[:min(serviceOffers, len(result.Items))] {
		services = append(services, seo.LoanFromOffer(o, loans.OfferPath(o)))
	}
	docs = append(docs, h.site.FinancialService(org.Name, basePath, summary.AverageRating, len(rs), services))

	for _, o := range result.Items[:min(productDocuments, len(result.Items))] {
		product := seo.LoanFromOffer(o, loans.OfferPath(o))
		product.Brand = org.Name
		docs = append(docs, h.site.LoanOrCredit(product))
	}

	if len(rs) > 0 {
		docs = append(docs, h.site.Review(seo.ReviewInput{
			ItemName:      org.Name,
			Path:          basePath,
			Author:        rs[0].Author,
			Body:          rs[0].Comment,
			Rating:        rs[0].Rating,
			DatePublished: rs[0].Date,
		}))
	}
	return docs
}

func stats(summary loans.OrganizationSummary) []view.Stat {
	return []view.Stat{
		{Label: "Средний рейтинг", Value: fmt.Sprintf("%.1f / 5", summary.AverageRating)},
		{Label: "Предложений", Value: strconv.Itoa(summary.TotalOffers)},
		{Label: "Ставка от", Value: loans.FormatRateRU(summary.MinRate)},
		{Label: "Макс. сумма", Value: loans.FormatRub(summary.MaxAmount)},
	}
}

func intro(summary loans.OrganizationSummary) string {
	if summary.TotalOffers == 0 {
		return "Пока нет активных предложений."
	}
	return fmt.Sprintf("Средний рейтинг %.1f из 5. %d предложений со ставкой от %s и суммой до %s.",
		summary.AverageRating, summary.TotalOffers, loans.FormatRateRU(summary.MinRate), loans.FormatRub(summary.MaxAmount))
}

func reviewSummary(summary loans.OrganizationSummary, count int) string {
	return fmt.Sprintf("%d отзывов клиентов, средняя оценка предложений %.1f из 5", count, summary.AverageRating)
}
