// internal/handlers/catalog/list-offers/handler.go
package listoffers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/reviews"
	"loan-catalog/internal/seo"
)

const (
	HandlerName = "list-offers"
	basePath    = "/loans"

	// productDocuments caps the LoanOrCredit documents per page.
	productDocuments = 3
)

const (
	pageTitle       = "Каталог займов — фильтры, сортировка и пагинация"
	pageDescription = "Выберите подходящий займ: фильтруйте по сумме, сроку, ставке, способу выплаты и требованиям. Сортировка по рейтингу, ставке и сумме."
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
	out, err := h.Execute(r.Context(), r.URL.Query())
	h.responder.Write(w, r, start, out, err)
}

// Execute filters, sorts and pages the catalog by the query parameters.
// Unknown or malformed parameters fall back to defaults.
func (h *Handler) Execute(ctx context.Context, values url.Values) (*Output, error) {
	q := loans.ParseLoanQuery(values)
	offers := loans.GenerateOffers(h.config.OfferCount, h.config.Seed)
	h.obs.RecordOffersGenerated(ctx, HandlerName, len(offers))

	result := loans.FilterSortPaginate(offers, q)

	docs := []any{
		h.site.Breadcrumbs([]seo.Crumb{{Name: "Главная", Path: "/"}, {Name: "Займы"}}),
		h.site.ItemList(view.Links(result.Items)),
	}
	for _, o := range result.Items[:min(productDocuments, len(result.Items))] {
		docs = append(docs, h.site.LoanOrCredit(seo.LoanFromOffer(o, loans.OfferPath(o))))
	}
	if len(result.Items) > 0 {
		top := result.Items[0]
		rs := reviews.ForOffer(top, h.config.Now())
		h.obs.RecordReviewsGenerated(ctx, "offer", len(rs))
		docs = append(docs, h.site.Review(seo.ReviewInput{
			ItemName:      top.Title,
			Path:          loans.OfferPath(top),
			Author:        rs[0].Author,
			Body:          rs[0].Comment,
			Rating:        rs[0].Rating,
			DatePublished: rs[0].Date,
		}))
	}

	jsonLD, err := view.ValidDocuments(docs...)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("catalog page built", map[string]interface{}{
		"total":   result.Total,
		"page":    result.Page,
		"sortBy":  string(q.SortBy),
		"order":   string(q.Order),
		"filters": len(values),
	})

	return &Output{
		Page: view.Page{
			Meta:        h.site.BuildPageMetadata(seo.PageInput{Title: pageTitle, Description: pageDescription, Path: basePath}),
			Breadcrumbs: []view.Breadcrumb{{Label: "Главная", Href: "/"}, {Label: "Займы"}},
			JSONLD:      jsonLD,
		},
		Heading:  "Каталог займов",
		Subtitle: "Подберите подходящее предложение по займам",
		Filters:  view.NewFilterBar(basePath, q),
		Listing:  view.NewListing(result, basePath, q),
	}, nil
}
