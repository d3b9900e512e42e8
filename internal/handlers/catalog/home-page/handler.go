// internal/handlers/catalog/home-page/handler.go
package homepage

import (
	"context"
	"net/http"
	"time"

	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/seo"
)

const (
	HandlerName = "home-page"
)

const (
	pageTitle       = "Главная"
	pageDescription = "Онлайн займы: сравнение предложений, калькулятор платежей и лучшие офферы. Быстрый SSR и оптимизированная загрузка для хороших LCP/CLS."
	headline        = "Онлайн займы — сравнение и калькулятор"
	lead            = "Подберите займ по сумме, сроку и ставке. Рассчитайте ежемесячный платеж и изучите лучшие предложения."
)

type Handler struct {
	config    *Config
	site      *seo.Site
	obs       *observability.Observability
	logger    logger.Logger
	responder *view.Responder
}

func NewHandler(config *Config, site *seo.Site, obs *observability.Observability, log logger.Logger) *Handler {
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
	out, err := h.Execute(r.Context())
	h.responder.Write(w, r, start, out, err)
}

// Execute builds the home page: the best rated offers and a calculator
// preview for the top one.
func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	offers := loans.GenerateOffers(h.config.OfferCount, h.config.Seed)
	h.obs.RecordOffersGenerated(ctx, HandlerName, len(offers))

	featured := loans.TopRated(offers, h.config.FeaturedCount)

	jsonLD, err := view.ValidDocuments(
		h.site.Organization(),
		h.site.ItemList(view.Links(featured)),
	)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Page: view.Page{
			Meta:   h.site.BuildPageMetadata(seo.PageInput{Title: pageTitle, Description: pageDescription, Path: "/"}),
			JSONLD: jsonLD,
		},
		Headline:    headline,
		Lead:        lead,
		CatalogHref: "/loans",
		Featured:    view.Cards(featured),
	}
	if len(featured) > 0 {
		calc := loans.Calculate(featured[0], loans.CalculatorInput{})
		out.Calculator = &calc
	}

	h.logger.Debug("home page built", map[string]interface{}{
		"offers":   len(offers),
		"featured": len(featured),
	})
	return out, nil
}
