// internal/handlers/catalog/offer-detail/handler.go
package offerdetail

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
	"loan-catalog/internal/reviews"
	"loan-catalog/internal/seo"
)

const (
	HandlerName = "offer-detail"
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
	out, err := h.Execute(r.Context(), &Input{
		Slug:       chi.URLParam(r, "slug"),
		Calculator: loans.ParseCalculatorInput(r.URL.Query()),
	})
	h.responder.Write(w, r, start, out, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	offers := loans.GenerateOffers(h.config.OfferCount, h.config.Seed)
	h.obs.RecordOffersGenerated(ctx, HandlerName, len(offers))

	offer, ok := loans.FindOfferBySlug(offers, input.Slug)
	if !ok {
		return nil, apperrors.NewOfferNotFoundError(input.Slug)
	}

	path := loans.OfferPath(offer)
	rs := reviews.ForOffer(offer, h.config.Now())
	h.obs.RecordReviewsGenerated(ctx, "offer", len(rs))

	product := seo.LoanFromOffer(offer, path)
	product.ReviewCount = len(rs)
	jsonLD, err := view.ValidDocuments(
		h.site.Breadcrumbs([]seo.Crumb{{Name: "Главная", Path: "/"}, {Name: "Займы", Path: "/loans"}, {Name: offer.Title}}),
		h.site.LoanOrCredit(product),
		h.site.Review(seo.ReviewInput{
			ItemName:      offer.Title,
			Path:          path,
			Author:        rs[0].Author,
			Body:          rs[0].Comment,
			Rating:        rs[0].Rating,
			DatePublished: rs[0].Date,
		}),
	)
	if err != nil {
		return nil, err
	}

	related := loans.RelatedOffers(offer, offers, h.config.RelatedCount)
	description := fmt.Sprintf("%s: сумма %s–%s ₽, ставка от %s",
		offer.Organization, loans.FormatNumber(offer.AmountMin), loans.FormatNumber(offer.AmountMax), view.FormatRate(offer.RateFrom))

	h.logger.Debug("offer page built", map[string]interface{}{
		"offerId": offer.ID,
		"related": len(related),
	})

	card := view.NewOfferCard(offer)
	return &Output{
		Page: view.Page{
			Meta: h.site.BuildPageMetadata(seo.PageInput{Title: offer.Title, Description: description, Path: path}),
			Breadcrumbs: []view.Breadcrumb{
				{Label: "Главная", Href: "/"},
				{Label: "Займы", Href: "/loans"},
				{Label: offer.Title},
			},
			JSONLD: jsonLD,
		},
		Offer:         card,
		Conditions:    conditions(offer, card),
		About:         offer.Organization + " — финансовая организация, предлагающая онлайн-займы с быстрым решением. Условия подбираются индивидуально на основе анкеты и внутренней скоринговой модели.",
		Calculator:    loans.Calculate(offer, input.Calculator),
		Reviews:       rs,
		AverageRating: reviews.AverageRating(rs),
		Related:       view.Cards(related),
		CompareAction: "/compare/add",
	}, nil
}

func conditions(o models.LoanOffer, card view.OfferCard) []string {
	return []string{
		"Сумма: " + card.AmountLabel,
		fmt.Sprintf("Срок: %d–%d месяцев", o.TermMin, o.TermMax),
		fmt.Sprintf("Ставка: от %s до %s годовых", view.FormatRate(o.RateFrom), view.FormatRate(o.RateTo)),
		"Способы выплаты: " + strings.Join(card.PayoutLabels, ", "),
	}
}
