// internal/handlers/calculator/calculate-payment/handler.go
package calculatepayment

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
)

const (
	HandlerName = "calculate-payment"
)

type Handler struct {
	config    *Config
	obs       *observability.Observability
	logger    logger.Logger
	responder *view.Responder
}

func NewHandler(config *Config, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"handler": HandlerName}),
		responder: view.NewResponder(HandlerName, obs, log),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()
	out, err := h.Execute(r.Context(), &Input{
		OfferID:    strings.TrimSpace(query.Get("offerId")),
		Calculator: loans.ParseCalculatorInput(query),
	})
	h.responder.Write(w, r, start, out, err)
}

// Execute computes the annuity schedule for one catalog offer. Inputs
// outside the offer's ranges are clamped.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.OfferID == "" {
		return nil, apperrors.NewInvalidOfferIDError(input.OfferID)
	}

	offers := loans.GenerateOffers(h.config.OfferCount, h.config.Seed)
	h.obs.RecordOffersGenerated(ctx, HandlerName, len(offers))

	for _, offer := range offers {
		if offer.ID != input.OfferID {
			continue
		}
		calc := loans.Calculate(offer, input.Calculator)
		h.logger.Debug("payment calculated", map[string]interface{}{
			"offerId": offer.ID,
			"amount":  calc.Amount,
			"term":    calc.Term,
		})
		return &Output{
			Calculation:      calc,
			Title:            offer.Title,
			Organization:     offer.Organization,
			AmountRange:      [2]int{offer.AmountMin, offer.AmountMax},
			TermRange:        [2]int{offer.TermMin, offer.TermMax},
			RateRange:        [2]float64{offer.RateFrom, offer.RateTo},
			MonthlyLabel:     rub(calc.MonthlyPayment),
			TotalLabel:       rub(calc.TotalPayment),
			OverpaymentLabel: rub(calc.Overpayment),
		}, nil
	}

	return nil, apperrors.NewOfferNotFoundError(input.OfferID)
}

func rub(v float64) string {
	return loans.FormatRub(int(math.Round(v)))
}
