// internal/handlers/catalog/compare-offers/handler.go
package compareoffers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/compare"
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
	"loan-catalog/internal/seo"
)

const (
	HandlerName = "compare-offers"
)

const (
	pageTitle       = "Сравнение займов — найдите лучшее предложение"
	pageDescription = "Сравните до 4 предложений по займам: ставка, сумма, срок и рейтинг в одной таблице."
)

type Handler struct {
	config    *Config
	site      *seo.Site
	obs       *observability.Observability
	logger    logger.Logger
	responder *view.Responder
}

func NewHandler(config *Config, site *seo.Site, obs *observability.Observability, log logger.Logger) *Handler {
	if config.BasePath == "" {
		config.BasePath = "/compare"
	}
	return &Handler{
		config:    config,
		site:      site,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"handler": HandlerName}),
		responder: view.NewResponder(HandlerName, obs, log),
	}
}

// ServeHTTP renders the comparison view for the offers in the URL.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	out, err := h.Execute(r.Context(), r.URL.Query())
	h.responder.Write(w, r, start, out, err)
}

// Mutation returns the POST handler for action. It answers with a 303 to
// the canonical comparison URL so a reload never repeats the post.
func (h *Handler) Mutation(action Action) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.Write(w, r, time.Now(), nil, apperrors.NewInvalidRequestError("malformed form"))
			return
		}
		location := h.Apply(r.Context(), action, r.Form)
		http.Redirect(w, r, location, http.StatusSeeOther)
	})
}

// Apply mutates the selection carried in values and returns the
// canonical location of the result. Unknown ids leave it unchanged.
func (h *Handler) Apply(ctx context.Context, action Action, values url.Values) string {
	offers := h.catalog(ctx)
	selection := compare.SelectionFromQuery(values, allowedIDs(offers))

	id := values.Get(FormField)
	changed := false
	switch action {
	case ActionAdd:
		changed = selection.Add(id)
	case ActionRemove:
		changed = selection.Remove(id)
	case ActionReset:
		changed = selection.Len() > 0
		selection.Reset()
	}

	h.logger.Debug("comparison updated", map[string]interface{}{
		"action":  string(action),
		"offerId": id,
		"changed": changed,
		"count":   selection.Len(),
	})

	return h.location(selection.IDs())
}

func (h *Handler) Execute(ctx context.Context, values url.Values) (*Output, error) {
	offers := h.catalog(ctx)
	selection := compare.SelectionFromQuery(values, allowedIDs(offers))
	ids := selection.IDs()
	selected := compare.ResolveOffersByIDs(ids, offers)

	jsonLD, err := view.ValidDocuments(
		h.site.Breadcrumbs([]seo.Crumb{{Name: "Главная", Path: "/"}, {Name: "Сравнение", Path: h.config.BasePath}}),
		h.site.ItemList(view.Links(selected)),
	)
	if err != nil {
		return nil, err
	}

	available := compare.AvailableOptions(offers, ids)
	return &Output{
		Page: view.Page{
			Meta: h.site.BuildPageMetadata(seo.PageInput{
				Title:       pageTitle,
				Description: pageDescription,
				Path:        h.config.BasePath,
			}),
			Breadcrumbs: []view.Breadcrumb{{Label: "Главная", Href: "/"}, {Label: "Сравнение"}},
			JSONLD:      jsonLD,
		},
		Heading:     "Сравнение займов",
		IDs:         ids,
		Selected:    view.Cards(selected),
		Rows:        compare.BuildRows(compare.Metrics, selected),
		Count:       selection.Len(),
		MaxItems:    compare.MaxItems,
		IsFull:      selection.IsFull(),
		Available:   available,
		Recommended: compare.Recommended(available),
		ShareURL:    compare.ShareURL(h.site.URL(), h.config.BasePath, ids),
		Actions: Actions{
			Add:    h.config.BasePath + "/add",
			Remove: h.config.BasePath + "/remove",
			Reset:  h.config.BasePath + "/reset",
		},
	}, nil
}

func (h *Handler) catalog(ctx context.Context) []models.LoanOffer {
	offers := loans.GenerateOffers(h.config.OfferCount, h.config.Seed)
	h.obs.RecordOffersGenerated(ctx, HandlerName, len(offers))
	return offers
}

func (h *Handler) location(ids []string) string {
	if len(ids) == 0 {
		return h.config.BasePath
	}
	return h.config.BasePath + "?" + compare.ToQuery(ids).Encode()
}

func allowedIDs(offers []models.LoanOffer) map[string]struct{} {
	allowed := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		allowed[o.ID] = struct{}{}
	}
	return allowed
}
