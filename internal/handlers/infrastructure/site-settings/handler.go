// internal/handlers/infrastructure/site-settings/handler.go
package sitesettings

import (
	"net/http"

	"loan-catalog/internal/analytics"
	"loan-catalog/internal/common/httputil"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/seo"
)

const (
	HandlerName = "site-settings"
)

var navigation = []NavLink{
	{Href: "/", Label: "Главная"},
	{Href: "/loans", Label: "Займы"},
	{Href: "/compare", Label: "Сравнение займов"},
	{Href: "#kredits", Label: "Кредиты (скоро)", Disabled: true},
	{Href: "#cards", Label: "Кредитные карты (скоро)", Disabled: true},
	{Href: "#mortgage", Label: "Ипотека (скоро)", Disabled: true},
}

var contacts = Contacts{
	Email: "support@example.ru",
	Phone: "8 800 123-45-67",
	Hours: "Пн—Пт: 9:00–18:00 МСК",
	Legal: "ООО «Финтех», ИНН 1234567890",
}

type Handler struct {
	config *Config
	site   *seo.Site
	logger logger.Logger
}

func NewHandler(config *Config, site *seo.Site, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		site:   site,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.Execute())
}

// Execute returns the settings the frontend shell needs on every page.
func (h *Handler) Execute() *Output {
	settings := analytics.FromConfig(h.config.Analytics)
	for name, integration := range map[string]analytics.Integration{
		"ga4":            settings.GA4,
		"meta_pixel":     settings.MetaPixel,
		"yandex_metrica": settings.YandexMetrica,
	} {
		if integration.Status == analytics.StatusMisconfigured {
			h.logger.Warn("analytics integration enabled without id", map[string]interface{}{"integration": name})
		}
	}

	return &Output{
		Name:        h.site.Name(),
		Description: h.site.Description(),
		URL:         h.site.URL(),
		Locale:      h.site.Locale(),
		Version:     h.config.Version,
		Navigation:  append([]NavLink(nil), navigation...),
		Contacts:    contacts,
		Analytics:   settings,
	}
}
