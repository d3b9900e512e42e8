// internal/handlers/infrastructure/site-index/handler.go
package siteindex

import (
	"net/http"
	"time"

	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/httputil"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/seo"
	"loan-catalog/pkg/registry"
)

const (
	HandlerName = "site-index"

	xmlContentType  = "application/xml; charset=utf-8"
	textContentType = "text/plain; charset=utf-8"
)

// Handler serves the crawler indexes built from the route registry.
type Handler struct {
	config   *Config
	site     *seo.Site
	registry *registry.RouteRegistry
	logger   logger.Logger
}

func NewHandler(config *Config, site *seo.Site, reg *registry.RouteRegistry, log logger.Logger) *Handler {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Handler{
		config:   config,
		site:     site,
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Sitemap serves /sitemap.xml.
func (h *Handler) Sitemap() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := h.RenderSitemap()
		if err != nil {
			log := httputil.LoggerFromContext(r.Context(), h.logger)
			apperrors.NewErrorHandler(log).HandleHTTPError(w, r, apperrors.NewInternalError(err))
			return
		}
		httputil.RespondWithText(w, http.StatusOK, xmlContentType, string(body))
	})
}

// Robots serves /robots.txt.
func (h *Handler) Robots() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondWithText(w, http.StatusOK, textContentType, h.RenderRobots())
	})
}

func (h *Handler) RenderSitemap() ([]byte, error) {
	routes := h.registry.SitemapRoutes()
	h.logger.Debug("rendering sitemap", map[string]interface{}{"urls": len(routes)})
	return seo.RenderSitemap(h.site.Sitemap(routes, h.config.Now()))
}

func (h *Handler) RenderRobots() string {
	return h.site.Robots(h.registry.DisallowedPaths())
}
