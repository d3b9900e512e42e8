// internal/app/handlers.go
package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loan-catalog/internal/common/config"
	"loan-catalog/internal/common/database"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/seo"
	"loan-catalog/internal/server"
	"loan-catalog/pkg/registry"

	// Catalog pages
	co "loan-catalog/internal/handlers/catalog/compare-offers"
	hp "loan-catalog/internal/handlers/catalog/home-page"
	lo "loan-catalog/internal/handlers/catalog/list-offers"
	od "loan-catalog/internal/handlers/catalog/offer-detail"
	ord "loan-catalog/internal/handlers/catalog/organization-detail"

	// API
	cp "loan-catalog/internal/handlers/calculator/calculate-payment"
	oc "loan-catalog/internal/handlers/tracking/offer-click"

	// Infrastructure
	hz "loan-catalog/internal/handlers/infrastructure/healthz"
	si "loan-catalog/internal/handlers/infrastructure/site-index"
	ss "loan-catalog/internal/handlers/infrastructure/site-settings"
)

// Dependencies are the shared clients every handler is built from.
type Dependencies struct {
	Config   *config.Config
	Site     *seo.Site
	Obs      *observability.Observability
	Registry *registry.RouteRegistry
	Postgres *database.PostgresClient
	Redis    *database.RedisClient
	Logger   logger.Logger
}

// BuildHandlers creates one handler per registry route id.
func BuildHandlers(d Dependencies) server.Handlers {
	compare := co.NewHandler(co.LoadConfig(d.Config), d.Site, d.Obs, d.Logger)
	index := si.NewHandler(si.LoadConfig(), d.Site, d.Registry, d.Logger)

	return server.Handlers{
		"home-page":           hp.NewHandler(hp.LoadConfig(d.Config), d.Site, d.Obs, d.Logger),
		"list-offers":         lo.NewHandler(lo.LoadConfig(d.Config), d.Site, d.Obs, d.Logger),
		"offer-detail":        od.NewHandler(od.LoadConfig(d.Config), d.Site, d.Obs, d.Logger),
		"organization-detail": ord.NewHandler(ord.LoadConfig(d.Config), d.Site, d.Obs, d.Logger),
		"compare-offers":      compare,
		"compare-add":         compare.Mutation(co.ActionAdd),
		"compare-remove":      compare.Mutation(co.ActionRemove),
		"compare-reset":       compare.Mutation(co.ActionReset),
		"calculate-payment":   cp.NewHandler(cp.LoadConfig(d.Config), d.Obs, d.Logger),
		"offer-click":         oc.NewHandler(oc.LoadConfig(d.Config), d.Postgres, d.Redis, d.Logger),
		"healthz":             hz.NewHandler(hz.LoadConfig(d.Config), d.Postgres, d.Redis, d.Logger),
		"site-settings":       ss.NewHandler(ss.LoadConfig(d.Config), d.Site, d.Logger),
		"sitemap":             index.Sitemap(),
		"robots":              index.Robots(),
		"metrics":             promhttp.Handler(),
	}
}

// NewRouter wires every handler into the registry-driven router.
func NewRouter(d Dependencies) (chi.Router, error) {
	return server.NewRouter(d.Config, d.Registry, BuildHandlers(d), d.Logger)
}
