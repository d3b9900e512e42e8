// internal/server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"loan-catalog/internal/common/config"
	"loan-catalog/internal/common/logger"
	"loan-catalog/pkg/registry"
)

// Handlers maps registry route ids to their http.Handler.
type Handlers map[string]http.Handler

// NewRouter mounts every registry route whose handler is enabled. A
// route without a handler is a configuration error.
func NewRouter(cfg *config.Config, reg *registry.RouteRegistry, handlers Handlers, log logger.Logger) (chi.Router, error) {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(log), MetricsMiddleware, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	mounted := 0
	for _, route := range reg.Routes {
		if !config.IsHandlerEnabled(cfg, route.Handler) {
			log.Info("route disabled", map[string]interface{}{"route": route.ID, "handler": route.Handler})
			continue
		}

		h, ok := handlers[route.ID]
		if !ok {
			return nil, fmt.Errorf("no handler registered for route %q", route.ID)
		}

		if timeout := config.GetDuration(config.GetHandlerConfig(cfg, route.Handler).Timeout); timeout > 0 {
			h = middleware.Timeout(timeout)(h)
		}
		r.Method(route.Method, route.Path, h)
		mounted++
	}

	log.Info("routes mounted", map[string]interface{}{"count": mounted, "registryVersion": reg.Version})
	return r, nil
}

// Server is the site's HTTP server.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func NewServer(cfg config.ServerConfig, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address(),
			Handler:      handler,
			ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
			WriteTimeout: config.GetDuration(cfg.WriteTimeout),
		},
		logger: log.WithFields(map[string]interface{}{"component": "http_server"}),
	}
}

// Start blocks until the server stops. A graceful Stop is not an error.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server...", nil)
	return s.httpServer.Shutdown(ctx)
}
