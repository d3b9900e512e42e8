// internal/handlers/infrastructure/healthz/handler.go
package healthz

import (
	"context"
	"errors"
	"net/http"
	"time"

	"loan-catalog/internal/common/database"
	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/httputil"
	"loan-catalog/internal/common/logger"
)

const (
	HandlerName = "healthz"
)

var errDatabaseDisabled = errors.New("no database client configured")

type Handler struct {
	config *Config
	db     *database.PostgresClient
	cache  *database.RedisClient
	logger logger.Logger
}

// NewHandler builds the health check. db and cache may be nil.
func NewHandler(config *Config, db *database.PostgresClient, cache *database.RedisClient, log logger.Logger) *Handler {
	if config.Timeout <= 0 {
		config.Timeout = 2 * time.Second
	}
	return &Handler{
		config: config,
		db:     db,
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out := h.Execute(r.Context())
	status := http.StatusOK
	if out.Status != StatusOK {
		status = http.StatusInternalServerError
	}
	httputil.RespondWithJSON(w, status, out)
}

// Execute reports the service healthy when Postgres answers. Redis is
// reported but never fails the check. A nil database client counts as
// down.
func (h *Handler) Execute(ctx context.Context) *Output {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	out := &Output{Status: StatusOK, Database: Reachable, Cache: Disabled, Version: h.config.Version}

	switch {
	case h.db == nil:
		out.Status = StatusError
		out.Database = Disabled
		h.logFailure("postgres", apperrors.NewDatabaseConnectionFailedError(errDatabaseDisabled))
	default:
		if err := h.db.HealthCheck(ctx); err != nil {
			out.Status = StatusError
			out.Database = Unreachable
			h.logFailure("postgres", apperrors.NewDatabaseConnectionFailedError(err))
		}
	}

	if h.cache != nil {
		out.Cache = Reachable
		if err := h.cache.Ping(ctx); err != nil {
			out.Cache = Unreachable
			stdErr := apperrors.NewCacheUnavailableError(err)
			h.logger.Warn("cache unreachable", map[string]interface{}{
				"component": "redis",
				"code":      string(stdErr.Code),
				"message":   stdErr.Details,
			})
		}
	}

	return out
}

func (h *Handler) logFailure(component string, stdErr *apperrors.StandardError) {
	h.logger.Error("healthcheck_failed", map[string]interface{}{
		"component": component,
		"code":      string(stdErr.Code),
		"message":   stdErr.Details,
	})
}
