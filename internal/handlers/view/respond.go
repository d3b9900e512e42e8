// internal/handlers/view/respond.go
package view

import (
	"net/http"
	"time"

	"loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/httputil"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/metrics"
	"loan-catalog/internal/common/observability"
)

// Responder writes a handler's result and records its outcome.
type Responder struct {
	name   string
	obs    *observability.Observability
	logger logger.Logger
}

func NewResponder(name string, obs *observability.Observability, log logger.Logger) *Responder {
	return &Responder{name: name, obs: obs, logger: log}
}

// Write sends out as JSON, or the mapped error when err is set.
func (r *Responder) Write(w http.ResponseWriter, req *http.Request, start time.Time, out any, err error) {
	ctx := req.Context()
	if err != nil {
		code := string(errors.ErrCodeInternal)
		if stdErr, ok := errors.AsStandardError(err); ok {
			code = string(stdErr.Code)
		}
		metrics.HandlerErrors.WithLabelValues(r.name, code).Inc()
		r.obs.RecordPage(ctx, r.name, time.Since(start), "error")

		log := httputil.LoggerFromContext(ctx, r.logger).WithFields(map[string]interface{}{"handler": r.name})
		errors.NewErrorHandler(log).HandleHTTPError(w, req, err)
		return
	}

	r.obs.RecordPage(ctx, r.name, time.Since(start), "ok")
	httputil.RespondWithJSON(w, http.StatusOK, out)
}
