// internal/handlers/tracking/offer-click/handler.go
package offerclick

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"loan-catalog/internal/common/database"
	apperrors "loan-catalog/internal/common/errors"
	"loan-catalog/internal/common/httputil"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/metrics"
	"loan-catalog/internal/models"
)

const (
	HandlerName = "offer-click"

	cacheKeyPrefix     = "offer:url:"
	rateLimitKeyPrefix = "click:rl:"

	queryPartnerURL = `SELECT url FROM offers WHERE id = $1`
	insertClick     = `INSERT INTO click_tracking
		(id, offer_id, type, user_agent, referrer, ip_address, utm_source, utm_medium, utm_campaign, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
)

var (
	ErrOfferNotFound     = errors.New("OFFER_NOT_FOUND")
	ErrInvalidPartnerURL = errors.New("INVALID_PARTNER_URL")

	errDatabaseDisabled = errors.New("no database client configured")
)

// subidParams are the affiliate sub id spellings, in lookup order.
var subidParams = []string{"subid", "sub_id", "aff_sub"}

type Handler struct {
	config *Config
	db     *database.PostgresClient
	cache  *database.RedisClient
	logger logger.Logger
}

// NewHandler builds the click handler. cache may be nil, which disables
// the partner URL cache and rate limiting. A nil db makes every click
// fail with 503.
func NewHandler(config *Config, db *database.PostgresClient, cache *database.RedisClient, log logger.Logger) *Handler {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Handler{
		config: config,
		db:     db,
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	input := &Input{
		OfferID:    chi.URLParam(r, "offerId"),
		Query:      r.URL.Query(),
		RequestURL: requestURL(r),
		UserAgent:  r.UserAgent(),
		Referrer:   firstNonEmpty(r.Header.Get("Referer"), r.Header.Get("Referrer")),
		IPAddress:  clientIP(r),
	}

	out, err := h.Execute(r.Context(), input)
	if err != nil {
		metrics.OfferClicks.WithLabelValues(resultLabel(err)).Inc()
		log := httputil.LoggerFromContext(r.Context(), h.logger).WithFields(map[string]interface{}{"handler": HandlerName})
		apperrors.NewErrorHandler(log).HandleHTTPError(w, r, err)
		return
	}

	metrics.OfferClicks.WithLabelValues("redirected").Inc()
	http.Redirect(w, r, out.Location, http.StatusFound)
}

// Execute validates the offer id, records the click and resolves the
// partner redirect. Query parameters missing from the partner URL are
// forwarded to it.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if len(input.OfferID) < h.config.MinOfferIDLength {
		h.logger.Warn("offer_click_invalid_id", map[string]interface{}{
			"offer_id":    input.OfferID,
			"request_url": input.RequestURL,
		})
		return nil, apperrors.NewInvalidOfferIDError(input.OfferID)
	}

	if h.db == nil {
		h.logClickError(input.OfferID, errDatabaseDisabled)
		return nil, apperrors.NewDatabaseConnectionFailedError(errDatabaseDisabled)
	}

	if err := h.checkRateLimit(ctx, input.IPAddress); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	partnerURL, cacheHit, err := h.partnerURL(ctx, input.OfferID)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			h.logger.Warn("offer_click_not_found", map[string]interface{}{
				"offer_id":    input.OfferID,
				"request_url": input.RequestURL,
			})
			return nil, apperrors.NewOfferNotFoundError(input.OfferID)
		}
		h.logClickError(input.OfferID, err)
		return nil, h.queryError(ctx, "offer_url", err)
	}

	click := newClickEvent(input, h.config.Now())
	if err := h.recordClick(ctx, click); err != nil {
		h.logClickError(input.OfferID, err)
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewQueryTimeoutError("click_insert")
		}
		return nil, apperrors.NewClickRecordFailedError(err)
	}

	h.logger.Info("offer_click", map[string]interface{}{
		"offer_id":     input.OfferID,
		"click_id":     click.ID,
		"partner_url":  partnerURL,
		"utm_source":   input.Query.Get("utm_source"),
		"utm_medium":   input.Query.Get("utm_medium"),
		"utm_campaign": input.Query.Get("utm_campaign"),
		"subid":        subid(input.Query),
		"ip":           input.IPAddress,
		"referrer":     input.Referrer,
		"request_url":  input.RequestURL,
		"cache_hit":    cacheHit,
	})

	location, err := BuildRedirect(partnerURL, input.Query)
	if err != nil {
		h.logger.Error("offer_click_invalid_partner_url", map[string]interface{}{
			"offer_id":    input.OfferID,
			"partner_url": partnerURL,
		})
		return nil, apperrors.NewInvalidPartnerURLError(input.OfferID, err)
	}

	return &Output{
		ClickID:    click.ID,
		PartnerURL: partnerURL,
		Location:   location,
		CacheHit:   cacheHit,
	}, nil
}

func (h *Handler) checkRateLimit(ctx context.Context, ip string) error {
	if h.cache == nil || h.config.RateLimit <= 0 || ip == "" {
		return nil
	}

	key := rateLimitKeyPrefix + ip
	count, err := h.cache.IncrWindow(ctx, key, h.config.RateWindow)
	if err != nil {
		// Clicks keep working while redis is down.
		h.logger.Warn("rate limiter unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if count > int64(h.config.RateLimit) {
		return apperrors.NewRateLimitedError(key, h.config.RateLimit)
	}
	return nil
}

// partnerURL reads through the redis cache to the offers table.
func (h *Handler) partnerURL(ctx context.Context, offerID string) (string, bool, error) {
	key := cacheKeyPrefix + offerID

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, key)
		switch {
		case err == nil && cached != "":
			metrics.OfferURLCache.WithLabelValues("hit").Inc()
			return cached, true, nil
		case err == nil || database.IsNil(err):
			metrics.OfferURLCache.WithLabelValues("miss").Inc()
		default:
			metrics.OfferURLCache.WithLabelValues("error").Inc()
			h.logger.Warn("partner url cache read failed", map[string]interface{}{
				"offer_id": offerID,
				"error":    err.Error(),
			})
		}
	}

	var partnerURL sql.NullString
	if err := h.db.QueryRow(ctx, queryPartnerURL, offerID).Scan(&partnerURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, ErrOfferNotFound
		}
		return "", false, err
	}
	if !partnerURL.Valid || partnerURL.String == "" {
		return "", false, ErrOfferNotFound
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, partnerURL.String, h.config.CacheTTL); err != nil {
			h.logger.Warn("partner url cache write failed", map[string]interface{}{
				"offer_id": offerID,
				"error":    err.Error(),
			})
		}
	}

	return partnerURL.String, false, nil
}

func (h *Handler) recordClick(ctx context.Context, c models.ClickEvent) error {
	_, err := h.db.Exec(ctx, insertClick,
		c.ID,
		c.OfferID,
		string(c.Type),
		nullable(c.UserAgent),
		nullable(c.Referrer),
		nullable(c.IPAddress),
		nullable(c.UTMSource),
		nullable(c.UTMMedium),
		nullable(c.UTMCampaign),
		c.CreatedAt,
	)
	return err
}

func (h *Handler) queryError(ctx context.Context, queryType string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return apperrors.NewQueryTimeoutError(queryType)
	}
	return apperrors.NewQueryExecutionFailedError(queryType, err)
}

func (h *Handler) logClickError(offerID string, err error) {
	h.logger.Error("offer_click_error", map[string]interface{}{
		"offer_id": offerID,
		"message":  err.Error(),
	})
}

// newClickEvent keeps the request URL as the referrer when the browser
// sent none, and falls back to the sub id for the campaign.
func newClickEvent(input *Input, now time.Time) models.ClickEvent {
	return models.ClickEvent{
		ID:          uuid.NewString(),
		OfferID:     input.OfferID,
		Type:        models.ClickTypeClick,
		UserAgent:   input.UserAgent,
		Referrer:    firstNonEmpty(input.Referrer, input.RequestURL),
		IPAddress:   input.IPAddress,
		UTMSource:   input.Query.Get("utm_source"),
		UTMMedium:   input.Query.Get("utm_medium"),
		UTMCampaign: firstNonEmpty(input.Query.Get("utm_campaign"), subid(input.Query)),
		CreatedAt:   now.UTC(),
	}
}

// BuildRedirect appends every query parameter the partner URL does not
// already carry. Only the first value of a parameter is forwarded. The
// partner's own query string is kept byte for byte.
func BuildRedirect(partnerURL string, query url.Values) (string, error) {
	target, err := url.Parse(partnerURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPartnerURL, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return "", fmt.Errorf("%w: %q is not absolute", ErrInvalidPartnerURL, partnerURL)
	}

	existing := target.Query()
	missing := url.Values{}
	for key, values := range query {
		if _, ok := existing[key]; !ok && len(values) > 0 {
			missing.Set(key, values[0])
		}
	}
	if len(missing) == 0 {
		return target.String(), nil
	}

	switch {
	case target.RawQuery == "":
		target.RawQuery = missing.Encode()
	case strings.HasSuffix(target.RawQuery, "&"):
		target.RawQuery += missing.Encode()
	default:
		target.RawQuery += "&" + missing.Encode()
	}
	return target.String(), nil
}

func subid(query url.Values) string {
	for _, key := range subidParams {
		if v := query.Get(key); v != "" {
			return v
		}
	}
	return ""
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func resultLabel(err error) string {
	if stdErr, ok := apperrors.AsStandardError(err); ok {
		return strings.ToLower(string(stdErr.Code))
	}
	return "error"
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
