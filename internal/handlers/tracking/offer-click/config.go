// internal/handlers/tracking/offer-click/config.go
package offerclick

import (
	"time"

	"loan-catalog/internal/common/config"
)

type Config struct {
	MinOfferIDLength int
	CacheTTL         time.Duration
	RateLimit        int
	RateWindow       time.Duration
	Timeout          time.Duration
	Now              func() time.Time
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		MinOfferIDLength: cfg.Tracking.MinOfferIDLength,
		CacheTTL:         time.Duration(cfg.Tracking.CacheTTL) * time.Second,
		RateLimit:        cfg.Tracking.RateLimit,
		RateWindow:       time.Duration(cfg.Tracking.RateWindow) * time.Second,
		Timeout:          config.GetDuration(cfg.Tracking.Timeout),
		Now:              time.Now,
	}
}
