// internal/handlers/catalog/offer-detail/config.go
package offerdetail

import (
	"time"

	"loan-catalog/internal/common/config"
)

type Config struct {
	Seed         uint32
	OfferCount   int
	RelatedCount int
	Now          func() time.Time
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Seed:         cfg.Catalog.Seed,
		OfferCount:   cfg.Catalog.ListingCount,
		RelatedCount: cfg.Catalog.RelatedCount,
		Now:          time.Now,
	}
}
