// internal/handlers/catalog/organization-detail/config.go
package organizationdetail

import (
	"time"

	"loan-catalog/internal/common/config"
)

type Config struct {
	Seed       uint32
	OfferCount int
	Now        func() time.Time
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Seed:       cfg.Catalog.Seed,
		OfferCount: cfg.Catalog.ListingCount,
		Now:        time.Now,
	}
}
