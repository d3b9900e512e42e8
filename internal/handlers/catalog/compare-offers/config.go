// internal/handlers/catalog/compare-offers/config.go
package compareoffers

import "loan-catalog/internal/common/config"

type Config struct {
	Seed       uint32
	OfferCount int
	BasePath   string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Seed:       cfg.Catalog.Seed,
		OfferCount: cfg.Catalog.ListingCount,
		BasePath:   "/compare",
	}
}
