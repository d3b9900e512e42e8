// internal/handlers/catalog/home-page/config.go
package homepage

import "loan-catalog/internal/common/config"

type Config struct {
	Seed          uint32
	OfferCount    int
	FeaturedCount int
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Seed:          cfg.Catalog.Seed,
		OfferCount:    cfg.Catalog.HomeCount,
		FeaturedCount: cfg.Catalog.FeaturedCount,
	}
}
