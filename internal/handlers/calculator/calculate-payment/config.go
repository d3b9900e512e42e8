// internal/handlers/calculator/calculate-payment/config.go
package calculatepayment

import "loan-catalog/internal/common/config"

type Config struct {
	Seed       uint32
	OfferCount int
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Seed:       cfg.Catalog.Seed,
		OfferCount: cfg.Catalog.ListingCount,
	}
}
