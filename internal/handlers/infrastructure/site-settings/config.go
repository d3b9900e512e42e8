// internal/handlers/infrastructure/site-settings/config.go
package sitesettings

import "loan-catalog/internal/common/config"

type Config struct {
	Analytics config.AnalyticsConfig
	Version   string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Analytics: cfg.Analytics,
		Version:   cfg.App.Version,
	}
}
