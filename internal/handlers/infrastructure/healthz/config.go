// internal/handlers/infrastructure/healthz/config.go
package healthz

import (
	"time"

	"loan-catalog/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	Version string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout: config.GetDuration(config.GetHandlerConfig(cfg, HandlerName).Timeout),
		Version: cfg.App.Version,
	}
}
