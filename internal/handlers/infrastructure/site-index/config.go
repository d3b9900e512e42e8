// internal/handlers/infrastructure/site-index/config.go
package siteindex

import "time"

type Config struct {
	Now func() time.Time
}

func LoadConfig() *Config {
	return &Config{Now: time.Now}
}
