// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig                `mapstructure:"app"`
	Server    ServerConfig             `mapstructure:"server"`
	Site      SiteConfig               `mapstructure:"site"`
	Catalog   CatalogConfig            `mapstructure:"catalog"`
	Database  DatabaseConfig           `mapstructure:"database"`
	Handlers  map[string]HandlerConfig `mapstructure:"handlers"`
	Tracking  TrackingConfig           `mapstructure:"tracking"`
	Analytics AnalyticsConfig          `mapstructure:"analytics"`
	Registry  RegistryConfig           `mapstructure:"registry"`
	Logging   LoggingConfig            `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // milliseconds
	CORSOrigins     []string `mapstructure:"cors_origins"`
}

// Address returns the listen address for the HTTP server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// HandlerConfig holds the settings shared by every HTTP handler.
type HandlerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Timeout int  `mapstructure:"timeout"` // milliseconds
}

// --- Site and Catalog ---

// SiteConfig drives page metadata, JSON-LD and absolute URLs.
type SiteConfig struct {
	Name         string             `mapstructure:"name"`
	Description  string             `mapstructure:"description"`
	URL          string             `mapstructure:"url"`
	Locale       string             `mapstructure:"locale"`
	Twitter      TwitterConfig      `mapstructure:"twitter"`
	Organization OrganizationConfig `mapstructure:"organization"`
}

type TwitterConfig struct {
	Card    string `mapstructure:"card"`
	Site    string `mapstructure:"site"`
	Creator string `mapstructure:"creator"`
}

type OrganizationConfig struct {
	Name      string   `mapstructure:"name"`
	LegalName string   `mapstructure:"legal_name"`
	URL       string   `mapstructure:"url"`
	Logo      string   `mapstructure:"logo"`
	SameAs    []string `mapstructure:"same_as"`
}

// CatalogConfig fixes the generated catalog. Every page must use the same
// seed so offer ids stay valid across requests.
type CatalogConfig struct {
	Seed          uint32 `mapstructure:"seed"`
	ListingCount  int    `mapstructure:"listing_count"`
	HomeCount     int    `mapstructure:"home_count"`
	FeaturedCount int    `mapstructure:"featured_count"`
	RelatedCount  int    `mapstructure:"related_count"`
}

// TrackingConfig holds settings for the partner redirect endpoint.
type TrackingConfig struct {
	MinOfferIDLength int `mapstructure:"min_offer_id_length"`
	CacheTTL         int `mapstructure:"cache_ttl"`   // seconds
	RateLimit        int `mapstructure:"rate_limit"`  // clicks per IP per window
	RateWindow       int `mapstructure:"rate_window"` // seconds
	Timeout          int `mapstructure:"timeout"`     // milliseconds
}

// AnalyticsConfig mirrors the public analytics switches. Flags are kept as
// strings so "yes"/"on" style values survive env expansion.
type AnalyticsConfig struct {
	GA4           AnalyticsIntegration `mapstructure:"ga4"`
	MetaPixel     AnalyticsIntegration `mapstructure:"meta_pixel"`
	YandexMetrica AnalyticsIntegration `mapstructure:"yandex_metrica"`
	ConsentKey    string               `mapstructure:"consent_storage_key"`
	ConsentEvent  string               `mapstructure:"consent_event"`
}

type AnalyticsIntegration struct {
	Enabled string `mapstructure:"enabled"`
	ID      string `mapstructure:"id"`
}

// RegistryConfig points at the route registry used for sitemaps.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
