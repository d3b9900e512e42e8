// internal/analytics/analytics.go
package analytics

import (
	"strings"

	"loan-catalog/internal/common/config"
)

type Status string

const (
	StatusDisabled      Status = "disabled"
	StatusMisconfigured Status = "misconfigured"
	StatusReady         Status = "ready"
)

type ConsentStatus string

const (
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
	ConsentUnknown ConsentStatus = "unknown"
)

// ParseConsent maps a stored consent value; anything unrecognised is
// unknown.
func ParseConsent(v string) ConsentStatus {
	switch ConsentStatus(v) {
	case ConsentGranted, ConsentDenied:
		return ConsentStatus(v)
	}
	return ConsentUnknown
}

type Integration struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Enabled bool   `json:"enabled"`
}

type Consent struct {
	StorageKey string `json:"storageKey"`
	EventName  string `json:"eventName"`
}

// Settings is the analytics block served to the frontend.
type Settings struct {
	Consent       Consent     `json:"consent"`
	GA4           Integration `json:"ga4"`
	MetaPixel     Integration `json:"metaPixel"`
	YandexMetrica Integration `json:"yandexMetrica"`
}

func FromConfig(cfg config.AnalyticsConfig) Settings {
	return Settings{
		Consent:       Consent{StorageKey: cfg.ConsentKey, EventName: cfg.ConsentEvent},
		GA4:           integration(cfg.GA4),
		MetaPixel:     integration(cfg.MetaPixel),
		YandexMetrica: integration(cfg.YandexMetrica),
	}
}

func integration(c config.AnalyticsIntegration) Integration {
	status := ComputeStatus(IsTruthy(c.Enabled), c.ID != "")
	return Integration{ID: c.ID, Status: status, Enabled: status == StatusReady}
}

// IsTruthy accepts 1, true, yes and on, ignoring case and surrounding
// whitespace.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func ComputeStatus(flag, configured bool) Status {
	if !flag {
		return StatusDisabled
	}
	if !configured {
		return StatusMisconfigured
	}
	return StatusReady
}
