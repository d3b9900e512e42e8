// internal/models/tracking.go
package models

import "time"

type ClickType string

const (
	ClickTypeClick      ClickType = "CLICK"
	ClickTypeImpression ClickType = "IMPRESSION"
)

// ClickEvent is a row of click_tracking.
type ClickEvent struct {
	ID          string    `json:"id" db:"id"`
	OfferID     string    `json:"offerId" db:"offer_id"`
	Type        ClickType `json:"type" db:"type"`
	UserAgent   string    `json:"userAgent,omitempty" db:"user_agent"`
	Referrer    string    `json:"referrer,omitempty" db:"referrer"`
	IPAddress   string    `json:"ipAddress,omitempty" db:"ip_address"`
	UTMSource   string    `json:"utmSource,omitempty" db:"utm_source"`
	UTMMedium   string    `json:"utmMedium,omitempty" db:"utm_medium"`
	UTMCampaign string    `json:"utmCampaign,omitempty" db:"utm_campaign"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
