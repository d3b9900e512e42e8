// internal/handlers/infrastructure/site-settings/models.go
package sitesettings

import "loan-catalog/internal/analytics"

type NavLink struct {
	Href     string `json:"href"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

type Contacts struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Hours string `json:"hours"`
	Legal string `json:"legal"`
}

type Output struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	URL         string             `json:"url"`
	Locale      string             `json:"locale"`
	Version     string             `json:"version,omitempty"`
	Navigation  []NavLink          `json:"navigation"`
	Contacts    Contacts           `json:"contacts"`
	Analytics   analytics.Settings `json:"analytics"`
}
