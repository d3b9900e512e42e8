// internal/handlers/catalog/home-page/models.go
package homepage

import (
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
)

type Output struct {
	view.Page
	Headline    string             `json:"headline"`
	Lead        string             `json:"lead"`
	CatalogHref string             `json:"catalogHref"`
	Featured    []view.OfferCard   `json:"featured"`
	Calculator  *loans.Calculation `json:"calculator,omitempty"`
}
