// internal/handlers/catalog/offer-detail/models.go
package offerdetail

import (
	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

type Input struct {
	Slug       string
	Calculator loans.CalculatorInput
}

type Output struct {
	view.Page
	Offer         view.OfferCard    `json:"offer"`
	Conditions    []string          `json:"conditions"`
	About         string            `json:"about"`
	Calculator    loans.Calculation `json:"calculator"`
	Reviews       []models.Review   `json:"reviews"`
	AverageRating float64           `json:"averageRating"`
	Related       []view.OfferCard  `json:"related"`
	CompareAction string            `json:"compareAction"`
}
