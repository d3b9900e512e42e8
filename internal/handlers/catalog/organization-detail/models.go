// internal/handlers/catalog/organization-detail/models.go
package organizationdetail

import (
	"net/url"

	"loan-catalog/internal/handlers/view"
	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

type Input struct {
	Slug  string
	Query url.Values
}

type Output struct {
	view.Page
	Name              string                    `json:"name"`
	Slug              string                    `json:"slug"`
	Description       string                    `json:"description"`
	Intro             string                    `json:"intro"`
	Summary           loans.OrganizationSummary `json:"summary"`
	Stats             []view.Stat               `json:"stats"`
	PayoutLabels      []string                  `json:"payoutLabels"`
	RequirementLabels []string                  `json:"requirementLabels"`
	Filters           view.FilterBar            `json:"filters"`
	Listing           view.Listing              `json:"listing"`
	Reviews           []models.Review           `json:"reviews"`
	ReviewSummary     string                    `json:"reviewSummary"`
}
