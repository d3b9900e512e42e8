// internal/handlers/catalog/list-offers/models.go
package listoffers

import "loan-catalog/internal/handlers/view"

type Output struct {
	view.Page
	Heading  string         `json:"heading"`
	Subtitle string         `json:"subtitle"`
	Filters  view.FilterBar `json:"filters"`
	Listing  view.Listing   `json:"listing"`
}
