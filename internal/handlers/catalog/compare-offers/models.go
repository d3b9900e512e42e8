// internal/handlers/catalog/compare-offers/models.go
package compareoffers

import (
	"loan-catalog/internal/compare"
	"loan-catalog/internal/handlers/view"
)

// Action is a selection mutation posted from the comparison page.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionReset  Action = "reset"
)

// FormField carries the offer id of add and remove.
const FormField = "offerId"

type Actions struct {
	Add    string `json:"add"`
	Remove string `json:"remove"`
	Reset  string `json:"reset"`
}

type Output struct {
	view.Page
	Heading     string           `json:"heading"`
	IDs         []string         `json:"ids"`
	Selected    []view.OfferCard `json:"selected"`
	Rows        []compare.Row    `json:"rows"`
	Count       int              `json:"count"`
	MaxItems    int              `json:"maxItems"`
	IsFull      bool             `json:"isFull"`
	Available   []compare.Option `json:"available"`
	Recommended []compare.Option `json:"recommended"`
	ShareURL    string           `json:"shareUrl"`
	Actions     Actions          `json:"actions"`
}
