// internal/handlers/tracking/offer-click/models.go
package offerclick

import "net/url"

// Input is everything a click needs from the request.
type Input struct {
	OfferID    string
	Query      url.Values
	RequestURL string
	UserAgent  string
	Referrer   string
	IPAddress  string
}

// Output is the partner redirect of a recorded click.
type Output struct {
	ClickID    string
	PartnerURL string
	Location   string
	CacheHit   bool
}
