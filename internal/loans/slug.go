package loans

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"loan-catalog/internal/models"
)

// Slugify transliterates Cyrillic and reduces s to lowercase ASCII words
// joined by dashes.
func Slugify(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(slug.MakeLang(s, "ru"), "-"), "-")
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// MakeOfferSlug includes the id so slugs stay unique across offers with
// the same title.
func MakeOfferSlug(offer models.LoanOffer) string {
	return Slugify(offer.Title + " " + offer.Organization + " " + offer.ID)
}

// FindOfferBySlug returns the offer whose slug equals s.
func FindOfferBySlug(offers []models.LoanOffer, s string) (models.LoanOffer, bool) {
	for _, o := range offers {
		if MakeOfferSlug(o) == s {
			return o, true
		}
	}
	return models.LoanOffer{}, false
}

// OfferPath is the catalog URL path of an offer.
func OfferPath(offer models.LoanOffer) string {
	return "/loans/" + MakeOfferSlug(offer)
}
