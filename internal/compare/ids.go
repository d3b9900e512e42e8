package compare

import (
	"net/url"
	"strings"

	"loan-catalog/internal/models"
)

// MaxItems bounds a comparison selection.
const MaxItems = 4

// QueryParam carries the selection in URLs, one value per id.
const QueryParam = "offers"

// ParseOfferIDsParam splits every raw value on commas, trims and
// deduplicates the ids in first-seen order and stops at MaxItems.
func ParseOfferIDsParam(raw ...string) []string {
	ids := make([]string, 0, MaxItems)
	seen := make(map[string]bool, MaxItems)
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			id := strings.TrimSpace(part)
			if id == "" || seen[id] {
				continue
			}
			if len(ids) == MaxItems {
				return ids
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseOfferIDsFromValues reads every offers value of a query.
func ParseOfferIDsFromValues(values url.Values) []string {
	return ParseOfferIDsParam(values[QueryParam]...)
}

// ClampOfferIDs keeps the ids present in allowed, deduplicated and in
// order, up to MaxItems.
func ClampOfferIDs(ids []string, allowed map[string]struct{}) []string {
	out := make([]string, 0, MaxItems)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if len(out) == MaxItems {
			break
		}
		if _, ok := allowed[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// ResolveOffersByIDs returns the offers for ids in selection order. Ids
// without an offer are skipped.
func ResolveOffersByIDs(ids []string, offers []models.LoanOffer) []models.LoanOffer {
	byID := make(map[string]models.LoanOffer, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
	}
	resolved := make([]models.LoanOffer, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			resolved = append(resolved, o)
		}
	}
	return resolved
}

// ToQuery encodes ids as repeated offers values.
func ToQuery(ids []string) url.Values {
	values := url.Values{}
	for _, id := range ids {
		values.Add(QueryParam, id)
	}
	return values
}

// FromQuery is the inverse of ToQuery against the current catalog:
// FromQuery(ToQuery(x), allowed) equals ClampOfferIDs(x, allowed).
func FromQuery(values url.Values, allowed map[string]struct{}) []string {
	return ClampOfferIDs(rawOfferIDs(values[QueryParam]), allowed)
}

// SyncURL rewrites the offers parameter of u in place, leaving other
// parameters alone.
func SyncURL(u *url.URL, ids []string) {
	values := u.Query()
	values.Del(QueryParam)
	for _, id := range ids {
		values.Add(QueryParam, id)
	}
	u.RawQuery = values.Encode()
}

// ShareURL builds the absolute link that reproduces a selection.
func ShareURL(origin, path string, ids []string) string {
	u := strings.TrimRight(origin, "/") + path
	if len(ids) == 0 {
		return u
	}
	return u + "?" + ToQuery(ids).Encode()
}

// rawOfferIDs splits and trims without truncating, so ids dropped by
// ClampOfferIDs do not use up capacity.
func rawOfferIDs(raw []string) []string {
	var ids []string
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			if id := strings.TrimSpace(part); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
