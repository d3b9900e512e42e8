package compare

import "net/url"

// Selection is an ordered, bounded set of offer ids drawn from one
// catalog. It is not safe for concurrent use.
type Selection struct {
	ids     []string
	allowed map[string]struct{}
}

// NewSelection clamps ids against allowed.
func NewSelection(ids []string, allowed map[string]struct{}) *Selection {
	return &Selection{
		ids:     ClampOfferIDs(ids, allowed),
		allowed: allowed,
	}
}

// SelectionFromQuery restores a selection from URL parameters.
func SelectionFromQuery(values url.Values, allowed map[string]struct{}) *Selection {
	return &Selection{
		ids:     FromQuery(values, allowed),
		allowed: allowed,
	}
}

// Add appends id and reports whether the selection changed. Empty,
// duplicate and unknown ids are ignored, as is any add at capacity.
func (s *Selection) Add(id string) bool {
	if id == "" || s.Contains(id) || s.IsFull() {
		return false
	}
	if _, ok := s.allowed[id]; !ok {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops id and reports whether it was selected.
func (s *Selection) Remove(id string) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Selection) Reset() {
	s.ids = nil
}

func (s *Selection) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids.
func (s *Selection) IDs() []string {
	return append([]string{}, s.ids...)
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) IsFull() bool {
	return len(s.ids) >= MaxItems
}

// Query is the canonical URL form of the selection.
func (s *Selection) Query() url.Values {
	return ToQuery(s.ids)
}
