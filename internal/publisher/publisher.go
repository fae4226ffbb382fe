package publisher

import "errors"

var ErrNotFound = errors.New("publishing company not found")

// Company mirrors the catalog's publishing company record. The name is its
// identifier.
type Company struct {
	Name              string `json:"name"`
	EstablishmentYear *int   `json:"establishmentYear,omitempty"`
	ContactInfo       string `json:"contactInfo,omitempty"`
	City              string `json:"city,omitempty"`
}
