package publisher

import (
	"strings"

	"libadmin/internal/form"
)

// Form is the submitted add/edit publishing company form.
type Form struct {
	Name              string `json:"name" validate:"required,max=255,safe_text"`
	EstablishmentYear *int   `json:"establishmentYear" validate:"omitempty,gte=1400,lte=2100"`
	ContactInfo       string `json:"contactInfo" validate:"max=255"`
	City              string `json:"city" validate:"omitempty,letters,max=100"`
}

// Normalize trims and validates the form. The name is otherwise kept as
// typed since it is the company's key upstream.
func (f Form) Normalize() (Company, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.ContactInfo = form.StripMarkup(f.ContactInfo)
	f.City = strings.TrimSpace(f.City)

	if err := form.Check(f); err != nil {
		return Company{}, err
	}
	return Company{
		Name:              f.Name,
		EstablishmentYear: f.EstablishmentYear,
		ContactInfo:       f.ContactInfo,
		City:              f.City,
	}, nil
}
