package author

import (
	"strings"

	"libadmin/internal/form"
)

// Form is the submitted add/edit author form.
type Form struct {
	FIO       string `json:"fio" validate:"required,letters,max=255"`
	BirthDate string `json:"birthDate" validate:"omitempty,datetime=2006-01-02,not_future"`
	Country   string `json:"country" validate:"omitempty,safe_text,max=100"`
	Nickname  string `json:"nickname" validate:"max=255"`
}

// Normalize trims and validates the form.
func (f Form) Normalize() (Author, error) {
	f.FIO = strings.TrimSpace(f.FIO)
	f.BirthDate = strings.TrimSpace(f.BirthDate)
	f.Country = strings.TrimSpace(f.Country)
	f.Nickname = form.StripMarkup(f.Nickname)

	if err := form.Check(f); err != nil {
		return Author{}, err
	}
	return Author{FIO: f.FIO, BirthDate: f.BirthDate, Country: f.Country, Nickname: f.Nickname}, nil
}
