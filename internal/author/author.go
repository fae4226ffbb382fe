package author

import (
	"errors"
	"strconv"
)

var ErrNotFound = errors.New("author not found")

// Author mirrors the catalog's author record. BirthDate is an ISO date.
type Author struct {
	ID        int    `json:"id"`
	FIO       string `json:"fio"`
	BirthDate string `json:"birthDate,omitempty"`
	Country   string `json:"country,omitempty"`
	Nickname  string `json:"nickname,omitempty"`
}

// Key is the row id of the author.
func (a Author) Key() string {
	return strconv.Itoa(a.ID)
}

// SuggestionLabel is the text of the author in the autocomplete list:
// "fio (nickname), birthDate, country" with "---" for missing parts.
func (a Author) SuggestionLabel() string {
	label := a.FIO
	if a.Nickname != "" {
		label += " (" + a.Nickname + ")"
	}
	return label + ", " + orDashes(a.BirthDate) + ", " + orDashes(a.Country)
}

func orDashes(s string) string {
	if s == "" {
		return "---"
	}
	return s
}
