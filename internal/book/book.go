package book

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("book not found")

// AuthorRef is an author as embedded in a book record. ID is nil for an
// author typed in by hand that the catalog does not know yet.
type AuthorRef struct {
	ID        *int   `json:"id"`
	FIO       string `json:"fio"`
	BirthDate string `json:"birthDate,omitempty"`
	Country   string `json:"country,omitempty"`
	Nickname  string `json:"nickname,omitempty"`
}

// Book mirrors the catalog's book record. PublicationYear is an ISO date.
type Book struct {
	ISBN              string      `json:"isbn"`
	Name              string      `json:"name"`
	PublicationYear   string      `json:"publicationYear,omitempty"`
	AgeLimit          *float64    `json:"ageLimit,omitempty"`
	PublishingCompany string      `json:"publishingCompany,omitempty"`
	PageCount         *int        `json:"pageCount,omitempty"`
	Language          string      `json:"language,omitempty"`
	Cost              *float64    `json:"cost,omitempty"`
	CountOfBooks      *int        `json:"countOfBooks,omitempty"`
	Authors           []AuthorRef `json:"authors"`
	Genres            []string    `json:"genres"`
}

// AuthorNames joins the author names the way the list shows them.
func (b Book) AuthorNames() string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		if a.FIO != "" {
			names = append(names, a.FIO)
		}
	}
	return strings.Join(names, ", ")
}

// WrittenBy reports whether the author with id is among the book's authors.
func (b Book) WrittenBy(id int) bool {
	for _, a := range b.Authors {
		if a.ID != nil && *a.ID == id {
			return true
		}
	}
	return false
}

// PublishedBy reports whether the book's publishing company is name.
func (b Book) PublishedBy(name string) bool {
	return b.PublishingCompany != "" && b.PublishingCompany == name
}
