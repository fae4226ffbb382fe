package book

import (
	"strings"

	"libadmin/internal/form"
	"libadmin/internal/isbn"
	"libadmin/internal/tags"
)

// AuthorInput is one author row of the book form. ID is set when the author
// was picked from the suggestions.
type AuthorInput struct {
	ID  *int   `json:"id"`
	FIO string `json:"fio" validate:"required,fio,max=255"`
}

// Form is the submitted add/edit book form.
type Form struct {
	ISBN              string        `json:"isbn" validate:"required,isbn13dash"`
	Name              string        `json:"name" validate:"required,max=255,safe_text"`
	PublicationYear   string        `json:"publicationYear" validate:"required,datetime=2006-01-02,not_future"`
	AgeLimit          *float64      `json:"ageLimit" validate:"omitempty,gte=0,lte=21"`
	PublishingCompany string        `json:"publishingCompany" validate:"required,max=255"`
	PageCount         *int          `json:"pageCount" validate:"omitempty,gte=1"`
	Language          string        `json:"language" validate:"max=64"`
	Cost              *float64      `json:"cost" validate:"omitempty,gte=0"`
	CountOfBooks      *int          `json:"countOfBooks" validate:"omitempty,gte=0"`
	Authors           []AuthorInput `json:"authors" validate:"min=1,dive"`
	Genres            []string      `json:"genres" validate:"min=1,dive,required,max=64"`
}

// FormFrom prefills the edit form from an existing record.
func FormFrom(b Book) Form {
	f := Form{
		ISBN:              b.ISBN,
		Name:              b.Name,
		PublicationYear:   b.PublicationYear,
		AgeLimit:          b.AgeLimit,
		PublishingCompany: b.PublishingCompany,
		PageCount:         b.PageCount,
		Language:          b.Language,
		Cost:              b.Cost,
		CountOfBooks:      b.CountOfBooks,
		Genres:            b.Genres,
	}
	for _, a := range b.Authors {
		f.Authors = append(f.Authors, AuthorInput{ID: a.ID, FIO: a.FIO})
	}
	return f
}

// Normalize trims the form and validates it. PublishingCompany names an
// existing company and is sent exactly as given. The genres pass through a
// tag editor in mode, so the add and edit pages read their submitted genres
// differently.
func (f Form) Normalize(mode tags.Mode) (Book, error) {
	f.ISBN = isbn.Format(f.ISBN)
	f.Name = strings.TrimSpace(f.Name)
	f.PublicationYear = strings.TrimSpace(f.PublicationYear)
	f.Language = form.StripMarkup(f.Language)
	for i := range f.Authors {
		f.Authors[i].FIO = strings.TrimSpace(f.Authors[i].FIO)
	}

	editor := tags.NewEditor(mode)
	for _, g := range f.Genres {
		editor.Add(tags.SanitizeInput(g))
	}
	f.Genres = editor.Submitted()

	if err := form.Check(f); err != nil {
		return Book{}, err
	}

	b := Book{
		ISBN:              f.ISBN,
		Name:              f.Name,
		PublicationYear:   f.PublicationYear,
		AgeLimit:          f.AgeLimit,
		PublishingCompany: f.PublishingCompany,
		PageCount:         f.PageCount,
		Language:          f.Language,
		Cost:              f.Cost,
		CountOfBooks:      f.CountOfBooks,
		Genres:            f.Genres,
	}
	for _, a := range f.Authors {
		b.Authors = append(b.Authors, AuthorRef{ID: a.ID, FIO: a.FIO})
	}
	return b, nil
}
