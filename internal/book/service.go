package book

import (
	"context"
	"fmt"
	"strings"

	"libadmin/internal/autocomplete"
	"libadmin/internal/listview"
	"libadmin/internal/selection"
	"libadmin/internal/tags"
)

// Service provides the book pages' behaviour on top of the catalog API.
type Service struct {
	repo Repository
	list *listview.Controller[Book]
}

// NewService creates a new book service. fetcher serves the list endpoint.
func NewService(repo Repository, fetcher listview.Fetcher) *Service {
	return &Service{
		repo: repo,
		list: listview.New(fetcher, Adapter),
	}
}

// Initial returns the state the catalog page opens with.
func (s *Service) Initial() listview.State {
	return s.list.Initial()
}

// List fetches and renders the catalog table for state.
func (s *Service) List(ctx context.Context, state listview.State) (listview.Page[Book], error) {
	return s.list.Fetch(ctx, state)
}

// ListWhere renders the default catalog table filtered by keep. Author and
// publisher pages use it to show their books.
func (s *Service) ListWhere(ctx context.Context, keep func(Book) bool) (listview.Page[Book], error) {
	return s.list.FetchWhere(ctx, s.list.Initial(), keep)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// Create validates f as submitted from the add page and stores it.
func (s *Service) Create(ctx context.Context, f Form) (Book, error) {
	b, err := f.Normalize(tags.ModeAdd)
	if err != nil {
		return Book{}, err
	}
	return s.repo.Create(ctx, b)
}

// Update validates f as submitted from the edit page and replaces the book
// stored under isbn.
func (s *Service) Update(ctx context.Context, isbn string, f Form) (Book, error) {
	b, err := f.Normalize(tags.ModeEdit)
	if err != nil {
		return Book{}, err
	}
	return s.repo.Update(ctx, isbn, b)
}

// Delete removes a single book.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}

// BulkDelete removes the selected books when confirmed is true. A declined
// confirmation sends nothing.
func (s *Service) BulkDelete(ctx context.Context, isbns []string, confirmed bool) (selection.Outcome, error) {
	d := selection.NewDeleter(func(ctx context.Context, ids []string, _ bool) error {
		return s.repo.BulkDelete(ctx, ids)
	}, selection.Always(confirmed))
	return d.Delete(ctx, isbns)
}

// GenreSource suggests genres for the tag editor, leaving out the genres
// that are already tags.
func (s *Service) GenreSource(editor *tags.Editor) autocomplete.Source {
	return autocomplete.SourceFunc(func(ctx context.Context, query string) ([]autocomplete.Suggestion, error) {
		names, err := s.repo.SearchGenres(ctx, strings.TrimSpace(query))
		if err != nil {
			return nil, fmt.Errorf("search genres: %w", err)
		}
		var out []autocomplete.Suggestion
		for _, name := range editor.Filter(names) {
			out = append(out, autocomplete.Suggestion{Label: name, Value: name})
		}
		return out, nil
	})
}
