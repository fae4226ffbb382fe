package publisher

import (
	"context"
	"fmt"
	"strings"

	"libadmin/internal/autocomplete"
	"libadmin/internal/book"
	"libadmin/internal/listview"
	"libadmin/internal/selection"
)

type Service struct {
	repo  Repository
	books BookLister
	list  *listview.Controller[Company]
}

func NewService(repo Repository, fetcher listview.Fetcher, books BookLister) *Service {
	return &Service{
		repo:  repo,
		books: books,
		list:  listview.New(fetcher, Adapter),
	}
}

func (s *Service) List(ctx context.Context, state listview.State) (listview.Page[Company], error) {
	return s.list.Fetch(ctx, state)
}

// Detail loads the company and the books it published.
func (s *Service) Detail(ctx context.Context, name string) (Detail, error) {
	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return Detail{}, err
	}
	books, err := s.books.ListWhere(ctx, func(b book.Book) bool { return b.PublishedBy(c.Name) })
	if err != nil {
		return Detail{}, fmt.Errorf("books of %q: %w", c.Name, err)
	}
	return NewDetail(c, books), nil
}

func (s *Service) Create(ctx context.Context, f Form) (Company, error) {
	c, err := f.Normalize()
	if err != nil {
		return Company{}, err
	}
	return s.repo.Create(ctx, c)
}

// Update stores f under originalName, which may differ from the new name.
func (s *Service) Update(ctx context.Context, originalName string, f Form) (Company, error) {
	c, err := f.Normalize()
	if err != nil {
		return Company{}, err
	}
	return s.repo.Update(ctx, originalName, c)
}

// Delete removes one company together with its books.
func (s *Service) Delete(ctx context.Context, name string) error {
	return s.repo.BulkDelete(ctx, []string{name})
}

// BulkDelete removes the selected companies and their books when confirmed.
func (s *Service) BulkDelete(ctx context.Context, names []string, confirmed bool) (selection.Outcome, error) {
	d := selection.NewDeleter(func(ctx context.Context, ids []string, _ bool) error {
		return s.repo.BulkDelete(ctx, ids)
	}, selection.Always(confirmed))
	return d.Delete(ctx, names)
}

// Source suggests publishing companies for the book form.
func (s *Service) Source() autocomplete.Source {
	return autocomplete.SourceFunc(func(ctx context.Context, query string) ([]autocomplete.Suggestion, error) {
		companies, err := s.repo.Search(ctx, strings.TrimSpace(query))
		if err != nil {
			return nil, fmt.Errorf("search publishing companies: %w", err)
		}
		out := make([]autocomplete.Suggestion, 0, len(companies))
		for _, c := range companies {
			out = append(out, autocomplete.Suggestion{ID: c.Name, Label: c.Name, Value: c.Name})
		}
		return out, nil
	})
}
