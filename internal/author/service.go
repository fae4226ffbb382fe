package author

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"libadmin/internal/autocomplete"
	"libadmin/internal/book"
	"libadmin/internal/form"
	"libadmin/internal/listview"
	"libadmin/internal/selection"
)

// NotFoundText is the disabled suggestion shown when no author matches.
const NotFoundText = "Автор не найден. Можно добавить нового."

// Service provides the author pages' behaviour on top of the catalog API.
type Service struct {
	repo  Repository
	books BookLister
	list  *listview.Controller[Author]
}

func NewService(repo Repository, fetcher listview.Fetcher, books BookLister) *Service {
	return &Service{
		repo:  repo,
		books: books,
		list:  listview.New(fetcher, Adapter),
	}
}

func (s *Service) List(ctx context.Context, state listview.State) (listview.Page[Author], error) {
	return s.list.Fetch(ctx, state)
}

// Detail loads the author and the books written by them.
func (s *Service) Detail(ctx context.Context, id int) (Detail, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	books, err := s.books.ListWhere(ctx, func(b book.Book) bool { return b.WrittenBy(id) })
	if err != nil {
		return Detail{}, fmt.Errorf("books of author %d: %w", id, err)
	}
	return NewDetail(a, books), nil
}

func (s *Service) Create(ctx context.Context, f Form) (Author, error) {
	a, err := f.Normalize()
	if err != nil {
		return Author{}, err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id int, f Form) (Author, error) {
	a, err := f.Normalize()
	if err != nil {
		return Author{}, err
	}
	a.ID = id
	return s.repo.Update(ctx, id, a)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// BulkDelete always sends the request; removeEverything carries the answer
// to the cascade question, and a declined cascade removes nothing.
func (s *Service) BulkDelete(ctx context.Context, keys []string, removeEverything bool) (selection.Outcome, error) {
	ids := make([]int, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return 0, form.Errors{{Field: "ids", Message: fmt.Sprintf("%q is not an author id", k)}}
		}
		ids = append(ids, id)
	}

	d := selection.Cascade(func(ctx context.Context, _ []string, cascade bool) error {
		return s.repo.BulkDelete(ctx, ids, cascade)
	}, selection.Always(removeEverything))
	return d.Delete(ctx, keys)
}

// Source suggests authors for the book form. The visible value is the FIO
// and the hidden value the author id.
func (s *Service) Source() autocomplete.Source {
	return autocomplete.SourceFunc(func(ctx context.Context, query string) ([]autocomplete.Suggestion, error) {
		authors, err := s.repo.Search(ctx, strings.TrimSpace(query))
		if err != nil {
			return nil, fmt.Errorf("search authors: %w", err)
		}
		out := make([]autocomplete.Suggestion, 0, len(authors))
		for _, a := range authors {
			out = append(out, autocomplete.Suggestion{ID: a.Key(), Label: a.SuggestionLabel(), Value: a.FIO})
		}
		return out, nil
	})
}

// Suggest runs one lookup and appends the "not found" entry for an empty
// result, as the widget would show it.
func (s *Service) Suggest(ctx context.Context, query string) ([]autocomplete.Suggestion, error) {
	w := autocomplete.New(s.Source(), autocomplete.WithNotFound(NotFoundText))
	if err := w.Type(ctx, query); err != nil {
		return nil, err
	}
	return w.Suggestions(), nil
}
