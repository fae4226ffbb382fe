package book

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"libadmin/internal/platform/catalogapi"
)

// APIRepo implements Repository over the catalog REST API.
type APIRepo struct {
	client *catalogapi.Client
}

func NewAPIRepo(client *catalogapi.Client) *APIRepo {
	return &APIRepo{client: client}
}

func bookPath(isbn string) string {
	return "/api/books/" + url.PathEscape(isbn)
}

func (r *APIRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	var b Book
	if err := r.client.GetJSON(ctx, bookPath(isbn), nil, &b); err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book %s: %w", isbn, err)
	}
	return b, nil
}

func (r *APIRepo) Create(ctx context.Context, b Book) (Book, error) {
	created := b
	err := r.client.Do(ctx, catalogapi.Request{
		Method: http.MethodPost,
		Path:   "/api/books",
		Body:   b,
		Out:    &created,
	})
	if err != nil {
		return Book{}, fmt.Errorf("create book %s: %w", b.ISBN, err)
	}
	return created, nil
}

func (r *APIRepo) Update(ctx context.Context, isbn string, b Book) (Book, error) {
	updated := b
	err := r.client.Do(ctx, catalogapi.Request{
		Method: http.MethodPut,
		Path:   bookPath(isbn),
		Body:   b,
		Out:    &updated,
	})
	if errors.Is(err, catalogapi.ErrNotFound) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, fmt.Errorf("update book %s: %w", isbn, err)
	}
	return updated, nil
}

func (r *APIRepo) Delete(ctx context.Context, isbn string) error {
	err := r.client.Do(ctx, catalogapi.Request{Method: http.MethodDelete, Path: bookPath(isbn)})
	if errors.Is(err, catalogapi.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete book %s: %w", isbn, err)
	}
	return nil
}

// BulkDelete succeeds only on 204.
func (r *APIRepo) BulkDelete(ctx context.Context, isbns []string) error {
	err := r.client.Do(ctx, catalogapi.Request{
		Method: http.MethodDelete,
		Path:   "/api/books/bulk-delete",
		Body:   isbns,
		Expect: []int{http.StatusNoContent},
	})
	if err != nil {
		return fmt.Errorf("bulk delete %d books: %w", len(isbns), err)
	}
	return nil
}

type style struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *APIRepo) SearchGenres(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}
	var styles []style
	if err := r.client.GetJSON(ctx, "/api/styles/search", url.Values{"q": {query}}, &styles); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names, nil
}
