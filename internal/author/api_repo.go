package author

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"libadmin/internal/platform/catalogapi"
)

// APIRepo implements Repository over the catalog REST API.
type APIRepo struct {
	client *catalogapi.Client
}

func NewAPIRepo(client *catalogapi.Client) *APIRepo {
	return &APIRepo{client: client}
}

func authorPath(id int) string {
	return "/api/authors/" + strconv.Itoa(id)
}

func (r *APIRepo) GetByID(ctx context.Context, id int) (Author, error) {
	var a Author
	if err := r.client.GetJSON(ctx, authorPath(id), nil, &a); err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			return Author{}, ErrNotFound
		}
		return Author{}, fmt.Errorf("get author %d: %w", id, err)
	}
	return a, nil
}

func (r *APIRepo) Search(ctx context.Context, query string) ([]Author, error) {
	if query == "" {
		return nil, nil
	}
	var authors []Author
	if err := r.client.GetJSON(ctx, "/api/authors/search", url.Values{"q": {query}}, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *APIRepo) Create(ctx context.Context, a Author) (Author, error) {
	created := a
	err := r.client.Do(ctx, catalogapi.Request{Method: http.MethodPost, Path: "/api/authors", Body: a, Out: &created})
	if err != nil {
		return Author{}, fmt.Errorf("create author: %w", err)
	}
	return created, nil
}

func (r *APIRepo) Update(ctx context.Context, id int, a Author) (Author, error) {
	updated := a
	err := r.client.Do(ctx, catalogapi.Request{Method: http.MethodPut, Path: authorPath(id), Body: a, Out: &updated})
	if errors.Is(err, catalogapi.ErrNotFound) {
		return Author{}, ErrNotFound
	}
	if err != nil {
		return Author{}, fmt.Errorf("update author %d: %w", id, err)
	}
	return updated, nil
}

func (r *APIRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Do(ctx, catalogapi.Request{Method: http.MethodDelete, Path: authorPath(id)})
	if errors.Is(err, catalogapi.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	return nil
}

// BulkDelete succeeds only on 204. The flag travels in the query string.
func (r *APIRepo) BulkDelete(ctx context.Context, ids []int, removeEverything bool) error {
	err := r.client.Do(ctx, catalogapi.Request{
		Method: http.MethodDelete,
		Path:   "/api/authors/bulk-delete",
		Query:  url.Values{"removeEverything": {strconv.FormatBool(removeEverything)}},
		Body:   ids,
		Expect: []int{http.StatusNoContent},
	})
	if err != nil {
		return fmt.Errorf("bulk delete %d authors: %w", len(ids), err)
	}
	return nil
}
