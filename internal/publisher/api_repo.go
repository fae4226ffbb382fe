package publisher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"libadmin/internal/platform/catalogapi"
)

const basePath = "/api/publishing-companies"

// APIRepo implements Repository over the catalog REST API.
type APIRepo struct {
	client *catalogapi.Client
}

func NewAPIRepo(client *catalogapi.Client) *APIRepo {
	return &APIRepo{client: client}
}

func companyPath(name string) string {
	return basePath + "/" + url.PathEscape(name)
}

func (r *APIRepo) GetByName(ctx context.Context, name string) (Company, error) {
	var c Company
	if err := r.client.GetJSON(ctx, companyPath(name), nil, &c); err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			return Company{}, ErrNotFound
		}
		return Company{}, fmt.Errorf("get publishing company %q: %w", name, err)
	}
	return c, nil
}

func (r *APIRepo) Search(ctx context.Context, query string) ([]Company, error) {
	if query == "" {
		return nil, nil
	}
	var companies []Company
	if err := r.client.GetJSON(ctx, basePath+"/search", url.Values{"q": {query}}, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *APIRepo) Create(ctx context.Context, c Company) (Company, error) {
	created := c
	if err := r.client.Do(ctx, catalogapi.Request{Method: http.MethodPost, Path: basePath, Body: c, Out: &created}); err != nil {
		return Company{}, fmt.Errorf("create publishing company %q: %w", c.Name, err)
	}
	return created, nil
}

func (r *APIRepo) Update(ctx context.Context, originalName string, c Company) (Company, error) {
	updated := c
	err := r.client.Do(ctx, catalogapi.Request{Method: http.MethodPut, Path: companyPath(originalName), Body: c, Out: &updated})
	if errors.Is(err, catalogapi.ErrNotFound) {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, fmt.Errorf("update publishing company %q: %w", originalName, err)
	}
	return updated, nil
}

// BulkDelete succeeds only on 204.
func (r *APIRepo) BulkDelete(ctx context.Context, names []string) error {
	err := r.client.Do(ctx, catalogapi.Request{
		Method: http.MethodDelete,
		Path:   basePath + "/bulk-delete",
		Body:   names,
		Expect: []int{http.StatusNoContent},
	})
	if err != nil {
		return fmt.Errorf("bulk delete %d publishing companies: %w", len(names), err)
	}
	return nil
}
