package catalogapi

import (
	"context"
	"errors"
	"net/http"
)

// ImportCSV asks the API to load its CSV import source and returns the
// API's message.
func (c *Client) ImportCSV(ctx context.Context) (string, error) {
	return c.postText(ctx, "/api/csv/import")
}

// ExportCSV asks the API to write its CSV export and returns the API's
// message.
func (c *Client) ExportCSV(ctx context.Context) (string, error) {
	return c.postText(ctx, "/api/csv/export")
}

func (c *Client) postText(ctx context.Context, path string) (string, error) {
	var msg string
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: path, Out: &msg}); err != nil {
		return "", err
	}
	return msg, nil
}

// Ping checks that the API answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/books", Query: map[string][]string{"search": {"__ping__"}}})
	var se *StatusError
	if errors.As(err, &se) {
		return nil
	}
	return err
}
