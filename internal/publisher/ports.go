package publisher

import (
	"context"

	"libadmin/internal/book"
	"libadmin/internal/listview"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=publisher

// Repository defines the contract for publishing company storage behind the
// catalog API. The API has no single delete; one company is removed through
// BulkDelete.
type Repository interface {
	GetByName(ctx context.Context, name string) (Company, error)
	Search(ctx context.Context, query string) ([]Company, error)
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, originalName string, c Company) (Company, error)
	BulkDelete(ctx context.Context, names []string) error
}

// BookLister renders the catalog table filtered on the client.
type BookLister interface {
	ListWhere(ctx context.Context, keep func(book.Book) bool) (listview.Page[book.Book], error)
}
