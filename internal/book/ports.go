package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book storage behind the catalog API.
type Repository interface {
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	Create(ctx context.Context, b Book) (Book, error)
	Update(ctx context.Context, isbn string, b Book) (Book, error)
	Delete(ctx context.Context, isbn string) error
	BulkDelete(ctx context.Context, isbns []string) error
	SearchGenres(ctx context.Context, query string) ([]string, error)
}
