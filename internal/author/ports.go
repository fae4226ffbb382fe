package author

import (
	"context"

	"libadmin/internal/book"
	"libadmin/internal/listview"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=author

// Repository defines the contract for author storage behind the catalog API.
type Repository interface {
	GetByID(ctx context.Context, id int) (Author, error)
	Search(ctx context.Context, query string) ([]Author, error)
	Create(ctx context.Context, a Author) (Author, error)
	Update(ctx context.Context, id int, a Author) (Author, error)
	Delete(ctx context.Context, id int) error
	BulkDelete(ctx context.Context, ids []int, removeEverything bool) error
}

// BookLister renders the catalog table filtered on the client.
type BookLister interface {
	ListWhere(ctx context.Context, keep func(book.Book) bool) (listview.Page[book.Book], error)
}
