package ingest

import "context"

//go:generate mockgen -source=ports.go -destination=mock_transfer.go -package=ingest

// Transfer triggers the catalog's own CSV jobs and returns its message.
type Transfer interface {
	ImportCSV(ctx context.Context) (string, error)
	ExportCSV(ctx context.Context) (string, error)
}
