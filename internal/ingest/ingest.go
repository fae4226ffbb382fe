package ingest

import (
	"time"
)

// Direction names a CSV transfer.
type Direction string

const (
	Import Direction = "import"
	Export Direction = "export"
)

// Run is one CSV import or export triggered through the admin.
type Run struct {
	ID         string     `json:"id"`
	Direction  Direction  `json:"direction"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Status     string     `json:"status"` // RUNNING, COMPLETED, FAILED
	Message    string     `json:"message"`
	Error      string     `json:"error,omitempty"`
}
