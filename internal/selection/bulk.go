package selection

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoSelection is returned before any request when nothing is checked.
	ErrNoSelection = errors.New("no rows selected")
	// ErrAborted is returned when the user declines the confirmation.
	ErrAborted = errors.New("delete cancelled")
)

// Outcome describes a finished bulk delete.
type Outcome int

const (
	// Deleted means the API answered 204 and the list should be refreshed.
	Deleted Outcome = iota + 1
	// Cancelled means the cascade request went out with the cascade flag
	// off; nothing was removed and the list is left as is.
	Cancelled
)

// Confirmer asks the user to confirm deleting count rows.
type Confirmer interface {
	Confirm(ctx context.Context, count int) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, count int) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, count int) (bool, error) { return f(ctx, count) }

// Always is a Confirmer with a fixed answer, used when the confirmation was
// already collected by the caller.
type Always bool

func (a Always) Confirm(context.Context, int) (bool, error) { return bool(a), nil }

// BulkFunc sends one bulk-delete request. cascade is only meaningful for
// deleters created with Cascade.
type BulkFunc func(ctx context.Context, ids []string, cascade bool) error

// Deleter runs the bulk delete flow: require a selection, confirm, send
// exactly one request.
type Deleter struct {
	send    BulkFunc
	confirm Confirmer
	cascade bool
}

// NewDeleter returns a deleter that stops when the confirmation is declined.
func NewDeleter(send BulkFunc, confirm Confirmer) *Deleter {
	return &Deleter{send: send, confirm: confirm}
}

// Cascade returns a deleter whose confirmation answer is forwarded as the
// cascade flag. The request is sent either way.
func Cascade(send BulkFunc, confirm Confirmer) *Deleter {
	return &Deleter{send: send, confirm: confirm, cascade: true}
}

// Delete removes ids. A failed request is returned as-is so callers can tell
// transport errors from status errors.
func (d *Deleter) Delete(ctx context.Context, ids []string) (Outcome, error) {
	if len(ids) == 0 {
		return 0, ErrNoSelection
	}
	ok, err := d.confirm.Confirm(ctx, len(ids))
	if err != nil {
		return 0, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok && !d.cascade {
		return 0, ErrAborted
	}
	if err := d.send(ctx, ids, ok); err != nil {
		return 0, err
	}
	if d.cascade && !ok {
		return Cancelled, nil
	}
	return Deleted, nil
}
