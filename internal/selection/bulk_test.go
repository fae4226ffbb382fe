package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls   int
	ids     []string
	cascade bool
	err     error
}

func (r *recorder) send(_ context.Context, ids []string, cascade bool) error {
	r.calls++
	r.ids = ids
	r.cascade = cascade
	return r.err
}

func TestDeleter_NoSelectionSendsNothing(t *testing.T) {
	rec := &recorder{}
	asked := false
	d := NewDeleter(rec.send, ConfirmFunc(func(context.Context, int) (bool, error) {
		asked = true
		return true, nil
	}))

	_, err := d.Delete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Zero(t, rec.calls)
	assert.False(t, asked)
}

func TestDeleter_DeclinedSendsNothing(t *testing.T) {
	rec := &recorder{}
	d := NewDeleter(rec.send, Always(false))

	_, err := d.Delete(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, ErrAborted)
	assert.Zero(t, rec.calls)
}

func TestDeleter_ConfirmedSendsOneRequest(t *testing.T) {
	rec := &recorder{}
	var count int
	d := NewDeleter(rec.send, ConfirmFunc(func(_ context.Context, n int) (bool, error) {
		count = n
		return true, nil
	}))

	out, err := d.Delete(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, Deleted, out)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, []string{"1", "2"}, rec.ids)
}

func TestDeleter_SendErrorPassesThrough(t *testing.T) {
	boom := errors.New("status 500")
	rec := &recorder{err: boom}
	d := NewDeleter(rec.send, Always(true))

	_, err := d.Delete(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, boom)
}

func TestCascade_DeclineStillSendsWithFlagOff(t *testing.T) {
	rec := &recorder{}
	d := Cascade(rec.send, Always(false))

	out, err := d.Delete(context.Background(), []string{"4"})
	require.NoError(t, err)
	assert.Equal(t, Cancelled, out)
	assert.Equal(t, 1, rec.calls)
	assert.False(t, rec.cascade)
}

func TestCascade_ConfirmSendsWithFlagOn(t *testing.T) {
	rec := &recorder{}
	d := Cascade(rec.send, Always(true))

	out, err := d.Delete(context.Background(), []string{"4"})
	require.NoError(t, err)
	assert.Equal(t, Deleted, out)
	assert.True(t, rec.cascade)
}

func TestDeleter_ConfirmError(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("interrupted")
	d := NewDeleter(rec.send, ConfirmFunc(func(context.Context, int) (bool, error) { return false, boom }))

	_, err := d.Delete(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, rec.calls)
}
