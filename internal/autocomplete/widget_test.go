package autocomplete

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(items ...Suggestion) SourceFunc {
	return func(context.Context, string) ([]Suggestion, error) {
		return items, nil
	}
}

func TestWidget_TypeFillsSuggestions(t *testing.T) {
	var got string
	w := New(SourceFunc(func(_ context.Context, q string) ([]Suggestion, error) {
		got = q
		return []Suggestion{{ID: "1", Label: "Толстой Лев", Value: "Толстой Лев"}}, nil
	}))

	require.NoError(t, w.Type(context.Background(), " Тол&стой "))
	assert.Equal(t, "Тол&стой", got)
	assert.True(t, w.Open())
	assert.Len(t, w.Suggestions(), 1)
}

func TestWidget_EmptyInputClearsWithoutLookup(t *testing.T) {
	calls := 0
	w := New(SourceFunc(func(context.Context, string) ([]Suggestion, error) {
		calls++
		return []Suggestion{{ID: "1", Label: "x"}}, nil
	}))
	require.NoError(t, w.Type(context.Background(), "x"))
	require.NoError(t, w.Type(context.Background(), "   "))

	assert.Equal(t, 1, calls)
	assert.False(t, w.Open())
	assert.Empty(t, w.Suggestions())
}

func TestWidget_SelectFillsInputAndHidden(t *testing.T) {
	w := New(staticSource(
		Suggestion{ID: "3", Label: "Пушкин А. С. (Саша), 1799-06-06, Россия", Value: "Пушкин А. С."},
	))
	require.NoError(t, w.Type(context.Background(), "Пуш"))

	s, err := w.Select(0)
	require.NoError(t, err)
	assert.Equal(t, "3", s.ID)
	assert.Equal(t, "Пушкин А. С.", w.Input())
	assert.Equal(t, "3", w.Hidden())
	assert.False(t, w.Open())
}

func TestWidget_SelectRejectsDisabledAndOutOfRange(t *testing.T) {
	w := New(staticSource(), WithNotFound("Автор не найден. Можно добавить нового."))
	require.NoError(t, w.Type(context.Background(), "zzz"))

	items := w.Suggestions()
	require.Len(t, items, 1)
	assert.True(t, items[0].Disabled)

	_, err := w.Select(0)
	assert.ErrorIs(t, err, ErrNotSelectable)
	_, err = w.Select(5)
	assert.ErrorIs(t, err, ErrNotSelectable)
	assert.Empty(t, w.Hidden())
}

func TestWidget_Dismiss(t *testing.T) {
	w := New(staticSource(Suggestion{ID: "1", Label: "a"}))
	require.NoError(t, w.Type(context.Background(), "a"))
	w.Dismiss()
	assert.False(t, w.Open())
	assert.Empty(t, w.Suggestions())
	assert.Equal(t, "a", w.Input())
}

func TestWidget_LookupErrorKeepsList(t *testing.T) {
	boom := errors.New("status 500")
	fail := false
	w := New(SourceFunc(func(context.Context, string) ([]Suggestion, error) {
		if fail {
			return nil, boom
		}
		return []Suggestion{{ID: "1", Label: "a"}}, nil
	}))
	require.NoError(t, w.Type(context.Background(), "a"))
	fail = true
	assert.ErrorIs(t, w.Type(context.Background(), "ab"), boom)
	assert.Len(t, w.Suggestions(), 1)
}

func TestWidget_StaleResponseIsDropped(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})
	w := New(SourceFunc(func(ctx context.Context, q string) ([]Suggestion, error) {
		if q == "a" {
			close(slowStarted)
			<-release
			return []Suggestion{{ID: "old", Label: "old"}}, nil
		}
		return []Suggestion{{ID: "new", Label: "new"}}, nil
	}))

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowErr = w.Type(context.Background(), "a")
	}()

	<-slowStarted
	require.NoError(t, w.Type(context.Background(), "ab"))
	close(release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrStale)
	items := w.Suggestions()
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "ab", w.Input())
}

func TestWidget_NewKeystrokeCancelsInFlightLookup(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	w := New(SourceFunc(func(ctx context.Context, q string) ([]Suggestion, error) {
		if q == "a" {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return nil, nil
	}))

	done := make(chan error, 1)
	go func() { done <- w.Type(context.Background(), "a") }()

	<-started
	require.NoError(t, w.Type(context.Background(), "ab"))
	<-cancelled
	assert.ErrorIs(t, <-done, ErrStale)
}
