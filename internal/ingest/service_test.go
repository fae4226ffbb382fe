package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/testutil"
)

func TestService_RunImport(t *testing.T) {
	api := NewMockTransfer(gomock.NewController(t))
	api.EXPECT().ImportCSV(gomock.Any()).Return("42 записи", nil)

	svc := NewService(api)
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := start
	svc.now = func() time.Time {
		now := tick
		tick = tick.Add(time.Second)
		return now
	}

	run, err := svc.Run(context.Background(), Import)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", run.Status)
	assert.Equal(t, "Импорт успешно завершён: 42 записи", run.Message)
	assert.Equal(t, start, run.StartedAt)
	require.NotNil(t, run.FinishedAt)
	assert.Equal(t, start.Add(time.Second), *run.FinishedAt)
	assert.NotEmpty(t, run.ID)
}

func TestService_RunExportFailure(t *testing.T) {
	api := NewMockTransfer(gomock.NewController(t))
	boom := errors.New("boom")
	api.EXPECT().ExportCSV(gomock.Any()).Return("", boom)

	run, err := NewService(api).Run(context.Background(), Export)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "FAILED", run.Status)
	assert.Equal(t, "boom", run.Error)
	assert.Contains(t, run.Message, "Не удалось выполнить экспорт")
}

func TestService_RunsNewestFirstAndBounded(t *testing.T) {
	api := NewMockTransfer(gomock.NewController(t))
	api.EXPECT().ImportCSV(gomock.Any()).Return("ok", nil).Times(historySize)
	api.EXPECT().ExportCSV(gomock.Any()).Return("ok", nil)

	svc := NewService(api)
	for i := 0; i < historySize; i++ {
		_, _ = svc.Run(context.Background(), Import)
	}
	_, _ = svc.Run(context.Background(), Export)

	runs := svc.Runs()
	require.Len(t, runs, historySize)
	assert.Equal(t, Export, runs[0].Direction)
}

func TestHTTPHandler_Import(t *testing.T) {
	api := NewMockTransfer(gomock.NewController(t))
	api.EXPECT().ImportCSV(gomock.Any()).Return("готово", nil)
	h := NewHTTPHandler(NewService(api))

	w := httptest.NewRecorder()
	h.Import(w, testutil.NewRequest(http.MethodPost, "/admin/csv/import", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var run Run
	_, err := testutil.DecodeEnvelope(w, &run)
	require.NoError(t, err)
	assert.Equal(t, "Импорт успешно завершён: готово", run.Message)
}

func TestHTTPHandler_ExportFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "upstream error",
			err:        &catalogapi.StatusError{Method: http.MethodPost, Path: "/api/csv/export", StatusCode: http.StatusInternalServerError},
			wantStatus: http.StatusBadGateway,
			wantCode:   "CSV_FAILED",
		},
		{
			name:       "not signed in",
			err:        &catalogapi.StatusError{Method: http.MethodPost, Path: "/api/csv/export", StatusCode: http.StatusUnauthorized},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := NewMockTransfer(gomock.NewController(t))
			api.EXPECT().ExportCSV(gomock.Any()).Return("", tt.err)
			h := NewHTTPHandler(NewService(api))

			w := httptest.NewRecorder()
			h.Export(w, testutil.NewRequest(http.MethodPost, "/admin/csv/export", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			env, err := testutil.DecodeEnvelope(w, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}
