package httpx

import (
	"errors"
	"net/http"

	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/selection"
)

// WriteBulkResult reports the end of a bulk delete of count rows with the
// page's texts.
func WriteBulkResult(w http.ResponseWriter, r *http.Request, m selection.Messages, count int, outcome selection.Outcome, err error) {
	var se *catalogapi.StatusError
	switch {
	case err == nil:
		JSONSuccess(w, r, m.Report(outcome, count), nil)
	case errors.Is(err, selection.ErrNoSelection):
		JSONError(w, r, http.StatusBadRequest, "NO_SELECTION", m.Empty, nil)
	case errors.Is(err, selection.ErrAborted):
		JSONSuccess(w, r, selection.Result{Outcome: "aborted", Message: m.Aborted}, nil)
	case errors.As(err, &se):
		if se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden {
			WriteError(w, r, err)
			return
		}
		JSONError(w, r, http.StatusBadGateway, "DELETE_FAILED", m.Failed, nil)
	case errors.Is(err, catalogapi.ErrTransport):
		JSONError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", m.Unreachable, nil)
	default:
		WriteError(w, r, err)
	}
}
