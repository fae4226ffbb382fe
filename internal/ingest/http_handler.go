package ingest

import (
	"net/http"

	"libadmin/internal/httpx"
	"libadmin/internal/platform/catalogapi"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Import handles POST /admin/csv/import
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, Import)
}

// Export handles POST /admin/csv/export
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, Export)
}

// Runs handles GET /admin/csv/runs
func (h *HTTPHandler) Runs(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.svc.Runs(), nil)
}

func (h *HTTPHandler) run(w http.ResponseWriter, r *http.Request, d Direction) {
	run, err := h.svc.Run(r.Context(), d)
	if err == nil {
		httpx.JSONSuccess(w, r, run, nil)
		return
	}
	switch catalogapi.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		httpx.WriteError(w, r, err)
	default:
		httpx.JSONError(w, r, http.StatusBadGateway, "CSV_FAILED", run.Message, nil)
	}
}
