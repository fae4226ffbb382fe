package publisher

import (
	"errors"
	"net/http"
	"strings"

	"libadmin/internal/authgate"
	"libadmin/internal/autocomplete"
	"libadmin/internal/httpx"
	"libadmin/internal/listview"
	"libadmin/internal/selection"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func (h *HTTPHandler) page(w http.ResponseWriter, r *http.Request, state listview.State) {
	page, err := h.service.List(r.Context(), state)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, page.Table, httpx.Meta{
		"state":    page.State,
		"controls": authgate.Publishers.Evaluate(httpx.TokenFrom(r)),
	})
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Publishing company not found", nil)
		return
	}
	httpx.WriteError(w, r, err)
}

// List handles GET /admin/publishers
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, listview.StateFromQuery(r.URL.Query(), Adapter.SearchParam, Adapter.DefaultSort))
}

// Sort handles POST /admin/publishers/sort
func (h *HTTPHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req listview.SortRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	if !Adapter.Sortable(req.Column) {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Column is not sortable", []httpx.ErrorDetail{{Field: "column", Message: req.Column}})
		return
	}
	h.page(w, r, req.State.ToggleSort(req.Column))
}

// Get handles GET /admin/publishers/{name}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if strings.TrimSpace(name) == "" {
		http.NotFound(w, r)
		return
	}
	d, err := h.service.Detail(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, d, httpx.Meta{"controls": authgate.Publishers.Evaluate(httpx.TokenFrom(r))})
}

// Create handles POST /admin/publishers
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f Form
	if !httpx.DecodeJSON(w, r, &f) {
		return
	}
	c, err := h.service.Create(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, c)
}

// Update handles PUT /admin/publishers/{name}; the path carries the name
// before the edit.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var f Form
	if !httpx.DecodeJSON(w, r, &f) {
		return
	}
	c, err := h.service.Update(r.Context(), r.PathValue("name"), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, c, nil)
}

// Delete handles DELETE /admin/publishers/{name}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("name")); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// BulkDelete handles POST /admin/publishers/bulk-delete
func (h *HTTPHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req selection.Request
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	outcome, err := h.service.BulkDelete(r.Context(), req.IDs, req.Confirm)
	httpx.WriteBulkResult(w, r, selection.Publishers, len(req.IDs), outcome, err)
}

// Suggest handles GET /admin/suggest/publishers?q=
func (h *HTTPHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		httpx.JSONSuccess(w, r, []autocomplete.Suggestion{}, nil)
		return
	}
	items, err := h.service.Source().Suggest(r.Context(), q)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, items, nil)
}
