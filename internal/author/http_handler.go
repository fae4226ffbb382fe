package author

import (
	"errors"
	"net/http"
	"strconv"

	"libadmin/internal/authgate"
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
		"controls": authgate.Authors.Evaluate(httpx.TokenFrom(r)),
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) notFoundOr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		return
	}
	httpx.WriteError(w, r, err)
}

// List handles GET /admin/authors
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, listview.StateFromQuery(r.URL.Query(), Adapter.SearchParam, Adapter.DefaultSort))
}

// Sort handles POST /admin/authors/sort
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

// Get handles GET /admin/authors/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.service.Detail(r.Context(), id)
	if err != nil {
		h.notFoundOr(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, d, httpx.Meta{"controls": authgate.Authors.Evaluate(httpx.TokenFrom(r))})
}

// Create handles POST /admin/authors
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f Form
	if !httpx.DecodeJSON(w, r, &f) {
		return
	}
	a, err := h.service.Create(r.Context(), f)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, a)
}

// Update handles PUT /admin/authors/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var f Form
	if !httpx.DecodeJSON(w, r, &f) {
		return
	}
	a, err := h.service.Update(r.Context(), id, f)
	if err != nil {
		h.notFoundOr(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, a, nil)
}

// Delete handles DELETE /admin/authors/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.notFoundOr(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// BulkDelete handles POST /admin/authors/bulk-delete. The confirm flag is
// the answer to the cascade question and the request goes out either way.
func (h *HTTPHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req selection.Request
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	outcome, err := h.service.BulkDelete(r.Context(), req.IDs, req.Confirm)
	httpx.WriteBulkResult(w, r, selection.Authors, len(req.IDs), outcome, err)
}

// Suggest handles GET /admin/suggest/authors?q=
func (h *HTTPHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, items, nil)
}
