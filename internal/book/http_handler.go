package book

import (
	"errors"
	"net/http"
	"strings"

	"libadmin/internal/authgate"
	"libadmin/internal/autocomplete"
	"libadmin/internal/httpx"
	"libadmin/internal/listview"
	"libadmin/internal/selection"
	"libadmin/internal/tags"
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
		"controls": authgate.Books.Evaluate(httpx.TokenFrom(r)),
	})
}

// List handles GET /admin/books
// @Summary Catalog table
// @Param search query string false "Search text"
// @Param sort_column query string false "Sort column"
// @Param sort_order query string false "asc or desc"
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, listview.StateFromQuery(r.URL.Query(), Adapter.SearchParam, Adapter.DefaultSort))
}

// Sort handles POST /admin/books/sort
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

// GetByISBN handles GET /admin/books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if isbn == "" || strings.Contains(isbn, "/") {
		http.NotFound(w, r)
		return
	}

	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
			return
		}
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, NewDetail(b), httpx.Meta{
		"form":     FormFrom(b),
		"controls": authgate.Books.Evaluate(httpx.TokenFrom(r)),
	})
}

// Create handles POST /admin/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f Form
	if !httpx.DecodeJSON(w, r, &f) {
		return
	}
	b, err := h.service.Create(r.Context(), f)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, NewDetail(b))
}

// Update handles PUT /admin/books/{isbn}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var f Form
	if !httpx.DecodeJSON(w, r, &f) {
		return
	}
	b, err := h.service.Update(r.Context(), r.PathValue("isbn"), f)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
			return
		}
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, NewDetail(b), nil)
}

// Delete handles DELETE /admin/books/{isbn}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("isbn"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
			return
		}
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// BulkDelete handles POST /admin/books/bulk-delete
func (h *HTTPHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req selection.Request
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	outcome, err := h.service.BulkDelete(r.Context(), req.IDs, req.Confirm)
	httpx.WriteBulkResult(w, r, selection.Books, len(req.IDs), outcome, err)
}

// SuggestGenres handles GET /admin/suggest/genres?q=&existing=
func (h *HTTPHandler) SuggestGenres(w http.ResponseWriter, r *http.Request) {
	q := tags.SanitizeInput(r.URL.Query().Get("q"))
	if strings.TrimSpace(q) == "" {
		httpx.JSONSuccess(w, r, []autocomplete.Suggestion{}, nil)
		return
	}
	editor := tags.NewEditor(tags.ModeEdit, tags.SplitHidden(r.URL.Query().Get("existing"))...)
	items, err := h.service.GenreSource(editor).Suggest(r.Context(), q)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []autocomplete.Suggestion{}
	}
	httpx.JSONSuccess(w, r, items, nil)
}
