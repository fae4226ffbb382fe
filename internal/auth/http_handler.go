package auth

import (
	"errors"
	"net/http"

	"libadmin/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Login handles POST /admin/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	sess, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Неверный логин или пароль", nil)
			return
		}
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, sess, nil)
}

// Logout handles POST /admin/logout. The token lives in the page, so the
// response only tells it what the controls look like once it is dropped.
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, Describe(""), nil)
}

// Session handles GET /admin/session
func (h *HTTPHandler) Session(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, Describe(httpx.TokenFrom(r)), nil)
}
