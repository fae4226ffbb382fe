package httpx

import (
	"context"
	"errors"
	"log"
	"net/http"

	"libadmin/internal/form"
	"libadmin/internal/platform/catalogapi"
)

// WriteError maps a service error to a JSON error response. Handlers answer
// their own not-found cases before falling back to it.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid form.Errors
	if errors.As(err, &invalid) {
		details := make([]ErrorDetail, len(invalid))
		for i, fe := range invalid {
			details[i] = ErrorDetail{Field: fe.Field, Message: fe.Message}
		}
		JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	var se *catalogapi.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusBadRequest:
			JSONError(w, r, http.StatusBadRequest, "REJECTED", upstreamMessage(se, "The catalog rejected the request"), nil)
		case http.StatusUnauthorized:
			JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Необходимо войти в систему", nil)
		case http.StatusForbidden:
			JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Недостаточно прав", nil)
		case http.StatusNotFound:
			JSONError(w, r, http.StatusNotFound, "NOT_FOUND", upstreamMessage(se, "Not found"), nil)
		case http.StatusConflict:
			JSONError(w, r, http.StatusConflict, "CONFLICT", upstreamMessage(se, "Conflict"), nil)
		default:
			log.Printf("upstream error: request_id=%s error=%v", RequestIDFrom(r), err)
			JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "The catalog API failed to handle the request", nil)
		}
		return
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		JSONError(w, r, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "The catalog API did not answer in time", nil)
	case errors.Is(err, catalogapi.ErrTransport):
		log.Printf("upstream unavailable: request_id=%s error=%v", RequestIDFrom(r), err)
		JSONError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "The catalog API is unreachable", nil)
	default:
		log.Printf("internal error: request_id=%s error=%v", RequestIDFrom(r), err)
		JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func upstreamMessage(se *catalogapi.StatusError, fallback string) string {
	if se.Body != "" && len(se.Body) < 512 {
		return se.Body
	}
	return fallback
}
