package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	tokenKey     contextKey = "token"
	requestIDKey contextKey = "requestID"
)

// ContextWithToken stores the caller's bearer token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the bearer token carried by ctx.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey).(string); ok {
		return v
	}
	return ""
}

// TokenFrom returns the bearer token of the request.
func TokenFrom(r *http.Request) string {
	return TokenFromContext(r.Context())
}

// ContextWithRequestID stores the request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id carried by ctx.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom returns the request id of the request.
func RequestIDFrom(r *http.Request) string {
	return RequestIDFromContext(r.Context())
}

// Credentials reads the token and request id for forwarding upstream.
func Credentials(ctx context.Context) (token, requestID string) {
	return TokenFromContext(ctx), RequestIDFromContext(ctx)
}
