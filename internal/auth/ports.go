package auth

import "context"

//go:generate mockgen -source=ports.go -destination=mock_authenticator.go -package=auth

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}
