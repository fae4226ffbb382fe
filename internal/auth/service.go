package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"libadmin/internal/authgate"
	"libadmin/internal/form"
	"libadmin/internal/platform/catalogapi"
)

var ErrUnauthorized = errors.New("unauthorized")

// LoginReq is the body of the login form.
type LoginReq struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// Session describes the token the page should store, or the absence of one.
type Session struct {
	Token     string                  `json:"token,omitempty"`
	SignedIn  bool                    `json:"signed_in"`
	Subject   string                  `json:"subject,omitempty"`
	ExpiresAt *time.Time              `json:"expires_at,omitempty"`
	Controls  []authgate.ControlState `json:"controls"`
}

type Service struct {
	api Authenticator
}

func NewService(api Authenticator) *Service {
	return &Service{api: api}
}

// Login validates req and asks the catalog for a token.
func (s *Service) Login(ctx context.Context, req LoginReq) (Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := form.Check(req); err != nil {
		return Session{}, err
	}
	token, err := s.api.Login(ctx, req.Username, req.Password)
	if errors.Is(err, catalogapi.ErrInvalidCredentials) {
		return Session{}, ErrUnauthorized
	}
	if err != nil {
		return Session{}, err
	}
	sess := Describe(token)
	sess.Token = token
	return sess, nil
}

// Describe reports what the page shows for token. The claims are read for
// display without verification; an undecodable token still counts as a
// stored session.
func Describe(token string) Session {
	sess := Session{
		SignedIn: authgate.Present(token),
		Controls: authgate.Header.Evaluate(token),
	}
	if !sess.SignedIn {
		return sess
	}
	if id, err := authgate.Describe(token); err == nil {
		sess.Subject = id.Subject
		if !id.ExpiresAt.IsZero() {
			exp := id.ExpiresAt
			sess.ExpiresAt = &exp
		}
	}
	return sess
}
