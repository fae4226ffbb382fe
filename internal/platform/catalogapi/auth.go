package catalogapi

import (
	"context"
	"errors"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a JWT.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var res loginResponse
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   loginRequest{Username: username, Password: password},
		Out:    &res,
	})
	if StatusCode(err) == http.StatusUnauthorized {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return res.Token, nil
}
