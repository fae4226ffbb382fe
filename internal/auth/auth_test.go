package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libadmin/internal/authgate"
	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/testutil"
)

func newHandler(t *testing.T) (*HTTPHandler, *MockAuthenticator) {
	api := NewMockAuthenticator(gomock.NewController(t))
	return NewHTTPHandler(NewService(api)), api
}

func controls(states []authgate.ControlState) map[string]authgate.ControlState {
	out := make(map[string]authgate.ControlState, len(states))
	for _, s := range states {
		out[s.ID] = s
	}
	return out
}

func TestHTTPHandler_Login(t *testing.T) {
	h, api := newHandler(t)
	token := testutil.GenerateTestToken("librarian", time.Hour)
	api.EXPECT().Login(gomock.Any(), "librarian", "secret").Return(token, nil)

	w := httptest.NewRecorder()
	h.Login(w, testutil.NewRequest(http.MethodPost, "/admin/login", LoginReq{Username: " librarian ", Password: "secret"}))

	require.Equal(t, http.StatusOK, w.Code)
	var sess Session
	_, err := testutil.DecodeEnvelope(w, &sess)
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.True(t, sess.SignedIn)
	assert.Equal(t, "librarian", sess.Subject)
	require.NotNil(t, sess.ExpiresAt)
	assert.True(t, controls(sess.Controls)[authgate.ControlLogin].Hidden)
}

func TestHTTPHandler_LoginInvalidCredentials(t *testing.T) {
	h, api := newHandler(t)
	api.EXPECT().Login(gomock.Any(), "librarian", "wrong").Return("", catalogapi.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	h.Login(w, testutil.NewRequest(http.MethodPost, "/admin/login", LoginReq{Username: "librarian", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env, err := testutil.DecodeEnvelope(w, nil)
	require.NoError(t, err)
	assert.Equal(t, "Неверный логин или пароль", env.Error.Message)
}

func TestHTTPHandler_LoginValidation(t *testing.T) {
	h, _ := newHandler(t)

	w := httptest.NewRecorder()
	h.Login(w, testutil.NewRequest(http.MethodPost, "/admin/login", LoginReq{Username: "  "}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env, err := testutil.DecodeEnvelope(w, nil)
	require.NoError(t, err)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestHTTPHandler_LogoutShowsGuestControls(t *testing.T) {
	h, _ := newHandler(t)

	w := httptest.NewRecorder()
	h.Logout(w, testutil.NewRequestWithAuth(http.MethodPost, "/admin/logout", nil, "tok"))

	var sess Session
	_, err := testutil.DecodeEnvelope(w, &sess)
	require.NoError(t, err)
	assert.False(t, sess.SignedIn)
	c := controls(sess.Controls)
	assert.True(t, c[authgate.ControlLogout].Hidden)
	assert.True(t, c[authgate.ControlDatabaseMenu].Disabled)
}

func TestHTTPHandler_SessionWithOpaqueToken(t *testing.T) {
	h, _ := newHandler(t)

	w := httptest.NewRecorder()
	h.Session(w, testutil.NewRequestWithAuth(http.MethodGet, "/admin/session", nil, "not-a-jwt"))

	var sess Session
	_, err := testutil.DecodeEnvelope(w, &sess)
	require.NoError(t, err)
	assert.True(t, sess.SignedIn)
	assert.Empty(t, sess.Subject)
	assert.Empty(t, sess.Token)
}
