package authgate

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_WithoutToken(t *testing.T) {
	states := Authors.Evaluate("")
	byID := index(states)

	del := byID[ControlDeleteSelected]
	assert.True(t, del.Disabled)
	assert.Equal(t, "Для удаления выбранных авторов необходимо войти в систему", del.Tooltip)

	assert.True(t, byID[ControlImport].Disabled)
	assert.True(t, byID[ControlDatabaseMenu].Disabled)
	assert.False(t, byID[ControlLogin].Hidden)
	assert.True(t, byID[ControlLogout].Hidden)
}

func TestGate_WithToken(t *testing.T) {
	byID := index(Books.Evaluate("abc.def.ghi"))

	del := byID[ControlDeleteSelected]
	assert.False(t, del.Disabled)
	assert.Empty(t, del.Tooltip)
	assert.True(t, byID[ControlLogin].Hidden)
	assert.False(t, byID[ControlLogout].Hidden)
}

func TestGate_BlankTokenCountsAsAbsent(t *testing.T) {
	assert.True(t, Books.State("   ", ControlDeleteSelected).Disabled)
}

func TestGate_UnknownControl(t *testing.T) {
	assert.Equal(t, ControlState{ID: "nope"}, Books.State("", "nope"))
}

func TestDescribe(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	id, err := Describe(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Subject)
	assert.True(t, exp.Equal(id.ExpiresAt))

	_, err = Describe("not-a-jwt")
	assert.Error(t, err)
}

func index(states []ControlState) map[string]ControlState {
	m := make(map[string]ControlState, len(states))
	for _, s := range states {
		m[s.ID] = s
	}
	return m
}
