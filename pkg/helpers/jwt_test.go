package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWTManager {
	return NewJWTManager("test-secret", 24*time.Hour, 168*time.Hour)
}

func TestJWTManager_GenerateAndParse(t *testing.T) {
	m := newTestJWT()

	token, exp, err := m.Generate("user_1", "a@b.c", "Alice", "ADMIN", false)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTManager_RememberTTL(t *testing.T) {
	m := newTestJWT()

	_, exp, err := m.Generate("user_1", "a@b.c", "Alice", "STUDENT", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), exp, time.Minute)
}

func TestJWTManager_ParseRejectsWrongSecret(t *testing.T) {
	m := newTestJWT()
	other := NewJWTManager("other-secret", time.Hour, time.Hour)

	token, _, err := m.Generate("user_1", "a@b.c", "Alice", "STUDENT", false)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTManager_ParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, -time.Minute)

	token, _, err := m.Generate("user_1", "a@b.c", "Alice", "STUDENT", false)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTManager_ParseRejectsNoneAlgorithm(t *testing.T) {
	m := newTestJWT()

	tkn := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user_1"})
	s, err := tkn.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(s)
	assert.Error(t, err)
}

func TestJWTManager_ParseRejectsGarbage(t *testing.T) {
	m := newTestJWT()
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
