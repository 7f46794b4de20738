package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

func TestIssueAndParseToken(t *testing.T) {
	admin := &models.Admin{ID: "admin-1", Email: "admin@example.com"}

	token, err := IssueToken(admin, testSecret)
	require.NoError(t, err)
	assert.Contains(t, token, ".")

	identity, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", identity.AdminID)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestParseTokenWrongSecret(t *testing.T) {
	admin := &models.Admin{ID: "admin-1", Email: "admin@example.com"}

	token, err := IssueToken(admin, testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("a-completely-different-secret"))
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	// Sign a token that expired eight days ago, past the 7-day lifetime
	now := time.Now().Add(-8 * 24 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    "admin-1",
		"email": "admin@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(TokenLifetime).Unix(),
	})
	tokenString, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnsignedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "admin-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestParseTokenMissingID(t *testing.T) {
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := anonymous.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.Error(t, err)
}
