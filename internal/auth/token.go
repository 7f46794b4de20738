package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kaifdev/portfolio-api/internal/models"
)

// TokenLifetime is how long a session token stays valid. There is no refresh
// mechanism: an expired token forces a fresh login.
const TokenLifetime = 7 * 24 * time.Hour

// Identity is the decoded payload of a session token
type Identity struct {
	AdminID string
	Email   string
}

// IssueToken signs a session token for the given admin with a 7-day expiry
func IssueToken(admin *models.Admin, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    admin.ID,
		"email": admin.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenLifetime).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken verifies a session token's signature and expiry and returns the
// identity it carries
func ParseToken(tokenString string, secret []byte) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil || exp.Before(time.Now()) {
		return nil, fmt.Errorf("token has expired")
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("token missing required 'id' claim")
	}
	email, _ := claims["email"].(string)

	return &Identity{AdminID: id, Email: email}, nil
}
