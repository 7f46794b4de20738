package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kaifdev/portfolio-api/internal/auth"
	"github.com/kaifdev/portfolio-api/internal/models"
	log "github.com/sirupsen/logrus"
)

// TokenHeader is the custom request header the dashboard sends the session
// token in on every protected call
const TokenHeader = "x-auth-token"

// Context keys set for downstream handlers after successful authentication
const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
)

// TokenAuth guards admin endpoints. It reads the session token from the
// x-auth-token header (falling back to an Authorization Bearer value, which
// the dashboard's HTTP client also sends), verifies signature and expiry, and
// attaches the admin identity to the request context. Verification failures
// all collapse into a single 401 so the caller learns nothing about why the
// token was rejected.
func TokenAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.Fail("No token, authorization denied"))
			return
		}

		identity, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			log.WithError(err).Debug("Rejected session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.Fail("Token is not valid"))
			return
		}

		c.Set(ContextAdminID, identity.AdminID)
		c.Set(ContextAdminEmail, identity.Email)
		c.Next()
	}
}

// extractToken pulls the token out of the custom header, or out of a Bearer
// Authorization header when the custom one is absent
func extractToken(c *gin.Context) string {
	if token := c.GetHeader(TokenHeader); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
