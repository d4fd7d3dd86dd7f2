// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionMiddleware validates the bearer token and attaches the decoded
// principal to the request context. Token issuance lives in the auth service;
// the scheduling core only trusts the decoded subject and role claims.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.SessionFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(sessionKey, models.Session{UserID: userID, Role: role})
		c.Next()
	}
}

// CurrentSession returns the principal attached by SessionMiddleware.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}
