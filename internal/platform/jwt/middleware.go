package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys under which the middleware stores the verified identity.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

// bearerPrefix is the exact scheme prefix the Authorization header must carry.
const bearerPrefix = "Bearer "

// AuthRequired returns a gin middleware that restricts access to requests
// carrying a valid bearer token. The header must be exactly "Bearer <token>";
// an absent header, another scheme or an empty token is rejected without
// touching the verifier. Any verifier failure answers the same generic 401.
// On success the resolved identity is stored in the request context and the
// downstream handler runs.
func AuthRequired(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, bearerPrefix)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// UserIDFromContext returns the user ID the middleware stored for the request.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
