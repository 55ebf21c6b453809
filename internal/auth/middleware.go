package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly rejects requests lacking a valid admin session cookie.
func AdminOnly(signingKey, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasValidSession(c, signingKey, issuer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// HasValidSession reports whether the request carries a live admin
// session cookie. The page handlers use it to choose between the
// dashboard and the login page instead of returning 401.
func HasValidSession(c *gin.Context, signingKey, issuer string) bool {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie == "" {
		return false
	}
	_, err = ParseSession(cookie, signingKey, issuer)
	return err == nil
}
