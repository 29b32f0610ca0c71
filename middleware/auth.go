package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gbotemi-ojo/quick-medics-management/auth"
)

// SessionPresence reports whether a backend session currently exists.
type SessionPresence interface {
	Present() bool
}

// ValidateSession gates the staff routes: the request must carry a valid
// gateway JWT and a backend session must still be present (it disappears
// when the backend returns 401/403 and the store is cleared).
func ValidateSession(secret string, session SessionPresence) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ValidateStaffToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if !session.Present() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please login again"})
			c.Abort()
			return
		}

		if email, ok := claims["email"].(string); ok {
			c.Set("staff_email", email)
		}
		c.Next()
	}
}
