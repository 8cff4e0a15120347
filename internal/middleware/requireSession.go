package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionChecker reports whether the current session is authorized.
type SessionChecker interface {
	Authorized() bool
}

// RequireSession rejects requests made from a guest session. Every mutating
// gallery operation and the whole administration surface sit behind it, so
// an unauthorized attempt is an explicit denial rather than a silent no-op.
func RequireSession(gate SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authorized() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
			return
		}
		c.Next()
	}
}
