// Package middleware provides request filters and security checks for
// the application.
// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"campus-teams/logger"
)

// AdminRequired is a middleware that checks if the caller holds an
// admin session, set by a successful admin login.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isAdmin, ok := session.Get("isAdmin").(bool)

		if !ok || !isAdmin {
			logger.Warn.Println("AdminRequired - unauthorized attempt blocked")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
