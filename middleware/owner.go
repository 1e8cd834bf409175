package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RequireOwner lets a request through only when the :id path param matches
// the authenticated user. Every ledger route is guarded by this check; the
// ledger itself never re-verifies ownership.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" || userID != c.Param("id") {
			utils.TrackError("auth", "ownership_mismatch")
			utils.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
