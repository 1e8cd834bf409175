package middleware

import (
	"strings"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user ID in the context. Refresh tokens are rejected here; they are only
// valid on the refresh endpoint.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "missing_token")
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if services.IsTokenBlacklisted(tokenString) {
			utils.TrackAuthAttempt("failure", "blacklisted_token")
			utils.Unauthorized(c, "Token has been invalidated")
			c.Abort()
			return
		}

		claims, err := services.ParseToken(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "invalid_token")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		if tokenType, exists := claims["type"]; exists && tokenType == "refresh" {
			utils.Unauthorized(c, "Invalid token type")
			c.Abort()
			return
		}

		if iss, ok := claims["iss"].(string); ok && iss != services.TokenIssuer {
			utils.Unauthorized(c, "Invalid token issuer")
			c.Abort()
			return
		}

		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				utils.Unauthorized(c, "Token has expired")
				c.Abort()
				return
			}
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			utils.Unauthorized(c, "Invalid user ID in token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		if iat, ok := claims["iat"].(float64); ok {
			c.Set("token_issued_at", time.Unix(int64(iat), 0))
		}

		c.Next()
	}
}
