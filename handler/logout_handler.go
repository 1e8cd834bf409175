package handler

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutHandler blacklists the presented access token (and the refresh
// token when supplied) until they expire on their own.
func LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	var req LogoutRequest
	// Body is optional; logout without a refresh token still revokes access.
	_ = c.ShouldBindJSON(&req)

	if err := services.BlacklistTokens(accessToken, req.RefreshToken); err != nil {
		utils.TrackError("auth", "token_blacklist")
		utils.InternalError(c, "Failed to invalidate tokens")
		return
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
