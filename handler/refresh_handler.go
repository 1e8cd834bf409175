package handler

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RefreshTokenHandler exchanges a valid refresh token for a new token pair.
// The used refresh token is blacklisted so each one works once.
func RefreshTokenHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid refresh token")
		return
	}

	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	if services.IsTokenBlacklisted(refreshToken) {
		utils.Unauthorized(c, "Refresh token has been invalidated")
		return
	}

	claims, err := services.ParseToken(refreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	if claims["type"] != "refresh" {
		utils.Unauthorized(c, "Invalid token type")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		utils.Unauthorized(c, "Invalid token claims")
		return
	}

	newAccessToken, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate access token")
		return
	}

	newRefreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens("", refreshToken); err != nil {
		utils.TrackError("auth", "refresh_rotation")
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   newAccessToken,
		"refresh": newRefreshToken,
	})
}
