package handler

import (
	"errors"
	"fmt"
	"log"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
	"github.com/pquerna/otp/totp"
)

// LoginHandler authenticates by email and password, runs the 2FA branch
// when the account requires it, and returns an access/refresh token pair
// with the sanitized user.
func LoginHandler(c *gin.Context, userService *usecase.UserService, users *repository.UserRepo) {
	var req model.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Email and password are required")
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.TrackAuthAttempt("failure", "invalid_credentials")
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		log.Printf("Login failed: %v", err)
		utils.InternalError(c, "Failed to log in")
		return
	}

	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			utils.Success(c, gin.H{
				"requires_2fa": true,
				"message":      "2FA code required",
			})
			return
		}
		if !totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "invalid_2fa")
			utils.Unauthorized(c, "Invalid 2FA code")
			return
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := users.UpdateLastLogin(c.Request.Context(), user.UserID, deviceDescription(c.Request.UserAgent())); err != nil {
		// Login still succeeds; device tracking is best effort.
		log.Printf("Failed to record last login for %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"refresh": refreshToken,
		"user":    dto.ToUserResponse(user),
	})
}

// deviceDescription renders a short human-readable device label from the
// login User-Agent, e.g. "Firefox on Linux".
func deviceDescription(uaHeader string) string {
	ua := useragent.Parse(uaHeader)
	if ua.Name == "" {
		return "Unknown device"
	}
	if ua.OS == "" {
		return ua.Name
	}
	return fmt.Sprintf("%s on %s", ua.Name, ua.OS)
}
