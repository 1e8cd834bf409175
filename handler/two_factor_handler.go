package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Generate2FASecretHandler generates a fresh TOTP secret and QR code for
// the user to scan. Nothing is stored until the secret is confirmed via
// the enable endpoint.
func Generate2FASecretHandler(c *gin.Context, users *repository.UserRepo) {
	userID := c.GetString("user_id")

	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      services.TokenIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to encode QR code")
		return
	}

	utils.Success(c, gin.H{
		"secret":  key.Secret(),
		"qr_code": "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable2FAHandler turns 2FA on after verifying a code produced with the
// pending secret, and hands out one-time recovery codes.
func Enable2FAHandler(c *gin.Context, users *repository.UserRepo) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Secret and code are required")
		return
	}

	userID := c.GetString("user_id")
	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}
	hashedCodes := utils.HashRecoveryCodes(recoveryCodes)

	if err := users.Enable2FAWithRecoveryCodes(c.Request.Context(), userID, req.Secret, hashedCodes); err != nil {
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.Success(c, gin.H{
		"message":        "2FA enabled successfully",
		"recovery_codes": recoveryCodes,
		"warning":        "Save these recovery codes securely. They will not be shown again.",
	})
}

// Disable2FAHandler turns 2FA off after verifying a current code.
func Disable2FAHandler(c *gin.Context, users *repository.UserRepo) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Code is required")
		return
	}

	userID := c.GetString("user_id")
	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	if err := users.Disable2FA(c.Request.Context(), userID); err != nil {
		utils.InternalError(c, "Failed to disable 2FA")
		return
	}

	utils.Success(c, gin.H{"message": "2FA disabled successfully"})
}

// UseRecoveryCodeHandler consumes one recovery code. Each code works once;
// the remaining count comes back so the client can warn the user.
func UseRecoveryCodeHandler(c *gin.Context, users *repository.UserRepo) {
	var req struct {
		RecoveryCode string `json:"recovery_code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Recovery code is required")
		return
	}

	userID := c.GetString("user_id")
	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	hashedCode := utils.HashString(utils.NormalizeRecoveryCode(req.RecoveryCode))

	found := false
	remaining := make([]string, 0, len(user.RecoveryCodes))
	for _, storedCode := range user.RecoveryCodes {
		if storedCode == hashedCode && !found {
			found = true
			continue
		}
		remaining = append(remaining, storedCode)
	}

	if !found {
		utils.Unauthorized(c, "Invalid recovery code")
		return
	}

	if err := users.UpdateRecoveryCodes(c.Request.Context(), userID, remaining); err != nil {
		utils.InternalError(c, "Failed to update recovery codes")
		return
	}

	utils.Success(c, gin.H{
		"message":         "Recovery code accepted",
		"remaining_codes": len(remaining),
		"warning":         "Please set up a new authenticator app as soon as possible",
	})
}
