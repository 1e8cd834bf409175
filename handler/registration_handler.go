package handler

import (
	"errors"
	"log"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates a new account with an empty ledger and
// returns the sanitized user.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req model.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "registration_bind")
		utils.BadRequest(c, "All fields are required")
		return
	}

	user, err := userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.Conflict(c, "Email already registered")
			return
		}
		log.Printf("Registration failed: %v", err)
		utils.InternalError(c, "Failed to register user")
		return
	}

	utils.Created(c, "User registered successfully", gin.H{
		"user": dto.ToUserResponse(user),
	})
}
