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

// GetUserHandler returns the full (sanitized) user document.
func GetUserHandler(c *gin.Context, userService *usecase.UserService) {
	user, err := userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Failed to fetch user %s: %v", c.Param("id"), err)
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

// UpdateUserHandler is the legacy bulk update: each present field replaces
// the stored value wholesale.
func UpdateUserHandler(c *gin.Context, userService *usecase.UserService) {
	var req model.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.ApplyUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Failed to update user %s: %v", c.Param("id"), err)
		utils.InternalError(c, "Failed to update user")
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}
