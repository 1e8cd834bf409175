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

// AddActivityHandler logs a new activity and returns the updated user with
// that day's stats already adjusted.
func AddActivityHandler(c *gin.Context, ledger *usecase.LedgerService) {
	var req model.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "activity_bind")
		utils.BadRequest(c, "All activity fields are required")
		return
	}

	user, err := ledger.AddActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	utils.Created(c, "Activity added successfully", gin.H{
		"user": dto.ToUserResponse(user),
	})
}

// EditActivityHandler patches an activity; only fields present in the body
// are applied. Stats move between days when the patch changes the date.
func EditActivityHandler(c *gin.Context, ledger *usecase.LedgerService) {
	var patch model.ActivityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.TrackError("validation", "activity_patch_bind")
		utils.BadRequest(c, "Invalid activity data")
		return
	}

	user, err := ledger.EditActivity(c.Request.Context(), c.Param("id"), c.Param("activityId"), patch)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"message": "Activity updated successfully",
		"user":    dto.ToUserResponse(user),
	})
}

// DeleteActivityHandler removes an activity after subtracting its
// contribution from that day's stats.
func DeleteActivityHandler(c *gin.Context, ledger *usecase.LedgerService) {
	user, err := ledger.DeleteActivity(c.Request.Context(), c.Param("id"), c.Param("activityId"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"message": "Activity deleted successfully",
		"user":    dto.ToUserResponse(user),
	})
}

// respondLedgerError maps the ledger failure taxonomy to stable HTTP
// outcomes: validation → 400, missing target → 404, anything else → 500.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrNegativeValue),
		errors.Is(err, usecase.ErrInvalidMealSlot):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrActivityNotFound):
		utils.NotFound(c, "Activity not found")
	case errors.Is(err, usecase.ErrUserNotFound):
		utils.NotFound(c, "User not found")
	default:
		log.Printf("Ledger operation failed: %v", err)
		utils.InternalError(c, "Failed to update records")
	}
}
