package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SetMealHandler sets one meal slot for one date. The day's consumed
// calories move by the delta against the previous slot value, and the
// user's current meal selection mirrors the write.
func SetMealHandler(c *gin.Context, ledger *usecase.LedgerService) {
	var req model.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "meal_bind")
		utils.BadRequest(c, "Date, meal slot and meal data are required")
		return
	}

	user, err := ledger.SetMeal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"message": "Meals updated successfully",
		"user":    dto.ToUserResponse(user),
	})
}
