package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HistoryHandler returns the activities, meals and stats for one date. A
// date with no records yields an empty history without creating one.
func HistoryHandler(c *gin.Context, ledger *usecase.LedgerService) {
	date := c.Query("date")
	if date == "" {
		utils.BadRequest(c, "Date is required")
		return
	}
	if !utils.ValidateDateFormat(date) {
		utils.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}

	history, err := ledger.History(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	utils.Success(c, history)
}
